package transition

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func mustNew(t *testing.T, speed float64) *Transition {
	t.Helper()
	tr, err := New(speed)
	if err != nil {
		t.Fatalf("New(%v) failed: %v", speed, err)
	}
	return tr
}

func TestNewRejectsBadSpeed(t *testing.T) {
	for _, speed := range []float64{0, -1} {
		if _, err := New(speed); err == nil {
			t.Errorf("New(%v) should fail", speed)
		}
	}
}

func TestFadeCompletesOnce(t *testing.T) {
	tests := []struct {
		name       string
		speed, dt  float64
		frames     int
		keepActive bool
		endState   State
	}{
		{"two frames", 2, 0.3, 2, false, Inactive},
		{"single long frame", 2, 0.6, 1, false, Inactive},
		{"speed one", 1, 0.6, 2, false, Inactive},
		{"kept active", 2, 0.3, 2, true, Active},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := mustNew(t, tc.speed)
			calls := 0
			tr.Start(core.Black, core.Clear, tc.keepActive, func() { calls++ })

			for i := 0; i < tc.frames-1; i++ {
				tr.OnFrame(tc.dt)
				if calls != 0 || !tr.Active() {
					t.Fatalf("frame %d: finished early (calls=%d)", i+1, calls)
				}
			}
			tr.OnFrame(tc.dt)

			// Extra frames must not fire again
			for i := 0; i < 5; i++ {
				tr.OnFrame(tc.dt)
			}

			if calls != 1 {
				t.Errorf("onComplete fired %d times, expected 1", calls)
			}
			if tr.State() != tc.endState {
				t.Errorf("State() = %v, expected %v", tr.State(), tc.endState)
			}
			if tr.Running() {
				t.Error("Finished transition should not be running")
			}
		})
	}
}

func TestEaseOutCurve(t *testing.T) {
	tr := mustNew(t, 1)
	tr.Start(core.Black, core.Clear, false, nil)

	tr.OnFrame(0.25) // fraction .25: 1 → .75
	if !approx(tr.Color().A, 0.75) {
		t.Errorf("alpha after first frame = %v, expected 0.75", tr.Color().A)
	}

	tr.OnFrame(0.25) // fraction .5: .75 → .375
	if !approx(tr.Color().A, 0.375) {
		t.Errorf("alpha after second frame = %v, expected 0.375", tr.Color().A)
	}
	if !approx(tr.Fraction(), 0.5) {
		t.Errorf("Fraction() = %v, expected 0.5", tr.Fraction())
	}
}

func TestInactiveIgnoresFrames(t *testing.T) {
	tr := mustNew(t, 1)
	tr.OnFrame(5)
	if tr.Active() || tr.Fraction() != 0 {
		t.Error("OnFrame on an inactive transition should do nothing")
	}
}

func TestRestartKeepsCurrentColor(t *testing.T) {
	tr := mustNew(t, 1)
	first, second := 0, 0
	tr.Start(core.Black, core.Clear, false, func() { first++ })
	tr.OnFrame(0.5) // alpha 0.5

	mid := tr.Color()
	tr.Start(core.RGBA{R: 1, A: 1}, core.Black, false, func() { second++ })

	if tr.Color() != mid {
		t.Errorf("Color after restart = %+v, expected mid-fade %+v", tr.Color(), mid)
	}
	if tr.Fraction() != 0 {
		t.Errorf("Fraction after restart = %v, expected 0", tr.Fraction())
	}

	tr.OnFrame(1)
	if first != 0 || second != 1 {
		t.Errorf("callbacks first=%d second=%d, expected 0 and 1", first, second)
	}
	if tr.Color() != core.Black {
		t.Errorf("Color() = %+v, expected black", tr.Color())
	}
}

func TestStartFromCallback(t *testing.T) {
	tr := mustNew(t, 1)
	chained := false
	tr.Start(core.Clear, core.Black, false, func() {
		tr.Start(core.Black, core.Clear, false, func() { chained = true })
	})

	tr.OnFrame(1)
	if !tr.Active() || !tr.Running() {
		t.Fatal("Transition started from callback should stay active")
	}

	tr.OnFrame(1)
	if !chained || tr.Active() {
		t.Errorf("chained=%v active=%v, expected true and false", chained, tr.Active())
	}
}

func TestStop(t *testing.T) {
	tr := mustNew(t, 1)
	fired := false
	tr.Start(core.Black, core.Clear, true, func() { fired = true })
	tr.Stop()
	tr.OnFrame(2)

	if fired || tr.Active() {
		t.Errorf("Stop should cancel: fired=%v active=%v", fired, tr.Active())
	}
}
