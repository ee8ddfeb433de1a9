// Package transition fades a full-screen overlay color between two values.
// A transition is a frame-stepped process: Start returns immediately and the
// completion callback runs from a later OnFrame call on the same goroutine.
package transition

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// State is the lifecycle of a transition.
type State int

const (
	Inactive State = iota
	Active
)

// String returns the state name.
func (s State) String() string {
	if s == Active {
		return "Active"
	}
	return "Inactive"
}

// Transition interpolates an overlay color over time.
type Transition struct {
	speed float64 // Fraction per second

	state    State
	running  bool
	from, to core.RGBA
	color    core.RGBA
	fraction float64

	keepActive bool
	onComplete func()
	generation uint64
}

// New creates an inactive transition. speed is the fraction advanced per
// second and must be positive.
func New(speed float64) (*Transition, error) {
	if speed <= 0 {
		return nil, fmt.Errorf("transition: speed must be positive, got %v", speed)
	}
	return &Transition{speed: speed, color: core.Clear}, nil
}

// Start begins interpolating toward to. From an inactive transition the
// overlay jumps to from. Starting over an active one keeps the current color
// and only rewinds the fraction; the earlier onComplete is dropped.
func (t *Transition) Start(from, to core.RGBA, keepActiveOnFinish bool, onComplete func()) {
	if t.state == Inactive {
		t.color = from
	}
	t.from = from
	t.to = to
	t.fraction = 0
	t.keepActive = keepActiveOnFinish
	t.onComplete = onComplete
	t.state = Active
	t.running = true
	t.generation++
}

// OnFrame advances the transition by dt seconds.
func (t *Transition) OnFrame(dt float64) {
	if t.state == Inactive || !t.running {
		return
	}

	// Interpolating from the current color rather than the start color
	// gives the fade its ease-out shape.
	t.fraction += t.speed * dt
	t.color = t.color.LerpUnclamped(t.to, t.fraction)
	if t.fraction < 1 {
		return
	}

	gen := t.generation
	t.running = false
	done := t.onComplete
	t.onComplete = nil
	if done != nil {
		done()
	}

	// The callback may have started a new transition.
	if gen != t.generation {
		return
	}
	if !t.keepActive {
		t.state = Inactive
	}
}

// Stop drops the overlay immediately without running the callback.
func (t *Transition) Stop() {
	t.state = Inactive
	t.running = false
	t.onComplete = nil
	t.color = core.Clear
	t.generation++
}

// State returns Active or Inactive.
func (t *Transition) State() State {
	return t.state
}

// Active reports whether the overlay is shown.
func (t *Transition) Active() bool {
	return t.state == Active
}

// Running reports whether the fade is still advancing. A finished
// transition kept active holds its last color but no longer runs.
func (t *Transition) Running() bool {
	return t.running
}

// Color returns the overlay color. Meaningful only while Active.
func (t *Transition) Color() core.RGBA {
	return t.color
}

// Fraction returns the accumulated interpolation fraction.
func (t *Transition) Fraction() float64 {
	return t.fraction
}

// Target returns the color the transition is heading to.
func (t *Transition) Target() core.RGBA {
	return t.to
}
