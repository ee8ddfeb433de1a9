package physics

import (
	"math"
	"testing"
)

func TestBodyIntegrate(t *testing.T) {
	b := NewBody(10, -20)

	b.Integrate(0.5)
	if b.Velocity() != -10 {
		t.Errorf("Velocity() = %v, expected -10", b.Velocity())
	}
	if b.Y != 5 {
		t.Errorf("Y = %v, expected 5", b.Y)
	}

	// Zero and negative steps do nothing
	b.Integrate(0)
	b.Integrate(-1)
	if b.Y != 5 {
		t.Errorf("Y after empty steps = %v, expected 5", b.Y)
	}
}

func TestBodyGravityScale(t *testing.T) {
	b := NewBody(0, -20)
	b.SetGravityScale(0)

	for i := 0; i < 10; i++ {
		b.Integrate(0.1)
	}
	if b.Y != 0 || b.Velocity() != 0 {
		t.Errorf("Body without gravity should not move, got y=%v v=%v", b.Y, b.Velocity())
	}

	b.SetGravityScale(2)
	b.Integrate(0.1)
	if math.Abs(b.Velocity()-(-4)) > 1e-9 {
		t.Errorf("Velocity() = %v, expected -4", b.Velocity())
	}
}

func TestBodyImpulseAndClamp(t *testing.T) {
	b := NewBody(0, 0)
	b.AddImpulse(5)
	b.AddImpulse(5)
	if b.Velocity() != 10 {
		t.Errorf("Velocity() = %v, expected 10", b.Velocity())
	}

	b.Y = 12
	if !b.ClampY(0, 10) {
		t.Fatal("ClampY should report clamping")
	}
	if b.Y != 10 || b.Velocity() != 0 {
		t.Errorf("Clamped body y=%v v=%v, expected y=10 v=0", b.Y, b.Velocity())
	}

	b.Y = 5
	if b.ClampY(0, 10) {
		t.Error("ClampY inside bounds should report false")
	}
}
