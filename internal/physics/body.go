// Package physics integrates the actor's vertical motion. It stands in for
// an engine rigid body: gravity scaled by a per-body factor, instantaneous
// impulses, and explicit Euler integration once per frame.
package physics

// Body is a vertical-only rigid body of unit mass. Y grows upward.
type Body struct {
	Y            float64
	velocity     float64
	gravity      float64 // Acceleration in units/s², negative pulls down
	gravityScale float64
}

// NewBody creates a body at y with the given gravity and a scale of 1.
func NewBody(y, gravity float64) *Body {
	return &Body{Y: y, gravity: gravity, gravityScale: 1}
}

// Velocity returns the vertical velocity.
func (b *Body) Velocity() float64 {
	return b.velocity
}

// SetVelocity overwrites the vertical velocity.
func (b *Body) SetVelocity(v float64) {
	b.velocity = v
}

// AddImpulse applies an instantaneous change in momentum.
func (b *Body) AddImpulse(j float64) {
	b.velocity += j
}

// GravityScale returns the multiplier applied to gravity.
func (b *Body) GravityScale() float64 {
	return b.gravityScale
}

// SetGravityScale sets the multiplier applied to gravity.
func (b *Body) SetGravityScale(s float64) {
	b.gravityScale = s
}

// Integrate advances the body by dt seconds.
func (b *Body) Integrate(dt float64) {
	if dt <= 0 {
		return
	}
	b.velocity += b.gravity * b.gravityScale * dt
	b.Y += b.velocity * dt
}

// ClampY keeps the body inside [min, max]. Hitting a bound stops motion
// toward it. Returns true if the body was clamped.
func (b *Body) ClampY(min, max float64) bool {
	switch {
	case b.Y > max:
		b.Y = max
		if b.velocity > 0 {
			b.velocity = 0
		}
		return true
	case b.Y < min:
		b.Y = min
		if b.velocity < 0 {
			b.velocity = 0
		}
		return true
	}
	return false
}
