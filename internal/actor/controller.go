// Package actor implements the flying actor's controller: input response,
// velocity limits, nose tilt, death and scoring. All gameplay mutation sits
// behind the session's phase machine (Idle → Flying → Dead).
package actor

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
	"github.com/vovakirdan/tui-flappy/internal/session"
)

// ErrInvalidConfig is returned when a controller is built with missing
// collaborators or unusable tuning values.
var ErrInvalidConfig = errors.New("actor: invalid configuration")

// Body is the physics collaborator the controller steers.
type Body interface {
	Velocity() float64
	SetVelocity(v float64)
	AddImpulse(j float64)
	GravityScale() float64
	SetGravityScale(s float64)
}

// Overlays are the UI panels the controller toggles.
type Overlays interface {
	HideHowToPlay()
	ShowGameOver()
}

// Config holds the controller's tuning.
type Config struct {
	JumpForce   float64 // Upward impulse per jump
	MaxVelocity float64 // Cap on upward speed

	Rotation            bool    // Whether the nose tilts with velocity
	RotationChangeSpeed float64 // Nose fraction change per second
	NoseUpAngle         float64 // Degrees at fraction 1
	NoseDownAngle       float64 // Degrees at fraction 0
}

// Validate reports whether the tuning values are usable.
func (c Config) Validate() error {
	switch {
	case c.JumpForce <= 0:
		return fmt.Errorf("%w: jump force must be positive, got %v", ErrInvalidConfig, c.JumpForce)
	case c.MaxVelocity <= 0:
		return fmt.Errorf("%w: max velocity must be positive, got %v", ErrInvalidConfig, c.MaxVelocity)
	case c.RotationChangeSpeed < 0:
		return fmt.Errorf("%w: rotation change speed must not be negative, got %v", ErrInvalidConfig, c.RotationChangeSpeed)
	}
	return nil
}

// Frame is the per-frame input the controller consumes.
type Frame struct {
	Delta         float64 // Scaled seconds since the previous frame
	Paused        bool    // Time-scale is zero
	JumpPressed   bool    // Jump was newly pressed this frame
	PointerOverUI bool    // Pointer rests on an interactive widget
}

// Controller drives one actor for one session at a time.
type Controller struct {
	cfg      Config
	body     Body
	state    *session.State
	store    highscore.Store
	overlays Overlays

	initialGravity float64
	noseFraction   float64
	facingAngle    float64

	listeners []Listener
}

// New builds a controller. The session is reset and gravity suppressed so
// the actor floats until the first jump.
func New(cfg Config, body Body, state *session.State, store highscore.Store, overlays Overlays) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch {
	case body == nil:
		return nil, fmt.Errorf("%w: body is required", ErrInvalidConfig)
	case state == nil:
		return nil, fmt.Errorf("%w: session is required", ErrInvalidConfig)
	case store == nil:
		return nil, fmt.Errorf("%w: highscore store is required", ErrInvalidConfig)
	case overlays == nil:
		return nil, fmt.Errorf("%w: overlays are required", ErrInvalidConfig)
	}

	c := &Controller{
		cfg:            cfg,
		body:           body,
		state:          state,
		store:          store,
		overlays:       overlays,
		initialGravity: body.GravityScale(),
	}
	c.Reset()
	return c, nil
}

// Reset starts a fresh session: Idle, score 0, gravity off.
func (c *Controller) Reset() {
	c.state.Reset()
	c.body.SetGravityScale(0)
	c.body.SetVelocity(0)
	c.noseFraction = 0
	c.facingAngle = 0
}

// OnFrame applies one frame of input.
func (c *Controller) OnFrame(f Frame) {
	if c.state.IsDead() || f.Paused || f.PointerOverUI {
		return
	}

	if f.JumpPressed {
		if c.state.Start() {
			c.overlays.HideHowToPlay()
			c.body.SetGravityScale(c.initialGravity)
		}

		c.body.SetVelocity(0)
		c.body.AddImpulse(c.cfg.JumpForce)
		c.emit(Event{Kind: EventJumped, Score: c.state.Score()})
	}

	if c.body.Velocity() > c.cfg.MaxVelocity {
		c.body.SetVelocity(c.cfg.MaxVelocity)
	}

	if c.state.HasStarted() && c.cfg.Rotation {
		c.updateNose(f.Delta)
	}
}

// Nose fraction drifts toward 1 while rising and 0 while falling.
func (c *Controller) updateNose(dt float64) {
	v := c.body.Velocity()
	switch {
	case v > 0:
		c.noseFraction += c.cfg.RotationChangeSpeed * dt
	case v < 0:
		c.noseFraction -= c.cfg.RotationChangeSpeed * dt
	}
	c.noseFraction = core.Clamp01(c.noseFraction)
	c.facingAngle = core.Lerp(c.cfg.NoseDownAngle, c.cfg.NoseUpAngle, c.noseFraction)
}

// OnCollision kills the actor. Only the first call has any effect.
func (c *Controller) OnCollision() {
	if !c.state.Kill() {
		return
	}

	c.store.SetIfGreater(c.state.Score())
	c.emit(Event{Kind: EventDied, Score: c.state.Score()})
	c.overlays.ShowGameOver()
}

// OnScoreZoneEnter awards a point while flying.
func (c *Controller) OnScoreZoneEnter() {
	if c.state.IsDead() || !c.state.HasStarted() {
		return
	}
	if c.state.AddPoint() {
		c.emit(Event{Kind: EventScored, Score: c.state.Score()})
	}
}

// Highscore reads through to the store.
func (c *Controller) Highscore() int {
	return c.store.Get()
}

// Session returns the state this controller mutates.
func (c *Controller) Session() *session.State {
	return c.state
}

// FacingAngle returns the nose angle in degrees. 0 until the first frame
// with rotation enabled.
func (c *Controller) FacingAngle() float64 {
	return c.facingAngle
}

// NoseFraction returns the tilt fraction in [0,1]; 0 is nose down.
func (c *Controller) NoseFraction() float64 {
	return c.noseFraction
}
