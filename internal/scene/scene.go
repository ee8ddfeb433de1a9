// Package scene holds the glue at session boundaries: fading in when a
// scene starts, fading out before loading another, and pausing.
package scene

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/transition"
)

// LoadFunc replaces the current scene with the named one.
type LoadFunc func(name string)

// Loader fades the screen to black and then loads a scene. Presses after
// the first are ignored until the load has happened.
type Loader struct {
	fader      *transition.Transition
	load       LoadFunc
	logger     *log.Logger
	wasPressed bool
}

// NewLoader creates a loader that masks load with fader.
func NewLoader(fader *transition.Transition, load LoadFunc, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{fader: fader, load: load, logger: logger}
}

// Load starts the fade-out. It returns false if a load is already pending.
func (l *Loader) Load(name string) bool {
	if l.wasPressed {
		return false
	}
	l.wasPressed = true
	l.logger.Debug("loading scene", "scene", name)

	l.fader.Start(core.Clear, core.Black, true, func() {
		l.wasPressed = false
		l.load(name)
	})
	return true
}

// Pending reports whether a load is waiting on the fade.
func (l *Loader) Pending() bool {
	return l.wasPressed
}

// Cancel abandons a pending load and stops its fade.
func (l *Loader) Cancel() {
	l.wasPressed = false
	l.fader.Stop()
}

// FadeIn reveals a freshly loaded scene from black.
func FadeIn(fader *transition.Transition) {
	fader.Start(core.Black, core.Clear, false, nil)
}

// TimeScaler is the clock surface the pauser drives.
type TimeScaler interface {
	SetTimeScale(s float64)
}

// Actor is the session state the pauser checks.
type Actor interface {
	IsDead() bool
	HasStarted() bool
}

// Pauser toggles the time scale between 0 and 1.
type Pauser struct {
	clock  TimeScaler
	actor  Actor
	paused bool
}

// NewPauser creates a pauser for one session.
func NewPauser(clock TimeScaler, actor Actor) *Pauser {
	return &Pauser{clock: clock, actor: actor}
}

// Toggle flips the pause state. It does nothing before the first jump or
// after death and reports whether the state changed.
func (p *Pauser) Toggle() bool {
	if p.actor.IsDead() || !p.actor.HasStarted() {
		return false
	}
	p.paused = !p.paused
	if p.paused {
		p.clock.SetTimeScale(0)
	} else {
		p.clock.SetTimeScale(1)
	}
	return true
}

// Paused reports whether the pauser has stopped time.
func (p *Pauser) Paused() bool {
	return p.paused
}

// Release resumes time regardless of session state. Used when a scene is
// replaced while paused.
func (p *Pauser) Release() {
	p.paused = false
	p.clock.SetTimeScale(1)
}
