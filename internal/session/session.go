// Package session holds the per-session actor state shared by every
// gameplay component. Exactly one actor exists per session, so the state
// lives in one object handed to collaborators by reference.
package session

// Phase is the actor's flight state.
type Phase int

const (
	PhaseIdle   Phase = iota // Floating, waiting for the first jump
	PhaseFlying              // Gravity on, scoring allowed
	PhaseDead                // Terminal for the session
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseFlying:
		return "Flying"
	case PhaseDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// State is the session-scoped actor state. Only the actor controller
// mutates it; everything else reads through the accessors.
type State struct {
	phase   Phase
	started bool
	score   int
}

// New returns a fresh session in PhaseIdle.
func New() *State {
	return &State{}
}

// Phase returns the current phase.
func (s *State) Phase() Phase {
	return s.phase
}

// IsDead reports whether a fatal collision has happened this session.
func (s *State) IsDead() bool {
	return s.phase == PhaseDead
}

// HasStarted reports whether the first jump has been accepted.
// It stays true after death.
func (s *State) HasStarted() bool {
	return s.started
}

// Score returns the points collected this session.
func (s *State) Score() int {
	return s.score
}

// Start moves Idle to Flying. Returns false for any other phase.
func (s *State) Start() bool {
	if s.phase != PhaseIdle {
		return false
	}
	s.phase = PhaseFlying
	s.started = true
	return true
}

// Kill moves the session to Dead. Only the first call has an effect.
func (s *State) Kill() bool {
	if s.phase == PhaseDead {
		return false
	}
	s.phase = PhaseDead
	return true
}

// AddPoint increments the score while flying.
func (s *State) AddPoint() bool {
	if s.phase != PhaseFlying {
		return false
	}
	s.score++
	return true
}

// Reset begins a new session.
func (s *State) Reset() {
	s.phase = PhaseIdle
	s.started = false
	s.score = 0
}
