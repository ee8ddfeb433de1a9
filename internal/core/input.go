package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up, left click - flap
	ActionPause          // P - pause/unpause
	ActionRestart        // R, Enter - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is the mouse state seen during one frame, in screen cells.
type Pointer struct {
	X, Y    int
	Valid   bool // A position has been reported at least once
	Pressed bool // Left button went down this frame
}

// InputFrame is everything the platform hands a game for one frame: the
// actions triggered since the previous frame, the pointer, and the real
// time elapsed since the previous frame.
type InputFrame struct {
	Actions map[Action]bool
	Pointer Pointer
	Delta   time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets actions and the pointer press for the next frame.
// The pointer position is kept since hovering persists between frames.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer.Pressed = false
	f.Delta = 0
}
