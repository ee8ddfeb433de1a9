// Package score turns controller events into HUD text.
package score

import (
	"strconv"

	"github.com/vovakirdan/tui-flappy/internal/actor"
)

// Mode selects which number a tracker shows.
type Mode int

const (
	// Live shows the running session score.
	Live Mode = iota
	// Best shows the stored highscore.
	Best
)

// Source is what a tracker reads from.
type Source interface {
	Subscribe(l actor.Listener)
	Highscore() int
}

// Tracker caches the value to display and refreshes it on events.
type Tracker struct {
	mode         Mode
	hideWhenDead bool

	src     Source
	value   int
	visible bool
}

// NewTracker subscribes a tracker to src.
func NewTracker(src Source, mode Mode, hideWhenDead bool) *Tracker {
	t := &Tracker{mode: mode, hideWhenDead: hideWhenDead, src: src}
	t.Reset()
	src.Subscribe(t.handle)
	return t
}

// Reset returns the tracker to the start-of-session view.
func (t *Tracker) Reset() {
	t.visible = true
	t.value = 0
	if t.mode == Best {
		t.value = t.src.Highscore()
	}
}

func (t *Tracker) handle(e actor.Event) {
	switch e.Kind {
	case actor.EventScored:
		if t.mode == Live {
			t.value = e.Score
		}
	case actor.EventDied:
		if t.mode == Best {
			t.value = t.src.Highscore()
		} else {
			t.value = e.Score
		}
		if t.hideWhenDead {
			t.visible = false
		}
	}
}

// Value returns the number being tracked.
func (t *Tracker) Value() int {
	return t.value
}

// Text returns the display string and whether it should be drawn.
func (t *Tracker) Text() (string, bool) {
	return strconv.Itoa(t.value), t.visible
}
