package actor

// EventKind names something the actor did.
type EventKind int

const (
	EventJumped EventKind = iota
	EventScored
	EventDied
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventJumped:
		return "Jumped"
	case EventScored:
		return "Scored"
	case EventDied:
		return "Died"
	default:
		return "Unknown"
	}
}

// Event is delivered to listeners synchronously, on the frame thread.
type Event struct {
	Kind  EventKind
	Score int // Session score after the event
}

// Listener receives controller events.
type Listener func(Event)

// Subscribe registers a listener for every event kind.
func (c *Controller) Subscribe(l Listener) {
	if l != nil {
		c.listeners = append(c.listeners, l)
	}
}

// OnJumped registers fn for Jumped events.
func (c *Controller) OnJumped(fn func()) {
	if fn == nil {
		return
	}
	c.on(EventJumped, func(Event) { fn() })
}

// OnScored registers fn for Scored events with the new score.
func (c *Controller) OnScored(fn func(score int)) {
	if fn == nil {
		return
	}
	c.on(EventScored, func(e Event) { fn(e.Score) })
}

// OnDied registers fn for Died events with the final score.
func (c *Controller) OnDied(fn func(score int)) {
	if fn == nil {
		return
	}
	c.on(EventDied, func(e Event) { fn(e.Score) })
}

func (c *Controller) on(kind EventKind, fn func(Event)) {
	c.Subscribe(func(e Event) {
		if e.Kind == kind {
			fn(e)
		}
	})
}

func (c *Controller) emit(e Event) {
	for _, l := range c.listeners {
		l(e)
	}
}
