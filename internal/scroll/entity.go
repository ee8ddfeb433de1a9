// Package scroll moves world objects along the horizontal axis and recycles
// them at a despawn boundary, giving the illusion of endless travel with a
// fixed set of objects.
package scroll

import "math/rand"

// Mode selects what happens when an entity passes its despawn boundary.
type Mode int

const (
	// Teleport moves the entity back to its spawn boundary.
	Teleport Mode = iota
	// Destroy removes the entity permanently.
	Destroy
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Teleport:
		return "Teleport"
	case Destroy:
		return "Destroy"
	default:
		return "Unknown"
	}
}

// Outcome reports what an entity did during one update.
type Outcome int

const (
	Frozen Outcome = iota
	Moved
	Teleported
	Destroyed
)

// ActorView is the read-only slice of session state scrolling depends on.
type ActorView interface {
	IsDead() bool
	HasStarted() bool
}

// Entity is one scrolling world object.
type Entity struct {
	Kind int // Game-defined tag

	X, Y     float64
	Speed    float64 // Signed units/s; negative moves left
	SpawnX   float64
	DespawnX float64
	Mode     Mode

	RandomizeY bool
	YMin, YMax float64

	// AlwaysMove keeps the entity scrolling before start and after death.
	AlwaysMove bool

	rng       *rand.Rand
	destroyed bool
}

// OnSpawn draws a fresh Y if the entity randomizes it.
func (e *Entity) OnSpawn(rng *rand.Rand) {
	if rng != nil {
		e.rng = rng
	}
	e.randomizeY()
}

func (e *Entity) randomizeY() {
	if !e.RandomizeY || e.rng == nil {
		return
	}
	lo, hi := e.YMin, e.YMax
	if hi < lo {
		lo, hi = hi, lo
	}
	e.Y = lo + e.rng.Float64()*(hi-lo)
}

// Destroyed reports whether the entity has been removed.
func (e *Entity) Destroyed() bool {
	return e.destroyed
}

// Update advances the entity by dt seconds. The boundary is checked once
// per frame, so a large dt can overshoot before recycling.
func (e *Entity) Update(dt float64, actor ActorView) Outcome {
	if e.destroyed {
		return Destroyed
	}
	if !e.AlwaysMove && (actor.IsDead() || !actor.HasStarted()) {
		return Frozen
	}

	e.X += e.Speed * dt
	if !e.passedDespawn() {
		return Moved
	}

	if e.Mode == Destroy {
		e.destroyed = true
		return Destroyed
	}

	e.X = e.SpawnX
	e.randomizeY()
	return Teleported
}

func (e *Entity) passedDespawn() bool {
	switch {
	case e.Speed < 0:
		return e.X < e.DespawnX
	case e.Speed > 0:
		return e.X > e.DespawnX
	}
	return false
}
