package scroll

import "math/rand"

// Stats counts what happened to a field's entities in one update.
type Stats struct {
	Moved      int
	Teleported int
	Destroyed  int
}

// Field owns a set of scrolling entities and the random source used to
// place them. A fixed seed gives a reproducible layout.
type Field struct {
	rng      *rand.Rand
	entities []*Entity
}

// NewField creates an empty field seeded with seed.
func NewField(seed int64) *Field {
	return &Field{rng: rand.New(rand.NewSource(seed))}
}

// Reseed clears the field and restarts its random source.
func (f *Field) Reseed(seed int64) {
	f.rng = rand.New(rand.NewSource(seed))
	f.entities = f.entities[:0]
}

// Spawn adds e to the field and runs its spawn hook.
func (f *Field) Spawn(e *Entity) *Entity {
	e.OnSpawn(f.rng)
	f.entities = append(f.entities, e)
	return e
}

// Update advances every entity and drops destroyed ones.
func (f *Field) Update(dt float64, actor ActorView) Stats {
	var st Stats
	kept := f.entities[:0]
	for _, e := range f.entities {
		switch e.Update(dt, actor) {
		case Moved:
			st.Moved++
		case Teleported:
			st.Teleported++
		case Destroyed:
			st.Destroyed++
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(f.entities); i++ {
		f.entities[i] = nil
	}
	f.entities = kept
	return st
}

// Entities returns the live entities. The slice is owned by the field.
func (f *Field) Entities() []*Entity {
	return f.entities
}

// OfKind returns the live entities tagged kind.
func (f *Field) OfKind(kind int) []*Entity {
	var out []*Entity
	for _, e := range f.entities {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of live entities.
func (f *Field) Len() int {
	return len(f.entities)
}
