package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/scroll"
)

// Entity kinds in the scroll field.
const (
	kindPipe = iota
	kindGround
	kindCloud
	kindMarker
)

// offscreen extends pipe columns past the top and bottom edges so the bird
// cannot slip around them.
const offscreen = 1000

// world owns the scrolling entities and the collision geometry.
type world struct {
	cfg   config.GameConfig
	field *scroll.Field

	// Pipes whose score zone overlapped the bird last frame
	inZone map[*scroll.Entity]bool
	// Pipe X before the latest update
	lastX map[*scroll.Entity]float64
}

func newWorld(cfg config.GameConfig, seed int64) *world {
	w := &world{
		cfg:    cfg,
		inZone: make(map[*scroll.Entity]bool),
		lastX:  make(map[*scroll.Entity]float64),
	}
	w.build(seed)
	return w
}

// build lays out a fresh field.
func (w *world) build(seed int64) {
	if w.field == nil {
		w.field = scroll.NewField(seed)
	} else {
		w.field.Reseed(seed)
	}
	clear(w.inZone)
	clear(w.lastX)

	p := w.cfg.Pipes
	for i := 0; i < p.Count; i++ {
		w.field.Spawn(&scroll.Entity{
			Kind:       kindPipe,
			X:          p.SpawnX + float64(i)*p.Spacing,
			Speed:      p.Speed,
			SpawnX:     p.SpawnX,
			DespawnX:   p.DespawnX,
			Mode:       scroll.Teleport,
			RandomizeY: true,
			YMin:       p.GapMinY,
			YMax:       p.GapMaxY,
		})
	}

	// Ground tiles cover the world plus one spare tile
	g := w.cfg.Ground
	tiles := int(math.Ceil(w.cfg.World.Width/g.TileWidth)) + 1
	for i := 0; i < tiles; i++ {
		w.field.Spawn(&scroll.Entity{
			Kind:     kindGround,
			X:        float64(i) * g.TileWidth,
			Speed:    g.Speed,
			SpawnX:   float64(tiles-1) * g.TileWidth,
			DespawnX: -g.TileWidth,
			Mode:     scroll.Teleport,
		})
	}

	c := w.cfg.Clouds
	span := w.cfg.World.Width + 2*c.Width
	for i := 0; i < c.Count; i++ {
		w.field.Spawn(&scroll.Entity{
			Kind:       kindCloud,
			X:          -c.Width + float64(i)*span/float64(c.Count),
			Speed:      c.Speed,
			SpawnX:     w.cfg.World.Width + c.Width,
			DespawnX:   -c.Width,
			Mode:       scroll.Teleport,
			RandomizeY: true,
			YMin:       c.MinY,
			YMax:       c.MaxY,
			AlwaysMove: true,
		})
	}

	if m := w.cfg.StartMarker; m.Enabled {
		w.field.Spawn(&scroll.Entity{
			Kind:     kindMarker,
			X:        m.X,
			Y:        w.cfg.World.GroundHeight,
			Speed:    p.Speed,
			DespawnX: -float64(len(m.Label)) - 1,
			Mode:     scroll.Destroy,
		})
	}
}

// update scrolls the field by dt, remembering where each pipe started.
func (w *world) update(dt float64, actor scroll.ActorView) scroll.Stats {
	for _, pipe := range w.field.OfKind(kindPipe) {
		w.lastX[pipe] = pipe.X
	}
	return w.field.Update(dt, actor)
}

// birdBox returns the bird's hitbox centred on y.
func (w *world) birdBox(y float64) core.Box {
	b := w.cfg.Bird
	return core.BoxAround(b.X, y, b.Width, b.Height)
}

// pipeBoxes returns the solid upper and lower halves of a pipe pair.
func (w *world) pipeBoxes(pipe *scroll.Entity) (top, bottom core.Box) {
	p := w.cfg.Pipes
	half := p.Width / 2
	gapTop := pipe.Y + p.Gap/2
	gapBottom := pipe.Y - p.Gap/2
	top = core.Box{MinX: pipe.X - half, MaxX: pipe.X + half, MinY: gapTop, MaxY: offscreen}
	bottom = core.Box{MinX: pipe.X - half, MaxX: pipe.X + half, MinY: -offscreen, MaxY: gapBottom}
	return top, bottom
}

// scoreZone is a thin trigger spanning the gap at the pipe's trailing edge.
func (w *world) scoreZone(pipe *scroll.Entity) core.Box {
	p := w.cfg.Pipes
	x := pipe.X + p.Width/2
	return core.Box{MinX: x - 0.25, MaxX: x + 0.25, MinY: pipe.Y - p.Gap/2, MaxY: pipe.Y + p.Gap/2}
}

// sweptZone stretches the score zone over the distance the pipe moved in
// the latest update. A pipe that jumped back to its spawn point only
// covers where it is now.
func (w *world) sweptZone(pipe *scroll.Entity) core.Box {
	zone := w.scoreZone(pipe)
	prev, ok := w.lastX[pipe]
	if !ok {
		return zone
	}
	moved := pipe.X - prev
	if moved*pipe.Speed <= 0 {
		return zone
	}
	if moved < 0 {
		zone.MaxX -= moved
	} else {
		zone.MinX -= moved
	}
	return zone
}

// hitsPipe reports whether the bird box touches any pipe.
func (w *world) hitsPipe(bird core.Box) bool {
	for _, pipe := range w.field.OfKind(kindPipe) {
		top, bottom := w.pipeBoxes(pipe)
		if bird.Overlaps(top) || bird.Overlaps(bottom) {
			return true
		}
	}
	return false
}

// enteredZones counts score zones the bird entered this frame, including
// zones that swept past it during a long frame. A zone counts again only
// after the bird has left it.
func (w *world) enteredZones(bird core.Box) int {
	entered := 0
	for _, pipe := range w.field.OfKind(kindPipe) {
		inside := bird.Overlaps(w.sweptZone(pipe))
		if inside && !w.inZone[pipe] {
			entered++
		}
		w.inZone[pipe] = inside
	}
	return entered
}

// floor and ceiling are the bird's centre limits.
func (w *world) floor() float64 {
	return w.cfg.World.GroundHeight + w.cfg.Bird.Height/2
}

func (w *world) ceiling() float64 {
	return w.cfg.World.Height - w.cfg.Bird.Height/2
}
