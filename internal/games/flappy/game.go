// Package flappy implements the bird game in two variants: the classic one
// and a steampunk reskin with nose tilt and heavier tuning. Both share the
// same assembly and differ only in configuration.
package flappy

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/actor"
	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
	"github.com/vovakirdan/tui-flappy/internal/physics"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/scene"
	"github.com/vovakirdan/tui-flappy/internal/score"
	"github.com/vovakirdan/tui-flappy/internal/session"
	"github.com/vovakirdan/tui-flappy/internal/transition"
)

// sceneGameplay is the only scene the loader knows how to build.
const sceneGameplay = "gameplay"

// dimAlpha is the strength of the wash behind the game-over panel.
const dimAlpha = 0.35

// Game wires the gameplay components into one playable session.
type Game struct {
	id     string
	cfg    config.GameConfig
	logger *log.Logger

	clock   *clock.Clock
	body    *physics.Body
	session *session.State
	ctrl    *actor.Controller
	world   *world
	ui      *overlays

	fader  *transition.Transition
	loader *scene.Loader
	pauser *scene.Pauser

	live  *score.Tracker // HUD counter, hidden on death
	final *score.Tracker // Score line on the game-over panel
	best  *score.Tracker

	layout   layout
	runtime  core.RuntimeConfig
	restarts int64
	flap     float64 // Seconds left with the wings up
}

// New loads the configuration for variant id and assembles a game.
func New(id string, deps registry.Deps) (*Game, error) {
	deps = deps.WithDefaults()
	cfg, err := config.Load(id, deps.ConfigPath, deps.Logger)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(id, cfg, deps)
}

// NewWithConfig assembles a game from an already loaded configuration.
func NewWithConfig(id string, cfg config.GameConfig, deps registry.Deps) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	deps = deps.WithDefaults()

	g := &Game{
		id:      id,
		cfg:     cfg,
		logger:  deps.Logger.WithPrefix(id),
		clock:   clock.New(),
		body:    physics.NewBody(cfg.Bird.StartY, cfg.Physics.Gravity),
		session: session.New(),
		ui:      &overlays{},
		runtime: core.DefaultConfig(),
	}
	g.ui.reset()

	store := highscore.New(deps.Prefs, id, cfg.HighscoreKey, g.logger)
	ctrl, err := actor.New(actor.Config{
		JumpForce:           cfg.Physics.JumpForce,
		MaxVelocity:         cfg.Physics.MaxVelocity,
		Rotation:            cfg.Bird.Rotation,
		RotationChangeSpeed: cfg.Bird.RotationChangeSpeed,
		NoseUpAngle:         cfg.Bird.NoseUpAngle,
		NoseDownAngle:       cfg.Bird.NoseDownAngle,
	}, g.body, g.session, store, g.ui)
	if err != nil {
		return nil, fmt.Errorf("flappy: %s: %w", id, err)
	}
	g.ctrl = ctrl

	g.fader, err = transition.New(cfg.Transition.Speed)
	if err != nil {
		return nil, fmt.Errorf("flappy: %s: %w", id, err)
	}
	g.loader = scene.NewLoader(g.fader, g.load, g.logger)
	g.pauser = scene.NewPauser(g.clock, g.session)

	g.live = score.NewTracker(ctrl, score.Live, true)
	g.final = score.NewTracker(ctrl, score.Live, false)
	g.best = score.NewTracker(ctrl, score.Best, false)

	ctrl.OnJumped(func() { g.flap = cfg.Bird.FlapDuration })
	ctrl.OnDied(func(s int) { g.logger.Info("run over", "score", s, "best", g.best.Value()) })
	audio.Attach(ctrl, deps.Sound)

	g.world = newWorld(cfg, g.runtime.Seed)
	g.layout = newLayout(g.runtime.ScreenW, g.runtime.ScreenH, cfg.World)
	return g, nil
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name from the configuration.
func (g *Game) Title() string {
	return g.cfg.Title
}

// Config returns the configuration the game was built from.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// Reset starts a brand new session for the given screen and seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.restarts = 0
	g.layout = newLayout(cfg.ScreenW, cfg.ScreenH, g.cfg.World)
	g.loader.Cancel()
	g.restart()
}

// load is the scene loader's callback.
func (g *Game) load(name string) {
	if name != sceneGameplay {
		g.logger.Warn("unknown scene", "scene", name)
		return
	}
	g.restarts++
	g.restart()
}

// restart rebuilds the session in place. Each restart draws a new layout
// from the base seed so a run stays reproducible.
func (g *Game) restart() {
	g.ctrl.Reset()
	g.body.Y = g.cfg.Bird.StartY
	g.world.build(g.runtime.Seed + g.restarts)
	g.ui.reset()
	g.live.Reset()
	g.final.Reset()
	g.best.Reset()
	g.flap = 0
	g.pauser.Release()
	scene.FadeIn(g.fader)
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Quit: true}
	}

	// UI clicks land before the frame is simulated
	overPause := over(in.Pointer, g.layout.pause)
	if in.Has(core.ActionPause) || (in.Pointer.Pressed && overPause) {
		g.pauser.Toggle()
	}
	if g.session.IsDead() && (in.Has(core.ActionRestart) || (in.Pointer.Pressed && over(in.Pointer, g.layout.restart))) {
		g.loader.Load(sceneGameplay)
	}

	frame := g.clock.Advance(in.Delta)

	g.fader.OnFrame(frame.Unscaled)

	g.ctrl.OnFrame(actor.Frame{
		Delta:         frame.Delta,
		Paused:        frame.Paused,
		JumpPressed:   in.Has(core.ActionJump),
		PointerOverUI: overPause,
	})

	g.body.Integrate(frame.Delta)
	g.world.update(frame.Delta, g.session)
	g.collide()

	for n := g.world.enteredZones(g.world.birdBox(g.body.Y)); n > 0; n-- {
		g.ctrl.OnScoreZoneEnter()
	}

	if g.flap > 0 {
		g.flap -= frame.Delta
	}

	return core.StepResult{State: g.State()}
}

// collide reports pipe and ground hits to the controller. The ceiling only
// stops the bird.
func (g *Game) collide() {
	w := g.world
	if w.hitsPipe(w.birdBox(g.body.Y)) {
		g.ctrl.OnCollision()
	}

	grounded := g.body.Y <= w.floor()
	g.body.ClampY(w.floor(), w.ceiling())
	if grounded {
		g.ctrl.OnCollision()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.session.Score(),
		Highscore: g.best.Value(),
		GameOver:  g.session.IsDead(),
		Paused:    g.pauser.Paused(),
	}
}

// Overlay returns the color washed over the frame: the scene fade while it
// runs, otherwise a dim veil behind the game-over panel.
func (g *Game) Overlay() (core.RGBA, bool) {
	if g.fader.Active() {
		return g.fader.Color().Clamped(), true
	}
	if g.ui.gameOver {
		c := g.cfg.Theme.Overlay.RGBA
		c.A *= dimAlpha
		return c, true
	}
	return core.Clear, false
}

// Palette maps the drawing slots to theme colors.
func (g *Game) Palette() core.Palette {
	t := g.cfg.Theme
	return core.Palette{
		colorText:   t.Text.RGBA,
		colorSky:    t.Sky.RGBA,
		colorBird:   t.Bird.RGBA,
		colorPipe:   t.Pipe.RGBA,
		colorGround: t.Ground.RGBA,
		colorCloud:  t.Cloud.RGBA,
		colorAccent: t.Accent.RGBA,
	}
}

// Background returns the sky color.
func (g *Game) Background() core.RGBA {
	return g.cfg.Theme.Sky.RGBA
}

func init() {
	variants := []struct{ id, title string }{
		{"flappy", "Flappy Bird"},
		{"steampunk", "Steampunk Bird"},
	}
	for _, v := range variants {
		id := v.id
		registry.Register(id, v.title, func(deps registry.Deps) (registry.Game, error) {
			g, err := New(id, deps)
			if err != nil {
				return nil, err
			}
			return g, nil
		})
	}
}
