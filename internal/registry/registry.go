// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
)

// Game is the interface every playable variant implements.
// Games contain pure logic with no Bubble Tea dependency.
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier (e.g. "flappy"). Used for CLI commands
	// and score storage.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts a fresh session at the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame. The frame carries the
	// real time elapsed since the previous one.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State returns the current score and flags.
	State() core.GameState
}

// Overlayed is implemented by games that draw a full-screen color wash on
// top of their frame.
type Overlayed interface {
	Overlay() (core.RGBA, bool)
}

// Themed is implemented by games that define their own palette and a
// background color for the whole frame.
type Themed interface {
	Palette() core.Palette
	Background() core.RGBA
}

// Deps are the collaborators a factory wires into a new game.
type Deps struct {
	ConfigPath string          // Explicit config file; empty uses the search path
	Prefs      highscore.Prefs // Highscore backend
	Sound      audio.Player    // Effect player
	Logger     *log.Logger
}

// WithDefaults fills missing collaborators with in-process stand-ins.
func (d Deps) WithDefaults() Deps {
	if d.Prefs == nil {
		d.Prefs = highscore.NewMemory()
	}
	if d.Sound == nil {
		d.Sound = audio.Silent{}
	}
	if d.Logger == nil {
		d.Logger = log.Default()
	}
	return d
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance. Configuration problems are
// returned as errors.
type Factory func(deps Deps) (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered or the factory fails.
func Create(id string, deps Deps) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g, err := f(deps.WithDefaults())
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
