package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// footerHeight is the row kept for the help line.
const footerHeight = 1

// Options are the per-program collaborators of a game model.
type Options struct {
	Store    *storage.Store // Run history; nil disables it
	Logger   *log.Logger
	Renderer *lipgloss.Renderer // Nil uses lipgloss's default
	Time     clock.TimeProvider // Nil means real time
	InMenu   bool               // A menu waits behind the game; enables Back
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	stopwatch  *clock.Stopwatch
	inputFrame core.InputFrame
	keys       GameKeyMap
	help       help.Model
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current game over is in the history
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	keys := DefaultGameKeyMap()
	keys.Back.SetEnabled(opts.InMenu)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		opts:       opts,
		config:     cfg,
		stopwatch:  clock.NewStopwatch(opts.Time),
		inputFrame: core.NewInputFrame(),
		keys:       keys,
		help:       h,
	}
}

func playHeight(h int) int {
	return max(h-footerHeight, 1)
}

// Init starts the game and the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
}

// gameConfig is the runtime config minus the footer row.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = playHeight(cfg.ScreenH)
	return cfg
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	// Quit is forwarded so the game sees it on the next frame
	m.keys.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleResize keeps the session; the game re-fits its playfield on the
// next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame with the real time since the last.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.inputFrame.Delta = m.stopwatch.Lap()

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	m.recordRun()
	return m, tickCmd(m.config.TickRate)
}

// recordRun stores each finished run once. Restarts happen inside the game,
// so a live state re-arms the save.
func (m *Model) recordRun() {
	if !m.gameState.GameOver {
		m.runSaved = false
		return
	}
	if m.runSaved {
		return
	}
	m.runSaved = true

	if m.opts.Store == nil || m.gameState.Score == 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		m.opts.Logger.Warn("could not save run", "game", m.game.ID(), "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	frame := RenderScreen(m.screen, ThemeOf(m.game), m.opts.Renderer)

	footer := m.renderer().NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(m.help.View(m.keys))
	return frame + "\n" + footer
}

func (m Model) renderer() *lipgloss.Renderer {
	if m.opts.Renderer != nil {
		return m.opts.Renderer
	}
	return lipgloss.DefaultRenderer()
}

// IsQuitting returns true if the player asked to leave the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the player asked for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state seen on the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run plays game in the current terminal until the player quits.
// It reports whether the player asked to go back to a menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Hover over the pause button needs motion events
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
