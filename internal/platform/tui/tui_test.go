package tui

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// fakeGame reports whatever state the test sets.
type fakeGame struct {
	state  core.GameState
	resets int
	last   core.InputFrame
}

func (g *fakeGame) ID() string                 { return "fake" }
func (g *fakeGame) Title() string              { return "Fake Bird" }
func (g *fakeGame) Reset(core.RuntimeConfig)   { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen)    { dst.Clear() }
func (g *fakeGame) State() core.GameState      { return g.state }
func (g *fakeGame) Palette() core.Palette      { return core.Palette{core.ColorGreen: {G: 1, A: 1}} }
func (g *fakeGame) Background() core.RGBA      { return core.RGBA{B: 1, A: 1} }
func (g *fakeGame) Overlay() (core.RGBA, bool) { return core.RGBA{A: 0.5}, g.state.GameOver }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.last = core.InputFrame{Actions: map[core.Action]bool{}, Pointer: in.Pointer, Delta: in.Delta}
	for a, on := range in.Actions {
		g.last.Actions[a] = on
	}
	return core.StepResult{State: g.state, Quit: in.Has(core.ActionQuit)}
}

func init() {
	registry.Register("fake", "Fake Bird", func(registry.Deps) (registry.Game, error) {
		return &fakeGame{}, nil
	})
}

var testConfig = core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model
}

func TestGameKeyMap(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{runeKey('w'), core.ActionJump},
		{runeKey('p'), core.ActionPause},
		{runeKey('r'), core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart},
		{runeKey('q'), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		if got := keys.MapKey(tt.msg); got != tt.want {
			t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestMapKeyToFrameReportsQuit(t *testing.T) {
	keys := DefaultGameKeyMap()
	frame := core.NewInputFrame()

	if keys.MapKeyToFrame(runeKey('p'), &frame) {
		t.Error("Expected p not to be a quit request")
	}
	if !keys.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("Expected q to be a quit request")
	}
	if !frame.Has(core.ActionPause) || !frame.Has(core.ActionQuit) {
		t.Errorf("Expected frame to hold pause and quit, got %v", frame.Actions)
	}
}

func TestMouseMapping(t *testing.T) {
	frame := core.NewInputFrame()

	MapMouseToFrame(tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionMotion}, &frame)
	if !frame.Pointer.Valid || frame.Pointer.X != 5 || frame.Pointer.Y != 3 {
		t.Errorf("Pointer = %+v, expected valid at (5,3)", frame.Pointer)
	}
	if frame.Pointer.Pressed || frame.Has(core.ActionJump) {
		t.Error("Expected motion not to press or flap")
	}

	MapMouseToFrame(tea.MouseMsg{X: 6, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	if !frame.Pointer.Pressed || !frame.Has(core.ActionJump) {
		t.Error("Expected left press to press and flap")
	}

	frame.Clear()
	if frame.Pointer.Pressed || frame.Pointer.X != 6 {
		t.Errorf("Expected Clear to drop the press and keep the position, got %+v", frame.Pointer)
	}

	MapMouseToFrame(tea.MouseMsg{X: 6, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, &frame)
	if frame.Pointer.Pressed {
		t.Error("Expected right press to be ignored")
	}
}

func TestThemeShade(t *testing.T) {
	white := core.RGBA{R: 1, G: 1, B: 1, A: 1}

	tests := []struct {
		overlay core.RGBA
		want    string
	}{
		{core.RGBA{}, "#ffffff"},
		{core.RGBA{A: 1}, "#000000"},
		{core.RGBA{A: 0.5}, "#808080"},
		{core.RGBA{R: 1, A: 2}, "#ff0000"},
	}

	for _, tt := range tests {
		th := Theme{Overlay: tt.overlay}
		if got := th.shade(white); got != tt.want {
			t.Errorf("shade with overlay %+v = %s, expected %s", tt.overlay, got, tt.want)
		}
	}
}

func TestThemeOf(t *testing.T) {
	g := &fakeGame{}
	th := ThemeOf(g)

	if th.Background == nil || th.Background.B != 1 {
		t.Errorf("Background = %v, expected blue", th.Background)
	}
	if th.Palette[core.ColorGreen] != (core.RGBA{G: 1, A: 1}) {
		t.Errorf("Green = %+v, expected the game's override", th.Palette[core.ColorGreen])
	}
	if th.Palette[core.ColorRed] != defaultPalette[core.ColorRed] {
		t.Error("Expected slots the game leaves alone to keep the default")
	}
	if th.Overlay.A != 0 {
		t.Errorf("Overlay alpha = %v, expected 0 while inactive", th.Overlay.A)
	}

	g.state.GameOver = true
	if a := ThemeOf(g).Overlay.A; a != 0.5 {
		t.Errorf("Overlay alpha = %v, expected 0.5", a)
	}
}

func TestRenderScreenPlainProfile(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorGreen)
	s.DrawText(2, 0, "cd")
	s.DrawText(0, 1, "efgh")

	r := lipgloss.NewRenderer(io.Discard)
	got := RenderScreen(s, Theme{Palette: defaultPalette}, r)

	if got != "abcd\nefgh" {
		t.Errorf("RenderScreen = %q, expected %q", got, "abcd\nefgh")
	}
}

func TestModelRecordsEachRunOnce(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := NewModel(g, testConfig, Options{Store: store, Time: clock.NewMockTimeProvider(time.Unix(0, 0))})
	m.Init()

	if g.resets != 1 {
		t.Fatalf("Resets = %d, expected 1", g.resets)
	}

	g.state = core.GameState{Score: 3, GameOver: true}
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	g.state = core.GameState{}
	m = update(t, m, TickMsg{})
	g.state = core.GameState{Score: 5, GameOver: true}
	m = update(t, m, TickMsg{})

	g.state = core.GameState{}
	m = update(t, m, TickMsg{})
	g.state = core.GameState{GameOver: true}
	update(t, m, TickMsg{})

	runs, err := store.RecentScores("fake", 10)
	if err != nil {
		t.Fatalf("RecentScores failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Runs = %d, expected 2", len(runs))
	}
	if best, _ := store.HighScore("fake"); best != 5 {
		t.Errorf("HighScore = %d, expected 5", best)
	}
}

func TestModelPassesRealDelta(t *testing.T) {
	mock := clock.NewMockTimeProvider(time.Unix(0, 0))
	g := &fakeGame{}
	m := NewModel(g, testConfig, Options{Time: mock})
	m.Init()

	m = update(t, m, TickMsg{})
	mock.Advance(25 * time.Millisecond)
	update(t, m, TickMsg{})

	if g.last.Delta != 25*time.Millisecond {
		t.Errorf("Delta = %v, expected 25ms", g.last.Delta)
	}
}

func TestModelForwardsInputOnce(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig, Options{})
	m.Init()

	m = update(t, m, runeKey(' '))
	m = update(t, m, TickMsg{})
	if !g.last.Has(core.ActionJump) {
		t.Error("Expected the flap to reach the game")
	}

	update(t, m, TickMsg{})
	if g.last.Has(core.ActionJump) {
		t.Error("Expected the flap to be cleared after one frame")
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig, Options{})
	m.Init()

	m = update(t, m, runeKey('q'))
	m = update(t, m, TickMsg{})
	if !m.IsQuitting() {
		t.Error("Expected model to quit after the game saw the quit")
	}
	if m.View() != "" {
		t.Error("Expected empty view after quitting")
	}
}

func TestBackNeedsMenuAndPause(t *testing.T) {
	g := &fakeGame{state: core.GameState{Paused: true}}

	m := NewModel(g, testConfig, Options{})
	m.Init()
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Error("Expected back to be disabled without a menu")
	}

	m = NewModel(g, testConfig, Options{InMenu: true})
	m.Init()
	m = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Error("Expected back to be ignored before the game reports a pause")
	}
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("Expected back to the menu while paused")
	}
}

func TestResizeKeepsSession(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig, Options{})
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	if g.resets != 1 {
		t.Errorf("Resets = %d, expected 1", g.resets)
	}
	if m.screen.Width() != 80 || m.screen.Height() != 30-footerHeight {
		t.Errorf("Screen = %dx%d, expected 80x%d", m.screen.Width(), m.screen.Height(), 30-footerHeight)
	}
}

func TestMenuShowsBestScores(t *testing.T) {
	m := NewMenuModel(nil, testConfig, nil)
	if len(m.items) != 1 || m.items[0].Best != -1 {
		t.Fatalf("Items = %+v, expected one variant without history", m.items)
	}
	if !strings.Contains(m.View(), "Fake Bird") {
		t.Error("Expected the variant title in the menu")
	}

	store := openStore(t)
	if _, err := store.SaveScore("fake", 9); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}
	m = NewMenuModel(store, testConfig, nil)
	if m.items[0].Best != 9 {
		t.Errorf("Best = %d, expected 9", m.items[0].Best)
	}
}

func TestMenuResult(t *testing.T) {
	m := NewMenuModel(nil, testConfig, nil)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if res := next.(MenuModel).result(); res.GameID != "fake" || res.Quit {
		t.Errorf("Result = %+v, expected fake selected", res)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if res := next.(MenuModel).result(); !res.WantsScoreboard {
		t.Errorf("Result = %+v, expected scoreboard", res)
	}

	next, _ = m.Update(runeKey('q'))
	if res := next.(MenuModel).result(); !res.Quit {
		t.Errorf("Result = %+v, expected quit", res)
	}
}

func TestScoreboardToggle(t *testing.T) {
	store := openStore(t)
	for _, s := range []int{4, 10, 7} {
		if _, err := store.SaveScore("fake", s); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 80, 24, nil)
	if len(m.scores) != 3 || m.scores[0].Score != 10 {
		t.Fatalf("Scores = %+v, expected best first", m.scores)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewRecent || len(m.scores) != 3 {
		t.Errorf("Expected the recent view with 3 runs, got %v with %d", m.view, len(m.scores))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("Expected esc to go back")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24, nil)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("Expected the empty message without a store")
	}
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return s, cmd
}

func TestSessionFlow(t *testing.T) {
	games := 0
	factory := func(id string) (registry.Game, error) {
		games++
		return &fakeGame{state: core.GameState{Paused: true}}, nil
	}
	m := NewSessionModel(testConfig, Options{}, factory)

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Screen() != "game" || cmd == nil {
		t.Fatalf("Screen = %s, expected game with a tick scheduled", m.Screen())
	}

	m, _ = updateSession(t, m, TickMsg{})
	m, _ = updateSession(t, m, runeKey('b'))
	if m.Screen() != "menu" {
		t.Fatalf("Screen = %s, expected menu", m.Screen())
	}

	// The previous game's tick is still in flight
	m, cmd = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Screen() != "game" || cmd != nil {
		t.Error("Expected a second game to reuse the pending tick")
	}
	if games != 2 {
		t.Errorf("Games = %d, expected 2", games)
	}

	m, _ = updateSession(t, m, TickMsg{})
	m, _ = updateSession(t, m, runeKey('b'))
	m, _ = updateSession(t, m, TickMsg{})
	m, cmd = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("Expected a new tick once the old one drained in the menu")
	}

	m, _ = updateSession(t, m, TickMsg{})
	m, _ = updateSession(t, m, runeKey('b'))
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Screen() != "scores" {
		t.Fatalf("Screen = %s, expected scores", m.Screen())
	}
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Screen() != "menu" {
		t.Fatalf("Screen = %s, expected menu", m.Screen())
	}

	m, _ = updateSession(t, m, runeKey('q'))
	if m.View() != "" {
		t.Error("Expected empty view after quitting")
	}
}

func TestSessionFactoryError(t *testing.T) {
	factory := func(string) (registry.Game, error) {
		return nil, errors.New("bad config")
	}
	m := NewSessionModel(testConfig, Options{}, factory)

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Screen() != "menu" {
		t.Errorf("Screen = %s, expected to stay in the menu", m.Screen())
	}
	if !strings.Contains(m.View(), "bad config") {
		t.Error("Expected the error in the menu view")
	}
}
