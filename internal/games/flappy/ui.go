package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

const (
	pauseLabel   = "[II]"
	resumeLabel  = "[▶ ]"
	restartLabel = "[ Restart ]"

	panelW = 24
	panelH = 8
)

// overlays tracks which full-screen panels are up. The controller hides
// the how-to-play panel on the first flap and raises the game-over panel
// on death.
type overlays struct {
	howToPlay bool
	gameOver  bool
}

func (o *overlays) HideHowToPlay() { o.howToPlay = false }
func (o *overlays) ShowGameOver()  { o.gameOver = true }

func (o *overlays) reset() {
	o.howToPlay = true
	o.gameOver = false
}

// layout maps the playfield and clickable UI into screen cells.
type layout struct {
	screenW, screenH int

	field   core.Rect // Letterboxed playfield
	pause   core.Rect // Pause button hot zone
	panel   core.Rect // Game-over panel
	restart core.Rect // Restart button inside the panel
}

func newLayout(screenW, screenH int, w config.WorldConfig) layout {
	field := core.FitAspect(screenW, screenH, w.Width, w.Height)
	l := layout{screenW: screenW, screenH: screenH, field: field}

	l.pause = core.NewRect(field.Right()-len([]rune(pauseLabel))-1, field.Y, len([]rune(pauseLabel)), 1)
	l.panel = core.NewRect(field.X+(field.W-panelW)/2, field.Y+(field.H-panelH)/2, panelW, panelH)
	l.restart = core.NewRect(l.panel.X+(panelW-len(restartLabel))/2, l.panel.Y+panelH-2, len(restartLabel), 1)
	return l
}

// fits reports whether the layout was computed for a w x h screen.
func (l layout) fits(w, h int) bool {
	return l.screenW == w && l.screenH == h
}

// over reports whether the pointer rests on r.
func over(p core.Pointer, r core.Rect) bool {
	return p.Valid && r.Contains(p.X, p.Y)
}
