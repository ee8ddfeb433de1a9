package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/scroll"
)

// Drawing slots. The game's palette gives each one its theme color.
const (
	colorText   = core.ColorDefault
	colorSky    = core.ColorBlue
	colorBird   = core.ColorYellow
	colorPipe   = core.ColorGreen
	colorGround = core.ColorBrown
	colorCloud  = core.ColorWhite
	colorAccent = core.ColorOrange
	colorBars   = core.ColorGray
)

// Glyphs
const (
	barChar        = '░'
	pipeChar       = '█'
	pipeCapChar    = '▓'
	groundTopChar  = '═'
	groundSeamChar = '╤'
	groundChar     = '▒'
	cloudChar      = '░'
	postChar       = '│'
	wingUpChar     = '^'
	wingDownChar   = 'v'
	deadChar       = 'x'
)

// capOverhang is how far a pipe cap sticks out on each side, in world units.
const capOverhang = 0.5

// viewport maps world units (Y up) onto the letterboxed playfield.
type viewport struct {
	rect          core.Rect
	width, height float64
}

func (v viewport) cellW() float64 { return v.width / float64(v.rect.W) }
func (v viewport) cellH() float64 { return v.height / float64(v.rect.H) }

// centre returns the world position at the middle of a screen cell.
func (v viewport) centre(col, row int) (x, y float64) {
	x = (float64(col-v.rect.X) + 0.5) * v.cellW()
	y = (float64(v.rect.Bottom()-row) - 0.5) * v.cellH()
	return x, y
}

// cell returns the screen cell containing a world position.
func (v viewport) cell(x, y float64) (col, row int) {
	col = v.rect.X + int(math.Floor(x/v.cellW()))
	row = v.rect.Bottom() - 1 - int(math.Floor(y/v.cellH()))
	return col, row
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	if !g.layout.fits(dst.Width(), dst.Height()) {
		g.layout = newLayout(dst.Width(), dst.Height(), g.cfg.World)
	}
	dst.Clear()

	field := g.layout.field
	if field.W <= 0 || field.H <= 0 {
		return
	}
	v := viewport{rect: field, width: g.cfg.World.Width, height: g.cfg.World.Height}

	g.drawBars(dst)
	g.drawWorld(dst, v)
	g.drawMarkers(dst, v)
	g.drawBird(dst, v)
	g.drawHUD(dst)

	switch {
	case g.ui.gameOver:
		g.drawGameOver(dst)
	case g.ui.howToPlay:
		g.drawHowToPlay(dst)
	case g.pauser.Paused():
		dst.DrawTextCentered(field, field.Y+field.H/2, "PAUSED", colorAccent)
	}
}

// drawBars shades the letterbox area around the playfield.
func (g *Game) drawBars(dst *core.Screen) {
	field := g.layout.field
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if !field.Contains(x, y) {
				dst.SetColor(x, y, barChar, colorBars)
			}
		}
	}
}

// drawWorld rasterizes sky, clouds, pipes and ground cell by cell.
func (g *Game) drawWorld(dst *core.Screen, v viewport) {
	pipes := g.world.field.OfKind(kindPipe)
	tiles := g.world.field.OfKind(kindGround)
	clouds := g.world.field.OfKind(kindCloud)

	for row := v.rect.Y; row < v.rect.Bottom(); row++ {
		for col := v.rect.X; col < v.rect.Right(); col++ {
			x, y := v.centre(col, row)
			r, c := g.groundAt(v, x, y, tiles)
			if r == 0 {
				r, c = g.pipeAt(v, x, y, pipes)
			}
			if r == 0 {
				r, c = g.cloudAt(v, x, y, clouds)
			}
			if r == 0 {
				r, c = ' ', colorSky
			}
			dst.SetColor(col, row, r, c)
		}
	}
}

func (g *Game) groundAt(v viewport, x, y float64, tiles []*scroll.Entity) (rune, core.Color) {
	top := g.cfg.World.GroundHeight
	if y >= top {
		return 0, 0
	}
	if y < top-v.cellH() {
		return groundChar, colorGround
	}
	for _, t := range tiles {
		if off := x - t.X; off >= 0 && off < v.cellW() {
			return groundSeamChar, colorGround
		}
	}
	return groundTopChar, colorGround
}

func (g *Game) pipeAt(v viewport, x, y float64, pipes []*scroll.Entity) (rune, core.Color) {
	p := g.cfg.Pipes
	half := p.Width / 2
	for _, pipe := range pipes {
		dx := math.Abs(x - pipe.X)
		if dx > half+capOverhang {
			continue
		}
		gapTop := pipe.Y + p.Gap/2
		gapBottom := pipe.Y - p.Gap/2
		if (y > gapTop && y < gapTop+v.cellH()) || (y < gapBottom && y > gapBottom-v.cellH()) {
			return pipeCapChar, colorPipe
		}
		if dx <= half && (y > gapTop || y < gapBottom) {
			return pipeChar, colorPipe
		}
	}
	return 0, 0
}

// Clouds are a flat body with a smaller puff on top.
func (g *Game) cloudAt(v viewport, x, y float64, clouds []*scroll.Entity) (rune, core.Color) {
	w := g.cfg.Clouds.Width
	h := v.cellH()
	for _, c := range clouds {
		dx := math.Abs(x - c.X)
		dy := y - c.Y
		if dx < w/2 && math.Abs(dy) < h/2 {
			return cloudChar, colorCloud
		}
		if dx < w/4 && dy >= h/2 && dy < 1.5*h {
			return cloudChar, colorCloud
		}
	}
	return 0, 0
}

// drawMarkers draws the start line post with its label on top.
func (g *Game) drawMarkers(dst *core.Screen, v viewport) {
	label := g.cfg.StartMarker.Label
	for _, m := range g.world.field.OfKind(kindMarker) {
		col, row := v.cell(m.X, m.Y)
		for i := 0; i < 3; i++ {
			dst.SetColor(col, row-i, postChar, colorAccent)
		}
		dst.DrawTextColor(col-len([]rune(label))/2, row-3, label, colorAccent)
	}
}

// drawBird draws a wing and a nose side by side.
func (g *Game) drawBird(dst *core.Screen, v viewport) {
	col, row := v.cell(g.cfg.Bird.X, g.body.Y)

	wing := wingDownChar
	switch {
	case g.session.IsDead():
		wing = deadChar
	case g.flap > 0:
		wing = wingUpChar
	}
	dst.SetColor(col-1, row, wing, colorBird)
	dst.SetColor(col, row, g.noseChar(), colorBird)
}

// noseChar shows the tilt in three steps.
func (g *Game) noseChar() rune {
	if !g.cfg.Bird.Rotation {
		return '>'
	}
	switch a := g.ctrl.FacingAngle(); {
	case a > 15:
		return '↗'
	case a < -15:
		return '↘'
	default:
		return '→'
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	field := g.layout.field
	if text, ok := g.live.Text(); ok && !g.ui.howToPlay {
		dst.DrawTextCentered(field, field.Y, text, colorText)
	}

	label := pauseLabel
	if g.pauser.Paused() {
		label = resumeLabel
	}
	dst.DrawTextColor(g.layout.pause.X, g.layout.pause.Y, label, colorAccent)
}

func (g *Game) drawHowToPlay(dst *core.Screen) {
	field := g.layout.field
	mid := field.Y + field.H/3
	dst.DrawTextCentered(field, mid, g.cfg.Title, colorAccent)
	dst.DrawTextCentered(field, mid+2, "Press SPACE or click to flap", colorText)
	dst.DrawTextCentered(field, mid+3, "P pause  Q quit", colorText)
}

func (g *Game) drawGameOver(dst *core.Screen) {
	panel := g.layout.panel
	dst.FillRect(panel, ' ', colorText)
	dst.DrawBox(panel, colorAccent)
	dst.DrawTextCentered(panel, panel.Y+1, "GAME OVER", colorAccent)

	scoreText, _ := g.final.Text()
	bestText, _ := g.best.Text()
	dst.DrawTextColor(panel.X+4, panel.Y+3, "Score", colorText)
	dst.DrawTextColor(panel.Right()-4-len(scoreText), panel.Y+3, scoreText, colorText)
	dst.DrawTextColor(panel.X+4, panel.Y+4, "Best", colorText)
	dst.DrawTextColor(panel.Right()-4-len(bestText), panel.Y+4, bestText, colorText)

	dst.DrawTextColor(g.layout.restart.X, g.layout.restart.Y, restartLabel, colorAccent)
}
