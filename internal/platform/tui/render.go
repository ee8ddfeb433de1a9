package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// defaultPalette gives every color slot a display color. Games that are
// registry.Themed override some of them.
var defaultPalette = core.Palette{
	core.ColorDefault:      hexRGBA("#d0d0d0"),
	core.ColorRed:          hexRGBA("#cd3131"),
	core.ColorGreen:        hexRGBA("#0dbc79"),
	core.ColorYellow:       hexRGBA("#e5e510"),
	core.ColorBlue:         hexRGBA("#2472c8"),
	core.ColorCyan:         hexRGBA("#11a8cd"),
	core.ColorWhite:        hexRGBA("#e5e5e5"),
	core.ColorBrightGreen:  hexRGBA("#23d18b"),
	core.ColorBrightYellow: hexRGBA("#f5f543"),
	core.ColorOrange:       hexRGBA("#ff8700"),
	core.ColorGray:         hexRGBA("#8a8a8a"),
	core.ColorBrown:        hexRGBA("#af5f00"),
}

func hexRGBA(s string) core.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		return core.RGBA{A: 1}
	}
	return core.RGBA{R: c.R, G: c.G, B: c.B, A: 1}
}

// Theme is everything the renderer needs to color one frame.
type Theme struct {
	Palette    core.Palette
	Background *core.RGBA // Nil keeps the terminal's own background
	Overlay    core.RGBA  // Washed over every cell by its alpha
}

// ThemeOf collects the current theme and overlay from a game.
func ThemeOf(g registry.Game) Theme {
	th := Theme{Palette: defaultPalette}

	if t, ok := g.(registry.Themed); ok {
		merged := make(core.Palette, len(defaultPalette))
		for k, v := range defaultPalette {
			merged[k] = v
		}
		for k, v := range t.Palette() {
			merged[k] = v
		}
		th.Palette = merged
		bg := t.Background()
		th.Background = &bg
	}

	if o, ok := g.(registry.Overlayed); ok {
		if c, active := o.Overlay(); active {
			th.Overlay = c
		}
	}
	return th
}

// shade returns the display hex for c after the overlay wash.
func (th Theme) shade(c core.RGBA) string {
	base := colorful.Color{R: c.R, G: c.G, B: c.B}
	if a := core.Clamp01(th.Overlay.A); a > 0 {
		over := colorful.Color{R: th.Overlay.R, G: th.Overlay.G, B: th.Overlay.B}
		base = base.BlendRgb(over, a)
	}
	return base.Clamped().Hex()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
// A nil renderer uses lipgloss's default one.
func RenderScreen(s *core.Screen, th Theme, r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	base := r.NewStyle()
	if th.Background != nil {
		base = base.Background(lipgloss.Color(th.shade(*th.Background)))
	}

	styles := make(map[core.Color]lipgloss.Style)
	styleFor := func(c core.Color) lipgloss.Style {
		if st, ok := styles[c]; ok {
			return st
		}
		rgba, ok := th.Palette[c]
		if !ok {
			rgba = defaultPalette[core.ColorDefault]
		}
		st := base.Foreground(lipgloss.Color(th.shade(rgba)))
		styles[c] = st
		return st
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
