package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
	ColorBrown
)

// RGBA is a linear color with float channels in [0, 1], the value type the
// screen transition interpolates.
type RGBA struct {
	R, G, B, A float64
}

var (
	// Clear is fully transparent black.
	Clear = RGBA{}
	// Black is opaque black.
	Black = RGBA{A: 1}
)

// LerpUnclamped interpolates every channel, alpha included, without clamping
// t. Values of t above 1 overshoot past b.
func (c RGBA) LerpUnclamped(b RGBA, t float64) RGBA {
	return RGBA{
		R: Lerp(c.R, b.R, t),
		G: Lerp(c.G, b.G, t),
		B: Lerp(c.B, b.B, t),
		A: Lerp(c.A, b.A, t),
	}
}

// Clamped returns the color with every channel forced into [0, 1].
func (c RGBA) Clamped() RGBA {
	return RGBA{R: Clamp01(c.R), G: Clamp01(c.G), B: Clamp01(c.B), A: Clamp01(c.A)}
}

// Palette assigns display colors to the cell color slots.
type Palette map[Color]RGBA
