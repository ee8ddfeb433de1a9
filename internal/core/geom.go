// Package core provides fundamental types and utilities shared by the game
// logic and the terminal platform. It has no Bubble Tea dependency so the
// gameplay packages stay pure and testable.
package core

import "math"

// Rect is an integer, cell-space rectangle used for layout and UI hit zones.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned box in world units. Y grows upward, so Min is the
// bottom-left corner and Max the top-right one.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoxAround builds a box of the given size centred on (cx, cy).
func BoxAround(cx, cy, w, h float64) Box {
	return Box{
		MinX: cx - w/2,
		MinY: cy - h/2,
		MaxX: cx + w/2,
		MaxY: cy + h/2,
	}
}

// Empty reports whether the box has no area.
func (b Box) Empty() bool {
	return b.MaxX <= b.MinX || b.MaxY <= b.MinY
}

// Overlaps uses standard AABB testing. Touching edges do not overlap.
func (b Box) Overlaps(o Box) bool {
	if b.Empty() || o.Empty() {
		return false
	}
	if b.MinX >= o.MaxX || o.MinX >= b.MaxX {
		return false
	}
	if b.MinY >= o.MaxY || o.MinY >= b.MaxY {
		return false
	}
	return true
}

// FitAspect returns the largest rectangle with the aspect ratio aw:ah that
// fits centred inside a w x h area. Bars are added on the top and bottom
// (letterbox) or on the sides (pillarbox) as needed.
func FitAspect(w, h int, aw, ah float64) Rect {
	if w <= 0 || h <= 0 || aw <= 0 || ah <= 0 {
		return NewRect(0, 0, Max(w, 0), Max(h, 0))
	}

	current := float64(w) / float64(h)
	target := aw / ah
	scaled := current / target

	if math.Abs(scaled-1) < 1e-6 {
		return NewRect(0, 0, w, h)
	}

	if scaled < 1 {
		fh := int(math.Round(float64(h) * scaled))
		return NewRect(0, (h-fh)/2, w, fh)
	}

	fw := int(math.Round(float64(w) / scaled))
	return NewRect((w-fw)/2, 0, fw, h)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp01 restricts v to [0, 1].
func Clamp01(v float64) float64 {
	return ClampF(v, 0, 1)
}

// Lerp interpolates between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
