package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Color is a YAML color: an SVG color name, "clear"/"transparent",
// "#rrggbb" or "#rrggbbaa".
type Color struct {
	core.RGBA
	Name string
}

// ParseColor resolves a color string.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "":
		return Color{}, fmt.Errorf("config: empty color")
	case "clear", "transparent":
		return Color{RGBA: core.Clear, Name: name}, nil
	}

	if strings.HasPrefix(name, "#") {
		return parseHex(name)
	}

	c, ok := colornames.Map[name]
	if !ok {
		return Color{}, fmt.Errorf("config: unknown color %q", s)
	}
	return Color{
		RGBA: core.RGBA{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
			A: float64(c.A) / 255,
		},
		Name: name,
	}, nil
}

func parseHex(s string) (Color, error) {
	alpha := 1.0
	switch len(s) {
	case 7:
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("config: bad alpha in %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	default:
		return Color{}, fmt.Errorf("config: bad hex color %q", s)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("config: bad hex color %q: %w", s, err)
	}
	return Color{RGBA: core.RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, Name: s}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	if c.Name != "" {
		return c.Name, nil
	}
	return c.Hex(), nil
}

// Hex returns the color as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}
