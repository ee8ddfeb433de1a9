package config

import (
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func quiet() *log.Logger {
	return log.New(io.Discard)
}

func TestEmbeddedDefaultsAreValid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	for _, id := range Variants() {
		cfg, err := Load(id, "", quiet())
		if err != nil {
			t.Fatalf("Load(%q) failed: %v", id, err)
		}
		if cfg.Title == "" {
			t.Errorf("%s: missing title", id)
		}
		if got := cfg.Pipes.SpawnX - cfg.Pipes.DespawnX; math.Abs(got-float64(cfg.Pipes.Count)*cfg.Pipes.Spacing) > 1e-9 {
			t.Errorf("%s: recycle window %v does not fit %d pipes at spacing %v", id, got, cfg.Pipes.Count, cfg.Pipes.Spacing)
		}
	}
}

func TestVariantsDiffer(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	classic, _ := Load("flappy", "", quiet())
	steam, _ := Load("steampunk", "", quiet())
	if classic.Bird.Rotation || !steam.Bird.Rotation {
		t.Errorf("Rotation flags = %v / %v, expected false / true", classic.Bird.Rotation, steam.Bird.Rotation)
	}
}

func TestLoadUnknownGame(t *testing.T) {
	if _, err := Load("pong", "", quiet()); err == nil {
		t.Error("Load of unknown game should fail")
	}
}

func TestCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  jump_force: 20\ntheme:\n  pipe: \"#ff000080\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("flappy", path, quiet())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.JumpForce != 20 {
		t.Errorf("JumpForce = %v, expected 20", cfg.Physics.JumpForce)
	}
	if cfg.Physics.Gravity != -52 {
		t.Errorf("Gravity = %v, expected default -52", cfg.Physics.Gravity)
	}
	if cfg.Theme.Pipe.R != 1 || math.Abs(cfg.Theme.Pipe.A-128.0/255) > 1e-9 {
		t.Errorf("Pipe color = %+v, expected red at half alpha", cfg.Theme.Pipe.RGBA)
	}
}

func TestCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load("flappy", filepath.Join(dir, "missing.yaml"), quiet()); err == nil {
		t.Error("Missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("pipes:\n  gap_min_y: 20\n  gap_max_y: 5\n"), 0o644) //nolint:errcheck
	if _, err := Load("flappy", bad, quiet()); !errors.Is(err, ErrInvalid) {
		t.Errorf("Inverted range error = %v, expected ErrInvalid", err)
	}

	color := filepath.Join(dir, "color.yaml")
	os.WriteFile(color, []byte("theme:\n  sky: not-a-color\n"), 0o644) //nolint:errcheck
	if _, err := Load("flappy", color, quiet()); err == nil {
		t.Error("Unknown color should fail")
	}
}

func TestBrokenUserConfigFallsBack(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".flappy", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(dir, "flappy.yaml"), []byte("physics: [oops"), 0o644) //nolint:errcheck

	cfg, err := Load("flappy", "", quiet())
	if err != nil {
		t.Fatalf("Load() should fall back, got %v", err)
	}
	if cfg.Physics.JumpForce != 17 {
		t.Errorf("JumpForce = %v, expected embedded 17", cfg.Physics.JumpForce)
	}
}

func TestValidateRejects(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	base, err := Load("flappy", "", quiet())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero jump force", func(c *GameConfig) { c.Physics.JumpForce = 0 }},
		{"upward gravity", func(c *GameConfig) { c.Physics.Gravity = 5 }},
		{"pipes moving right", func(c *GameConfig) { c.Pipes.Speed = 3 }},
		{"spawn left of despawn", func(c *GameConfig) { c.Pipes.SpawnX = -20 }},
		{"cloud range inverted", func(c *GameConfig) { c.Clouds.MinY = 30 }},
		{"zero transition speed", func(c *GameConfig) { c.Transition.Speed = 0 }},
		{"bird underground", func(c *GameConfig) { c.Bird.StartY = 1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected core.RGBA
	}{
		{"clear", core.Clear},
		{"Transparent", core.Clear},
		{"black", core.Black},
		{"white", core.RGBA{R: 1, G: 1, B: 1, A: 1}},
		{"#ff0000", core.RGBA{R: 1, A: 1}},
		{"#00000000", core.Clear},
	}

	for _, tc := range tests {
		c, err := ParseColor(tc.in)
		if err != nil {
			t.Errorf("ParseColor(%q) failed: %v", tc.in, err)
			continue
		}
		if c.RGBA != tc.expected {
			t.Errorf("ParseColor(%q) = %+v, expected %+v", tc.in, c.RGBA, tc.expected)
		}
	}

	for _, bad := range []string{"", "#12", "#gg0000", "chartreuse-ish"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) should fail", bad)
		}
	}
}

func TestColorHex(t *testing.T) {
	c, _ := ParseColor("red")
	if c.Hex() != "#ff0000" {
		t.Errorf("Hex() = %q, expected #ff0000", c.Hex())
	}
}
