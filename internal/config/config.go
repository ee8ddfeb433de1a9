// Package config provides YAML-based configuration for the game variants.
// Each variant ships an embedded default that users can override on disk.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// GameConfig contains everything needed to assemble one game variant.
type GameConfig struct {
	Title        string           `yaml:"title"`
	HighscoreKey string           `yaml:"highscore_key"`
	World        WorldConfig      `yaml:"world"`
	Physics      PhysicsConfig    `yaml:"physics"`
	Bird         BirdConfig       `yaml:"bird"`
	Pipes        PipeConfig       `yaml:"pipes"`
	Ground       GroundConfig     `yaml:"ground"`
	Clouds       CloudConfig      `yaml:"clouds"`
	StartMarker  MarkerConfig     `yaml:"start_marker"`
	Transition   TransitionConfig `yaml:"transition"`
	Theme        ThemeConfig      `yaml:"theme"`
	Audio        AudioConfig      `yaml:"audio"`
}

// WorldConfig defines the logical playfield. Units are terminal cells at
// native size; Y grows upward from the bottom edge.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// PhysicsConfig defines the bird's motion.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Units/s², negative pulls down
	JumpForce   float64 `yaml:"jump_force"`   // Upward impulse per flap
	MaxVelocity float64 `yaml:"max_velocity"` // Cap on upward speed
}

// BirdConfig defines the bird's placement, hitbox and tilt.
type BirdConfig struct {
	X                   float64 `yaml:"x"`
	StartY              float64 `yaml:"start_y"`
	Width               float64 `yaml:"width"`
	Height              float64 `yaml:"height"`
	Rotation            bool    `yaml:"rotation"`
	RotationChangeSpeed float64 `yaml:"rotation_change_speed"`
	NoseUpAngle         float64 `yaml:"nose_up_angle"`
	NoseDownAngle       float64 `yaml:"nose_down_angle"`
	FlapDuration        float64 `yaml:"flap_duration"` // Seconds the wings stay up after a flap
}

// PipeConfig defines the recycled pipe pairs.
type PipeConfig struct {
	Count    int     `yaml:"count"`
	Speed    float64 `yaml:"speed"`
	Spacing  float64 `yaml:"spacing"`
	Width    float64 `yaml:"width"`
	Gap      float64 `yaml:"gap"`
	GapMinY  float64 `yaml:"gap_min_y"` // Lowest gap centre
	GapMaxY  float64 `yaml:"gap_max_y"` // Highest gap centre
	SpawnX   float64 `yaml:"spawn_x"`
	DespawnX float64 `yaml:"despawn_x"`
}

// GroundConfig defines the scrolling ground strip.
type GroundConfig struct {
	TileWidth float64 `yaml:"tile_width"`
	Speed     float64 `yaml:"speed"`
}

// CloudConfig defines background clouds, which drift even before start.
type CloudConfig struct {
	Count int     `yaml:"count"`
	Speed float64 `yaml:"speed"`
	MinY  float64 `yaml:"min_y"`
	MaxY  float64 `yaml:"max_y"`
	Width float64 `yaml:"width"`
}

// MarkerConfig defines the one-shot start line post.
type MarkerConfig struct {
	Enabled bool    `yaml:"enabled"`
	X       float64 `yaml:"x"`
	Label   string  `yaml:"label"`
}

// TransitionConfig defines the scene fade.
type TransitionConfig struct {
	Speed float64 `yaml:"speed"` // Fraction per second
}

// ThemeConfig maps scene elements to colors.
type ThemeConfig struct {
	Sky     Color `yaml:"sky"`
	Bird    Color `yaml:"bird"`
	Pipe    Color `yaml:"pipe"`
	Ground  Color `yaml:"ground"`
	Cloud   Color `yaml:"cloud"`
	Text    Color `yaml:"text"`
	Accent  Color `yaml:"accent"`
	Overlay Color `yaml:"overlay"`
}

// AudioConfig defines the sound effects.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Base-2 gain; 0 is unchanged, -1 halves
}

// Validate checks that the configuration can build a playable game.
func (c GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	check(c.World.GroundHeight >= 0 && c.World.GroundHeight < c.World.Height, "ground height %v outside world", c.World.GroundHeight)

	check(c.Physics.Gravity < 0, "gravity must pull down (negative), got %v", c.Physics.Gravity)
	check(c.Physics.JumpForce > 0, "jump force must be positive, got %v", c.Physics.JumpForce)
	check(c.Physics.MaxVelocity > 0, "max velocity must be positive, got %v", c.Physics.MaxVelocity)

	check(c.Bird.Width > 0 && c.Bird.Height > 0, "bird size must be positive")
	check(c.Bird.RotationChangeSpeed >= 0, "rotation change speed must not be negative, got %v", c.Bird.RotationChangeSpeed)
	check(c.Bird.StartY > c.World.GroundHeight && c.Bird.StartY < c.World.Height, "bird start %v outside the sky", c.Bird.StartY)

	check(c.Pipes.Count > 0, "pipe count must be positive, got %d", c.Pipes.Count)
	check(c.Pipes.Speed < 0, "pipe speed must move left (negative), got %v", c.Pipes.Speed)
	check(c.Pipes.Spacing > 0 && c.Pipes.Width > 0 && c.Pipes.Gap > 0, "pipe spacing, width and gap must be positive")
	check(c.Pipes.GapMinY <= c.Pipes.GapMaxY, "pipe gap range inverted: %v > %v", c.Pipes.GapMinY, c.Pipes.GapMaxY)
	check(c.Pipes.SpawnX > c.Pipes.DespawnX, "pipe spawn %v must be right of despawn %v", c.Pipes.SpawnX, c.Pipes.DespawnX)

	check(c.Ground.TileWidth > 0, "ground tile width must be positive")
	check(c.Clouds.Count >= 0, "cloud count must not be negative")
	check(c.Clouds.MinY <= c.Clouds.MaxY, "cloud height range inverted: %v > %v", c.Clouds.MinY, c.Clouds.MaxY)

	check(c.Transition.Speed > 0, "transition speed must be positive, got %v", c.Transition.Speed)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
