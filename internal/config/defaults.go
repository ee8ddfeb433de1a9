package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/steampunk.yaml
var defaultSteampunkYAML []byte

// Variants lists the game IDs that ship a default configuration.
func Variants() []string {
	return []string{"flappy", "steampunk"}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	case "steampunk":
		return defaultSteampunkYAML
	default:
		return nil
	}
}
