package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Load loads and validates the configuration for gameID.
// Search order: customPath -> ~/.flappy/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// An explicit customPath must exist and be valid; broken files found by
// the search are logged and skipped.
func Load(gameID, customPath string, logger *log.Logger) (GameConfig, error) {
	if logger == nil {
		logger = log.Default()
	}

	defaults := GetDefaultYAML(gameID)
	if defaults == nil {
		return GameConfig{}, fmt.Errorf("config: no defaults for game %q", gameID)
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(defaults, data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return GameConfig{}, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := decode(defaults, data)
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			logger.Warn("ignoring config file", "path", path, "error", err)
			continue
		}
		logger.Debug("loaded config", "path", path)
		return cfg, nil
	}

	cfg, err := decode(defaults, nil)
	if err != nil {
		return GameConfig{}, fmt.Errorf("config: embedded %s defaults: %w", gameID, err)
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, fmt.Errorf("config: embedded %s defaults: %w", gameID, err)
	}
	return cfg, nil
}

// decode layers overrides on top of the embedded defaults, so a user file
// only needs the keys it changes.
func decode(defaults, overrides []byte) (GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaults, &cfg); err != nil {
		return cfg, err
	}
	if len(overrides) > 0 {
		if err := yaml.Unmarshal(overrides, &cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}
