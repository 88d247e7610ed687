package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRoids loads the configuration for a variant.
// Search order: customPath -> ~/.arcade/configs/<variant>.yaml -> ./configs/<variant>.yaml -> embedded default
func LoadRoids(v Variant, customPath string) (RoidsConfig, error) {
	// Files are decoded over the variant defaults so partial overrides work.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RoidsConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(v, data)
		if err != nil {
			return RoidsConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return RoidsConfig{}, err
		}
		return cfg, nil
	}

	filename := string(v) + ".yaml"
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(v, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	if cfg, err := decode(v, GetDefaultYAML(v)); err == nil {
		return cfg, nil
	}
	return DefaultRoidsConfig(v), nil
}

// decode unmarshals data on top of the hardcoded defaults for v.
func decode(v Variant, data []byte) (RoidsConfig, error) {
	if len(data) == 0 {
		return RoidsConfig{}, fmt.Errorf("empty config")
	}
	cfg := DefaultRoidsConfig(v)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RoidsConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyRoidsPreset modifies the config based on a difficulty preset.
func ApplyRoidsPreset(cfg *RoidsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Lives = 5
		cfg.Ship.InvulnerableTicks = 180
		cfg.Asteroids.SeekChance = 0.2
		cfg.Enemies.ShootIntervalFloor = 60
	case DifficultyHard:
		cfg.Ship.Lives = 2
		cfg.Ship.InvulnerableTicks = 90
		cfg.Asteroids.SeekChance = 0.6
		cfg.Enemies.ShootInterval = 70
	case DifficultyFixed:
		cfg.Difficulty.Escalate = false
	}
}

// MarshalRoids renders a config as YAML, e.g. for `arcade simulate --dump`.
func MarshalRoids(cfg RoidsConfig) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal %s: %w", cfg.Variant, err)
	}
	return out, nil
}
