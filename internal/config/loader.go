package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// OrbitFile is the config file name searched for in the config directories.
const OrbitFile = "orbit.yaml"

// LoadOrbit loads Orbit Breaker configuration.
// Search order: customPath -> ~/.orbit/configs/orbit.yaml -> ./configs/orbit.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadOrbit(customPath string) (OrbitConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultOrbitConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decodeOrbit(data)
		if err != nil {
			return DefaultOrbitConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath(OrbitFile),
		filepath.Join("configs", OrbitFile),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodeOrbit(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := decodeOrbit(defaultOrbitYAML)
	if err != nil {
		return DefaultOrbitConfig(), nil
	}
	return cfg, nil
}

// decodeOrbit unmarshals YAML over the hardcoded defaults and validates the result.
func decodeOrbit(data []byte) (OrbitConfig, error) {
	cfg := DefaultOrbitConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".orbit", "configs", filename)
}

// ApplyOrbitPreset modifies the config based on a difficulty preset.
func ApplyOrbitPreset(cfg *OrbitConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Ball.Speed = 3.0
		cfg.Bricks.Count = 96
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Ball.Speed = 5.0
		cfg.Ball.SpeedCap = 14.0
		cfg.Bricks.Count = 160
	}
}

// MarshalOrbit renders a config as YAML, used by "config dump".
func MarshalOrbit(cfg OrbitConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
