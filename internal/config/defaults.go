package config

import (
	_ "embed"
)

//go:embed defaults/orbit.yaml
var defaultOrbitYAML []byte

// DefaultOrbitConfig returns the hardcoded Orbit Breaker configuration.
// It mirrors defaults/orbit.yaml and is used when the embedded file fails to parse.
func DefaultOrbitConfig() OrbitConfig {
	return OrbitConfig{
		Playfield: OrbitPlayfield{
			Width:       640,
			Height:      400,
			Margin:      40,
			ClearRadius: 70,
		},
		Ball: OrbitBall{
			Radius:      7,
			Speed:       4.0,
			SpeedCap:    12.0,
			LaunchAngle: 30,
		},
		Bricks: OrbitBricks{
			Count:     128,
			Width:     24,
			Height:    12,
			OrbitStep: 0.02,
		},
		Scoring: OrbitScoring{
			ChainBonus: true,
			ClearBonus: 500,
		},
		Gameplay: OrbitGameplay{
			Lives:      3,
			ServeDelay: 60,
			IdealFPS:   60,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				OrbitMultiplier: 0.5,
			},
		},
	}
}

// DefaultOrbitYAML returns the embedded default YAML.
func DefaultOrbitYAML() []byte {
	return defaultOrbitYAML
}
