// Package config provides YAML-based game configuration loading and
// difficulty management for Orbit Breaker.
package config

import (
	"errors"
	"fmt"
	"math"
)

// OrbitConfig contains all configuration for the Orbit Breaker game.
type OrbitConfig struct {
	Playfield  OrbitPlayfield   `yaml:"playfield" json:"playfield"`
	Ball       OrbitBall        `yaml:"ball" json:"ball"`
	Bricks     OrbitBricks      `yaml:"bricks" json:"bricks"`
	Scoring    OrbitScoring     `yaml:"scoring" json:"scoring"`
	Gameplay   OrbitGameplay    `yaml:"gameplay" json:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty" json:"difficulty"`
}

// OrbitPlayfield defines the world the ball moves in, in world units.
// The brick pivot is always the playfield centre.
type OrbitPlayfield struct {
	Width       float64 `yaml:"width" json:"width"`
	Height      float64 `yaml:"height" json:"height"`
	Margin      float64 `yaml:"margin" json:"margin"`             // Minimum distance of generated brick centres from every edge
	ClearRadius float64 `yaml:"clear_radius" json:"clear_radius"` // Generated layouts keep this radius around the pivot empty
}

// OrbitBall defines ball kinematics.
type OrbitBall struct {
	Radius      int     `yaml:"radius" json:"radius"`
	Speed       float64 `yaml:"speed" json:"speed"`               // Launch speed in world units per tick
	SpeedCap    float64 `yaml:"speed_cap" json:"speed_cap"`       // Escalation stops at this magnitude
	LaunchAngle float64 `yaml:"launch_angle" json:"launch_angle"` // Degrees clockwise from straight up
	Boundary    string  `yaml:"boundary" json:"boundary,omitempty" jsonschema:"enum=solid,enum=corners,enum=none"`
}

// OrbitBricks defines brick geometry and the generated layout.
type OrbitBricks struct {
	Count     int     `yaml:"count" json:"count"`
	Width     float64 `yaml:"width" json:"width"`
	Height    float64 `yaml:"height" json:"height"`
	OrbitStep float64 `yaml:"orbit_step" json:"orbit_step"` // Radians per tick while a rotate key is held
}

// OrbitScoring defines bonus scoring on top of the per-category points.
type OrbitScoring struct {
	ChainBonus bool `yaml:"chain_bonus" json:"chain_bonus"`
	ClearBonus int  `yaml:"clear_bonus" json:"clear_bonus"` // Awarded when a layout is cleared
}

// OrbitGameplay defines lives and pacing.
type OrbitGameplay struct {
	Lives      int     `yaml:"lives" json:"lives"`
	ServeDelay int     `yaml:"serve_delay" json:"serve_delay"` // Ticks before a served ball may launch
	IdealFPS   float64 `yaml:"ideal_fps" json:"ideal_fps"`     // Frame rate the ball speeds are tuned for
}

// Validate reports every invalid field at once.
func (c OrbitConfig) Validate() error {
	var errs []error
	// NaN fails every comparison below, so non-finite values are caught first
	for _, f := range c.floats() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			errs = append(errs, fmt.Errorf("%s must be finite, got %v", f.name, f.value))
		}
	}
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must have positive size, got %vx%v", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Playfield.Margin < 0 || 2*c.Playfield.Margin >= c.Playfield.Width || 2*c.Playfield.Margin >= c.Playfield.Height {
		errs = append(errs, fmt.Errorf("playfield margin %v does not fit the playfield", c.Playfield.Margin))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive, got %d", c.Ball.Radius))
	}
	if c.Ball.Speed <= 0 {
		errs = append(errs, fmt.Errorf("ball speed must be positive, got %v", c.Ball.Speed))
	}
	if c.Ball.SpeedCap < c.Ball.Speed {
		errs = append(errs, fmt.Errorf("ball speed cap %v is below launch speed %v", c.Ball.SpeedCap, c.Ball.Speed))
	}
	switch c.Ball.Boundary {
	case "", "solid", "corners", "none":
	default:
		errs = append(errs, fmt.Errorf("unknown ball boundary %q", c.Ball.Boundary))
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 {
		errs = append(errs, fmt.Errorf("bricks must have positive size, got %vx%v", c.Bricks.Width, c.Bricks.Height))
	}
	if c.Bricks.Count < 0 {
		errs = append(errs, fmt.Errorf("brick count must not be negative, got %d", c.Bricks.Count))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.IdealFPS <= 0 {
		errs = append(errs, fmt.Errorf("ideal fps must be positive, got %v", c.Gameplay.IdealFPS))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid orbit config: %w", errors.Join(errs...))
}

type namedFloat struct {
	name  string
	value float64
}

// floats lists every float field with its YAML path.
func (c OrbitConfig) floats() []namedFloat {
	return []namedFloat{
		{"playfield.width", c.Playfield.Width},
		{"playfield.height", c.Playfield.Height},
		{"playfield.margin", c.Playfield.Margin},
		{"playfield.clear_radius", c.Playfield.ClearRadius},
		{"ball.speed", c.Ball.Speed},
		{"ball.speed_cap", c.Ball.SpeedCap},
		{"ball.launch_angle", c.Ball.LaunchAngle},
		{"bricks.width", c.Bricks.Width},
		{"bricks.height", c.Bricks.Height},
		{"bricks.orbit_step", c.Bricks.OrbitStep},
		{"gameplay.ideal_fps", c.Gameplay.IdealFPS},
		{"difficulty.initial_level", c.Difficulty.InitialLevel},
		{"difficulty.scaling.speed_multiplier", c.Difficulty.Scaling.SpeedMultiplier},
		{"difficulty.scaling.orbit_multiplier", c.Difficulty.Scaling.OrbitMultiplier},
	}
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" json:"enabled"`
	InitialLevel float64           `yaml:"initial_level" json:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" json:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" json:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" json:"type" jsonschema:"enum=score,enum=time,enum=none"`
	MaxAt int    `yaml:"max_at" json:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" json:"speed_multiplier"` // Added to launch speed at max difficulty
	OrbitMultiplier float64 `yaml:"orbit_multiplier" json:"orbit_multiplier"` // Added to orbit step at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown names map to "".
func ParsePreset(name string) DifficultyPreset {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
