package config

// Ramp turns score or elapsed ticks into a difficulty level between the
// configured initial level and 1, and scales serve speed and orbit step by it.
type Ramp struct {
	cfg   DifficultyConfig
	floor float64
}

// NewRamp creates a ramp for the given difficulty settings.
func NewRamp(cfg DifficultyConfig) Ramp {
	return Ramp{cfg: cfg, floor: clamp01(cfg.InitialLevel)}
}

// Active reports whether the level moves at all.
func (r Ramp) Active() bool {
	return r.cfg.Enabled && r.cfg.Progression.Type != "none"
}

// Level returns the difficulty level for a run at score after ticks.
func (r Ramp) Level(score, ticks int) float64 {
	if !r.Active() {
		return r.floor
	}

	var done float64
	maxAt := float64(max(r.cfg.Progression.MaxAt, 1))
	switch r.cfg.Progression.Type {
	case "score":
		done = float64(score) / maxAt
	case "time":
		done = float64(ticks) / maxAt
	default:
		return r.floor
	}
	return r.floor + clamp01(done)*(1-r.floor)
}

// ServeSpeed is the ball speed for a serve, never above speedCap.
func (r Ramp) ServeSpeed(base, speedCap float64, score, ticks int) float64 {
	return min(base*(1+r.Level(score, ticks)*r.cfg.Scaling.SpeedMultiplier), speedCap)
}

// OrbitStep is the brick rotation per tick of held orbit input.
func (r Ramp) OrbitStep(base float64, score, ticks int) float64 {
	return base * (1 + r.Level(score, ticks)*r.cfg.Scaling.OrbitMultiplier)
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
