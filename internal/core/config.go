package core

// RuntimeConfig is handed to games by the platform at Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the platform-visible summary of a running game.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RunSummary is what a finished run reports for the run history.
type RunSummary struct {
	Mode         string
	Score        int
	BricksKilled int
	BestChain    int
	EdgeBounces  int
	PeakSpeed    float64
	Ticks        int
	Cleared      bool
}
