package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbit-breaker/internal/config"
	"github.com/vovakirdan/orbit-breaker/internal/core"
	"github.com/vovakirdan/orbit-breaker/internal/games/orbit"
	"github.com/vovakirdan/orbit-breaker/internal/platform/tui"
	"github.com/vovakirdan/orbit-breaker/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Left/Right   - Orbit the bricks around the centre
  Space/Up     - Launch the ball
  P            - Pause
  Esc          - Pause, or back out when paused or after game over
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More lives, slower ball, fewer bricks
  normal - Start at 30% difficulty, progresses to max
  hard   - Fewer lives, faster ball, more bricks
  fixed  - No progression, stays at config's initial level

Examples:
  orbit play orbit
  orbit play orbit_solid --difficulty easy
  orbit play orbit --level ./levels/ring.lvl
  orbit play orbit --config ./my-orbit.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level file (.lvl, .txt or .yaml) for the first layout")
}

// addGameFlags registers the flags that shape a game before it is created.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", envString("ORBIT_CONFIG", ""), "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags hands the config, difficulty and level choices to the game
// package and warns about anything that will fall back to defaults.
func applyGameFlags(levelPath string) {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		logger.Warn("unknown difficulty preset, using the config as is", "difficulty", flagDifficulty)
	}
	cfg, err := config.LoadOrbit(flagConfig)
	if err != nil {
		logger.Warn("config rejected, using defaults", "error", err)
	}
	if levelPath != "" {
		lvl, err := orbit.LoadLevel(levelPath)
		if err == nil {
			err = lvl.Fit(core.V(cfg.Playfield.Width, cfg.Playfield.Height))
		}
		if err != nil {
			logger.Warn("level rejected, using the generated layout", "error", err)
		}
	}

	orbit.SetConfigPath(flagConfig)
	orbit.SetDifficultyPreset(flagDifficulty)
	orbit.SetLevelPath(levelPath)
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'orbit list' to see available modes.")
		os.Exit(1)
	}

	applyGameFlags(flagLevel)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
