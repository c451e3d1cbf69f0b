// orbit is the terminal front end for Orbit Breaker.
//
// Usage:
//
//	orbit list                - List available modes
//	orbit play <mode>         - Play a mode
//	orbit menu                - Start menu to pick modes interactively
//	orbit serve               - Start SSH server for remote play
//	orbit scores <mode>       - Show high scores and recent runs
//	orbit layout              - Write a generated layout as a level file
//	orbit config schema|dump  - Print the config schema or effective config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60, env ORBIT_FPS)
//	--seed <value>  - Set RNG seed for reproducible gameplay (env ORBIT_SEED)
//	--db <path>     - Set database path (default: ~/.orbit/scores.db, env ORBIT_DB)
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/orbit-breaker/internal/core"
	"github.com/vovakirdan/orbit-breaker/internal/storage"

	// Import modes to register them
	_ "github.com/vovakirdan/orbit-breaker/internal/games/orbit"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

// logger reports recoverable problems; command output stays on stdout.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "orbit",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "orbit",
	Short: "Orbit Breaker - rotate the bricks, not the paddle",
	Long: `Orbit Breaker is a terminal brick breaker where the bricks orbit the
centre of the playfield and the ball bounces off their rotated edges.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  layout   - Write a generated layout as a level file
  config   - Print the config schema or the effective config

Settings can also come from the environment or a .env file:
  ORBIT_FPS, ORBIT_SEED, ORBIT_DB, ORBIT_CONFIG

Examples:
  orbit list
  orbit play orbit
  orbit play orbit_solid --difficulty hard
  orbit menu
  orbit serve --ssh :2222
  orbit scores orbit`,
}

func init() {
	loadEnv()

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", envInt("ORBIT_FPS", 60), "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", envInt64("ORBIT_SEED", 0), "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envString("ORBIT_DB", "~/.orbit/scores.db"), "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(configCmd)
}

// loadEnv reads an optional .env file from the working directory.
// Variables already set in the environment win.
func loadEnv() {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return
	}
	logger.Warn("ignoring .env file", "error", err)
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logger.Warn("ignoring invalid environment value", "key", key, "value", v)
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		logger.Warn("ignoring invalid environment value", "key", key, "value", v)
		return fallback
	}
	return n
}

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Games still run without one, so a
// failure is only a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
