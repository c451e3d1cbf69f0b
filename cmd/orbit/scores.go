package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbit-breaker/internal/registry"
	"github.com/vovakirdan/orbit-breaker/internal/storage"
)

var (
	flagRuns  int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 high scores for the specified mode, followed by
its most recent runs. Without a mode, prints a summary of every mode played.

Examples:
  orbit scores
  orbit scores orbit
  orbit scores orbit_endless --runs 20
  orbit scores orbit_solid --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of recent runs to show (0 hides them)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every score and run recorded for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		runScoresSummary()
		return
	}
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'orbit list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	if flagClear {
		err := store.ClearScores(gameID)
		store.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores and runs for %s\n", title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'orbit play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  |  Games: %d  |  Average: %.0f  |  Longest chain: %d  |  Clears: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestChain, stats.Clears)
	}

	if flagRuns <= 0 {
		return
	}
	printRecentRuns(store, gameID, flagRuns)
}

// printRecentRuns lists the newest runs with their statistics.
func printRecentRuns(store *storage.Store, gameID string, limit int) {
	runs, err := store.RecentRuns(gameID, limit)
	if err != nil {
		logger.Warn("could not load recent runs", "error", err)
		return
	}
	if len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Printf("  %-8s  %-6s  %-5s  %-7s  %-6s  %-8s  %s\n", "Score", "Bricks", "Chain", "Bounces", "Speed", "Result", "Date")
	for _, r := range runs {
		result := "over"
		if r.Cleared {
			result = "cleared"
		}
		fmt.Printf("  %-8d  %-6d  %-5d  %-7d  %-6.1f  %-8s  %s\n",
			r.Score, r.BricksKilled, r.BestChain, r.EdgeBounces, r.PeakSpeed, result,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// runScoresSummary prints one line per mode that has recorded scores.
func runScoresSummary() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-6s  %-8s  %-8s  %s\n", "Mode", "Games", "Best", "Average", "Last played")
	fmt.Printf("  %-16s  %-6s  %-8s  %-8s  %s\n", "----", "-----", "----", "-------", "-----------")
	for _, info := range registry.List() {
		st, ok := all[info.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-16s  %-6d  %-8d  %-8.0f  %s\n",
			info.ID, st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
