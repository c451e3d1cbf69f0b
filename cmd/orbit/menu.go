package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbit-breaker/internal/platform/tui"
	"github.com/vovakirdan/orbit-breaker/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Orbit Breaker with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode. Each mode then
offers a difficulty and a layout: the generated one or any level file in
~/.orbit/levels. After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Scoreboard
  Q            - Quit

Examples:
  orbit menu
  orbit menu --fps 30
  orbit menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			break
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		selection, selErr := tui.RunOrbitOptions(cfg)
		if selErr != nil {
			logger.Error("options menu failed", "error", selErr)
			continue
		}
		if selection == nil {
			continue
		}

		// A difficulty picked in the menu overrides the flag for this game only
		difficulty := flagDifficulty
		if selection.Preset != "" {
			flagDifficulty = selection.Preset
		}
		applyGameFlags(selection.LevelPath)
		flagDifficulty = difficulty

		game, err := registry.Create(gameID)
		if err != nil {
			logger.Error("could not create game", "mode", gameID, "error", err)
			continue
		}

		if err := tui.Run(game, store, cfg, logger); err != nil {
			logger.Error("game failed", "mode", gameID, "error", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
