package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a session ends, you return to the menu to play again.

Examples:
  invaders menu
  invaders menu --fps 30
  invaders menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(store, invaders.GameID, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}
		cfg = result.Config

		switch result.Choice {
		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(store, invaders.GameID, registry.Title(invaders.GameID), cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "error", err)
			}
			if !goBack {
				return
			}

		case tui.ChoicePlay:
			game, err := newGame()
			if err != nil {
				logger.Error("cannot create game", "error", err)
				return
			}
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			if err := tui.Run(game, store, cfg, tui.ModelOptions{Logger: gameLogger}); err != nil {
				logger.Error("game failed", "error", err)
			}

		default:
			return
		}
	}
}
