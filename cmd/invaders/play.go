package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start playing Alien Invaders directly.

Controls:
  Left/Right, A/D   - Move ship
  Up, W, Space      - Fire
  S                 - Continue after losing a life
  N / M             - Sound on / off
  R                 - Restart (after the round ends)
  Esc/B             - Leave (after the round ends)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 5 lives, slower formation, fewer alien shots
  normal - Values from the config file
  hard   - 2 lives, faster formation, more alien shots

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --config ./my-invaders.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	game, err := newGame()
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, runtimeConfig(), tui.ModelOptions{Logger: gameLogger})
}
