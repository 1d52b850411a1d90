// invaders is Alien Invaders for the terminal, playable locally or over SSH.
//
// Usage:
//
//	invaders                 - Start with the title menu
//	invaders play            - Play a single session
//	invaders menu            - Title menu (play, high scores)
//	invaders serve           - Start SSH server for remote play
//	invaders scores          - Show high scores
//	invaders list            - List registered games
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - easy, normal or hard
//	--mute               - Start with sound off
//	--log-file <path>    - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Alien Invaders - defend the line in your terminal",
	Long: `Alien Invaders is a terminal remake of the classic: a formation of
aliens marches toward your defense line while you shoot it down.

Available commands:
  play     - Play a session directly
  menu     - Title menu with high scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show registered games

Examples:
  invaders
  invaders play --difficulty hard
  invaders serve --ssh :2222
  invaders scores`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
	Run:               runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.BoolVar(&flagMute, "mute", false, "Start with sound off")
	pf.StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup validates global flags and configures the game package.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	if err := openLog(flagLogFile); err != nil {
		return err
	}

	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(preset)
	invaders.SetMuted(flagMute)
	invaders.SetLogger(gameLogger)

	// Surface config errors before the TUI takes over the terminal.
	if _, err := invaders.LoadConfig(); err != nil {
		if flagConfig != "" {
			return err
		}
		logger.Warn("using default config", "error", err)
	}
	return nil
}

func teardown(_ *cobra.Command, _ []string) {
	closeAudio()
	closeLog()
}
