package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 runs and the top 10 victories.

Examples:
  invaders scores
  invaders scores --db ./scores.db
  invaders scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(invaders.GameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	runs, err := store.TopScores(invaders.GameID, 10)
	if err != nil {
		return err
	}
	wins, err := store.TopWins(invaders.GameID, 10)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Alien Invaders")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders play' to set the first high score!")
		return nil
	}

	printScores(os.Stdout, "All runs", runs)
	printScores(os.Stdout, "Victories", wins)

	if stats, err := store.GetGameStats(invaders.GameID); err == nil {
		fmt.Printf("Best: %d   Games: %d   Wins: %d   Average: %.0f\n",
			stats.HighScore, stats.GamesCount, stats.Wins, stats.AvgScore)
	}
	return nil
}

func printScores(w io.Writer, title string, entries []storage.ScoreEntry) {
	fmt.Fprintln(w, title)
	if len(entries) == 0 {
		fmt.Fprintln(w, "  none yet")
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-12s  %-6s  %s\n", "Rank", "Score", "Player", "Result", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-12s  %-6s  %s\n", "----", "-----", "------", "------", "----")
	for i, e := range entries {
		result := "lost"
		if e.Won {
			result = "won"
		}
		fmt.Fprintf(w, "  %-4d  %-8d  %-12s  %-6s  %s\n",
			i+1, e.Score, e.Player, result, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(w)
}
