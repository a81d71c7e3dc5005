package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var flagRecentRuns int

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a game mode",
	Long: `Display the top 10 high scores for the specified mode
("runner" or "runner_endless"), plus the most recent runs.

Examples:
  runner scores runner
  runner scores runner_endless --runs 20`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecentRuns, "runs", 10, "How many recent runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Available modes: runner, runner_endless")
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
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}

	// Recent runs for this mode
	runs, err := store.RecentRuns(100)
	if err != nil {
		return
	}
	shown := 0
	for _, r := range runs {
		if r.GameID != gameID {
			continue
		}
		if shown == 0 {
			fmt.Println()
			fmt.Println("Recent runs:")
			fmt.Printf("  %-14s  %-7s  %-6s  %-10s  %s\n", "Course", "Reward", "Moves", "Outcome", "Date")
		}
		fmt.Printf("  %-14s  %-7d  %-6d  %-10s  %s\n",
			r.CourseID, r.TotalReward, r.Moves, r.Outcome,
			r.CreatedAt.Format("2006-01-02 15:04"))
		shown++
		if shown >= flagRecentRuns {
			break
		}
	}
}
