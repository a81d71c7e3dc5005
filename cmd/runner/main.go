// runner is a TUI lane-runner: dodge obstacle slices one turn at a time.
//
// Usage:
//
//	runner courses           - List available courses
//	runner play [course]     - Play a course (or endless mode)
//	runner menu              - Start menu to pick courses interactively
//	runner serve             - Start SSH server for remote play
//	runner scores <mode>     - Show high scores for a mode
//	runner eval <course>     - Evaluate a course with a headless policy
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible courses
//	--db <path>     - Set database path (default: ~/.runner/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagCourseDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Lane Runner - Dodge obstacles in your terminal",
	Long: `Lane Runner is a turn-based terminal game: the track is a queue of
3x3 obstacle slices, and each key press resolves one move against the
slice in front of you.

Available commands:
  courses  - Show all available courses
  play     - Play a course directly
  menu     - Interactive course picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  eval     - Run headless policy evaluations

Examples:
  runner courses
  runner play meadow
  runner play --endless --seed 7
  runner menu
  runner serve --ssh :2222
  runner scores runner
  runner eval canyon --policy greedy --runs 1000`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagCourseDir, "courses", "", "Extra directory of course YAML files")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(evalCmd)
}
