package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/games/runner/courses"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagConfig  string
	flagEndless bool
)

var playCmd = &cobra.Command{
	Use:   "play [course]",
	Short: "Play a course",
	Long: `Start playing the given course. Without an argument the first
built-in course is played; with --endless an infinite generated course is
played instead.

Controls:
  Left/Right/A/D  - Switch lane
  Up/W/Space      - Jump
  Down/S          - Duck
  Enter/.         - Stay in place
  P               - Pause
  R               - Restart (after the run ends)
  Q/Ctrl+C        - Quit

Examples:
  runner play
  runner play meadow
  runner play gauntlet --config ./my-runner.yaml
  runner play --endless --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play an endless generated course")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "runner"
	if flagEndless {
		gameID = "runner_endless"
	}

	// Validate the course before launching the UI
	if len(args) > 0 {
		if flagEndless {
			fmt.Fprintln(os.Stderr, "Error: --endless does not take a course argument")
			os.Exit(1)
		}
		loader := courses.NewLoader(flagCourseDir)
		if _, err := loader.LoadByID(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'runner courses' to see available courses.")
			os.Exit(1)
		}
		runner.SetCourseID(args[0])
	}

	runner.SetConfigPath(flagConfig)
	runner.SetCourseDir(flagCourseDir)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
