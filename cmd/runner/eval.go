package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/batch"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/games/runner/courses"
)

var (
	flagEvalRuns    int
	flagEvalWorkers int
	flagEvalPolicy  string
	flagEvalEndless bool
	flagEvalLength  int
)

var evalCmd = &cobra.Command{
	Use:   "eval [course]",
	Short: "Evaluate a course with a headless policy",
	Long: `Run many headless simulations of a course and report aggregate
outcomes. Useful for checking that a custom course is actually beatable
and how hard it is.

Policies:
  random - Picks a uniformly random action each turn
  greedy - Picks the action with the highest immediate reward

Examples:
  runner eval meadow --runs 1000
  runner eval canyon --policy greedy
  runner eval --endless --seed 7 --length 200`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().IntVar(&flagEvalRuns, "runs", 100, "Number of simulations to run")
	evalCmd.Flags().IntVar(&flagEvalWorkers, "workers", 8, "Concurrent workers")
	evalCmd.Flags().StringVar(&flagEvalPolicy, "policy", "random", "Policy: random or greedy")
	evalCmd.Flags().BoolVar(&flagEvalEndless, "endless", false, "Evaluate a generated endless course")
	evalCmd.Flags().IntVar(&flagEvalLength, "length", 0, "Length of the generated course (endless only)")
}

func runEval(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner-eval",
	})

	runnerCfg, err := config.LoadRunner("")
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var course courses.Course
	switch {
	case flagEvalEndless:
		if len(args) > 0 {
			return fmt.Errorf("--endless does not take a course argument")
		}
		length := flagEvalLength
		if length <= 0 {
			length = runnerCfg.Endless.Length
		}
		course = courses.GenerateCourse(seed, runnerCfg.Endless.Density, length)

	case len(args) == 1:
		course, err = courses.NewLoader(flagCourseDir).LoadByID(args[0])
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("specify a course ID or --endless")
	}

	evaluator, err := batch.NewEvaluator(batch.Config{
		Runs:     flagEvalRuns,
		Workers:  flagEvalWorkers,
		Policy:   flagEvalPolicy,
		Seed:     seed,
		StartRow: runnerCfg.Player.StartRow,
		StartCol: runnerCfg.Player.StartCol,
	}, logger)
	if err != nil {
		return err
	}

	logger.Info("starting evaluation",
		"course", course.ID,
		"policy", flagEvalPolicy,
		"runs", flagEvalRuns,
		"workers", flagEvalWorkers,
	)

	report := evaluator.Evaluate(course)

	fmt.Println()
	fmt.Printf("Course:      %s (%s, %d slices)\n", course.ID, course.Name, len(course.Slices))
	fmt.Printf("Policy:      %s\n", report.Policy)
	fmt.Printf("Runs:        %d\n", report.Runs)
	fmt.Printf("Completed:   %d (%.1f%%)\n", report.Completed, report.CompletionRate()*100)
	fmt.Printf("Crashed:     %d\n", report.Crashed)
	fmt.Printf("Mean reward: %.2f\n", report.MeanReward())
	fmt.Printf("Mean moves:  %.2f\n", report.MeanMoves())
	return nil
}
