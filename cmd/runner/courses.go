package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/games/runner/courses"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List all available courses",
	Long: `Shows the built-in courses plus any course files found in the
directory given with --courses. Directory courses with the same ID
replace built-ins.`,
	RunE: runCourses,
}

func runCourses(cmd *cobra.Command, args []string) error {
	all, err := courses.NewLoader(flagCourseDir).LoadAll()
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Println("No courses available.")
		return nil
	}

	fmt.Println("Available courses:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, c := range all {
		if len(c.ID) > maxIDLen {
			maxIDLen = len(c.ID)
		}
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Slices", "Name")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "------", "----")

	for _, c := range all {
		fmt.Printf("  %-*s  %-7d  %s\n", maxIDLen, c.ID, len(c.Slices), c.Name)
	}

	fmt.Println()
	fmt.Println("Run 'runner play <id>' to play a course.")
	return nil
}
