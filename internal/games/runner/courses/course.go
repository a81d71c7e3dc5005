// Package courses provides course definitions for the runner: finite,
// ordered sequences of 3×3 obstacle slices. Courses load from YAML files
// or from the embedded built-in set; an endless mode generates slices on
// the fly. This package depends on sim but sim never depends on it.
package courses

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/games/runner/sim"
)

// Course is a complete, ordered obstacle course.
type Course struct {
	ID       string
	Name     string
	Slices   []sim.Grid
	FilePath string // Empty for built-in and generated courses
}

// Validate checks that a course is playable.
func (c *Course) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("courses: course has no id")
	}
	if len(c.Slices) == 0 {
		return fmt.Errorf("courses: course %q has no slices", c.ID)
	}
	return nil
}
