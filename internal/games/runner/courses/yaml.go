package courses

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-runner/internal/games/runner/sim"
)

// yamlCourse is the on-disk YAML structure for a course file.
//
//	id: canyon
//	name: Canyon Run
//	slices:
//	  - ["000", "010", "000"]
//	  - ["100", "100", "000"]
//
// Each slice is three strings of three '0'/'1' runes, top row first.
type yamlCourse struct {
	ID     string     `yaml:"id"`
	Name   string     `yaml:"name"`
	Slices [][]string `yaml:"slices"`
}

// ParseYAML parses a YAML course file.
func ParseYAML(data []byte) (Course, error) {
	var yc yamlCourse
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Course{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	course := Course{
		ID:     yc.ID,
		Name:   yc.Name,
		Slices: make([]sim.Grid, 0, len(yc.Slices)),
	}
	if course.Name == "" {
		course.Name = course.ID
	}

	for i, rows := range yc.Slices {
		grid, err := sim.ParseGrid(rows)
		if err != nil {
			return Course{}, fmt.Errorf("slice %d: %w", i, err)
		}
		course.Slices = append(course.Slices, grid)
	}

	if err := course.Validate(); err != nil {
		return Course{}, err
	}
	return course, nil
}

// FormatExtensions returns supported course file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
