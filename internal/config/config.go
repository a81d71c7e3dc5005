// Package config provides YAML-based configuration loading for the runner
// platform.
package config

// RunnerConfig contains all configuration for the runner game.
type RunnerConfig struct {
	Player  PlayerConfig  `yaml:"player"`
	Render  RenderConfig  `yaml:"render"`
	Endless EndlessConfig `yaml:"endless"`
}

// PlayerConfig defines where a run starts.
type PlayerConfig struct {
	StartRow int `yaml:"start_row"` // 0 airborne, 1 standing, 2 ducking
	StartCol int `yaml:"start_col"` // Lane 0..2
}

// RenderConfig defines presentation parameters. These never affect the
// simulation; they only shape how the TUI draws between turns.
type RenderConfig struct {
	CellWidth  int `yaml:"cell_width"`  // Screen columns per course cell
	CellHeight int `yaml:"cell_height"` // Screen rows per course cell
	ScrollTicks int `yaml:"scroll_ticks"` // Ticks the slide animation lasts after a move
}

// EndlessConfig defines the endless-mode course generator.
type EndlessConfig struct {
	Density float64 `yaml:"density"` // Obstacle probability per non-safe cell
	Length  int     `yaml:"length"`  // Slices per generated course
}
