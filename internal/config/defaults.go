package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded default configuration. It
// mirrors the embedded YAML and serves as the last-resort fallback.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Player: PlayerConfig{
			StartRow: 1, // Standing
			StartCol: 1, // Center lane
		},
		Render: RenderConfig{
			CellWidth:   4,
			CellHeight:  2,
			ScrollTicks: 12,
		},
		Endless: EndlessConfig{
			Density: 0.35,
			Length:  500,
		},
	}
}
