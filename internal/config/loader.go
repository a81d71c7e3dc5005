package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml ->
// ./configs/runner.yaml -> embedded default.
func LoadRunner(customPath string) (RunnerConfig, error) {
	var cfg RunnerConfig

	// An explicit path must work; failing silently would hide user errors.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/runner.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// normalize replaces zero or out-of-range values with defaults so partially
// written config files still produce a playable game.
func normalize(cfg RunnerConfig) RunnerConfig {
	def := DefaultRunnerConfig()

	if cfg.Player.StartRow < 0 || cfg.Player.StartRow > 2 {
		cfg.Player.StartRow = def.Player.StartRow
	}
	if cfg.Player.StartCol < 0 || cfg.Player.StartCol > 2 {
		cfg.Player.StartCol = def.Player.StartCol
	}
	if cfg.Render.CellWidth <= 0 {
		cfg.Render.CellWidth = def.Render.CellWidth
	}
	if cfg.Render.CellHeight <= 0 {
		cfg.Render.CellHeight = def.Render.CellHeight
	}
	if cfg.Render.ScrollTicks <= 0 {
		cfg.Render.ScrollTicks = def.Render.ScrollTicks
	}
	if cfg.Endless.Density <= 0 || cfg.Endless.Density > 1 {
		cfg.Endless.Density = def.Endless.Density
	}
	if cfg.Endless.Length < 2 {
		cfg.Endless.Length = def.Endless.Length
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}
