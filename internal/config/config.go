// Package config loads the engine configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Simulation SimulationConfig `yaml:"simulation"`
	Render     RenderConfig     `yaml:"render"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type SimulationConfig struct {
	// MouseSensitivity scales look rotation; 1.0 is the built-in
	// 0.1 degrees per mouse count.
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
}

type RenderConfig struct {
	// SnapshotBuffer is how many pending simulation snapshots the
	// handoff mailbox holds before dropping the oldest.
	SnapshotBuffer int `yaml:"snapshot_buffer"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  2560,
			Height: 1440,
			Title:  "cube",
		},
		Simulation: SimulationConfig{
			MouseSensitivity: 1.0,
		},
		Render: RenderConfig{
			SnapshotBuffer: 64,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path and decodes it over the defaults, so a partial file
// only overrides what it mentions.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return nil, fmt.Errorf("window size %dx%d is not positive", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Render.SnapshotBuffer <= 0 {
		cfg.Render.SnapshotBuffer = Default().Render.SnapshotBuffer
	}
	return cfg, nil
}
