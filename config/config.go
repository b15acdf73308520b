// Package config loads the game's settings from a YAML file next to the
// binary, falling back to defaults when no file exists.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window WindowConfig `yaml:"window"`
	World  WorldConfig  `yaml:"world"`
	Input  InputConfig  `yaml:"input"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	Vsync  bool   `yaml:"vsync"`
	Icon   string `yaml:"icon"`
	// Font is a path to a TTF for the HUD; empty means the built-in
	// Go Regular face.
	Font string `yaml:"font"`
}

type WorldConfig struct {
	// Radius is half the side of the generated square, in blocks.
	Radius  int    `yaml:"radius"`
	Terrain string `yaml:"terrain"`
	Seed    int64  `yaml:"seed"`
}

type InputConfig struct {
	// Sensitivity converts mouse pixels into look degrees.
	Sensitivity float64 `yaml:"sensitivity"`
}

// Default returns the settings used when no config file is present.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1600,
			Height: 900,
			Title:  "VoxelGolang",
			Vsync:  true,
			Icon:   "assets/icon.png",
		},
		World: WorldConfig{
			Radius:  8,
			Terrain: "flat",
			Seed:    12,
		},
		Input: InputConfig{
			Sensitivity: 0.1,
		},
	}
}

// Load reads path and overlays it onto the defaults, so a partial file
// only has to name the settings it changes.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.World.Terrain {
	case "flat", "hills":
	default:
		return fmt.Errorf("unknown terrain mode %q", c.World.Terrain)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d is not drawable", c.Window.Width, c.Window.Height)
	}
	return nil
}
