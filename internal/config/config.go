package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSize      = 48
	DefaultPeriod    = 12
	DefaultTile      = 8
	DefaultBand      = 4
	DefaultFillRate  = 0.5
	DefaultMovements = 24
	DefaultSteps     = 600
	DefaultFPS       = 30
	DefaultThreshold = 8
	DefaultWindow    = 30
)

// Config describes a whole scene: the global seed, run length, frame rate
// for the live view, stagnation detection, and one entry per automaton.
type Config struct {
	Seed       int64             `yaml:"seed"`
	Steps      int               `yaml:"steps"`
	FPS        int               `yaml:"fps"`
	Stagnation StagnationConfig  `yaml:"stagnation"`
	Automatons []AutomatonConfig `yaml:"automatons"`
}

// AutomatonConfig fixes one automaton's construction parameters.
type AutomatonConfig struct {
	Policy    string  `yaml:"policy"`
	Size      int     `yaml:"size"`
	Period    int     `yaml:"period"`
	TileW     int     `yaml:"tile_w"`
	TileH     int     `yaml:"tile_h"`
	FillRate  float64 `yaml:"fill_rate"`
	Movements int     `yaml:"movements"`
}

// StagnationConfig controls the scene-wide reset: when the total
// changed-cell count stays below Threshold for Window consecutive steps,
// every automaton is reseeded. Window 0 disables the reset.
type StagnationConfig struct {
	Threshold int `yaml:"threshold"`
	Window    int `yaml:"window"`
}

// DefaultConfig is the classic four-grid scene, one automaton per policy.
func DefaultConfig() *Config {
	return &Config{
		Steps: DefaultSteps,
		FPS:   DefaultFPS,
		Stagnation: StagnationConfig{
			Threshold: DefaultThreshold,
			Window:    DefaultWindow,
		},
		Automatons: []AutomatonConfig{
			{Policy: "random_swap", Size: DefaultSize, Period: DefaultPeriod,
				TileW: DefaultTile, TileH: DefaultTile, FillRate: DefaultFillRate,
				Movements: DefaultMovements},
			{Policy: "dominant_fill", Size: DefaultSize, Period: DefaultPeriod,
				TileW: DefaultTile, TileH: DefaultTile, FillRate: DefaultFillRate},
			{Policy: "circular_sort", Size: DefaultSize, Period: DefaultPeriod,
				TileW: DefaultTile, TileH: DefaultTile, FillRate: DefaultFillRate},
			{Policy: "row_sort", Size: DefaultSize, Period: DefaultPeriod,
				TileW: DefaultSize, TileH: DefaultBand, FillRate: DefaultFillRate},
		},
	}
}

// Load reads a yaml config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as yaml.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects invalid configurations before any automaton is built.
func (c *Config) Validate() error {
	if len(c.Automatons) == 0 {
		return fmt.Errorf("config: no automatons defined")
	}
	if c.Steps < 0 {
		return fmt.Errorf("config: steps must be non-negative, got %d", c.Steps)
	}
	if c.FPS < 1 {
		return fmt.Errorf("config: fps must be positive, got %d", c.FPS)
	}
	if c.Stagnation.Threshold < 0 || c.Stagnation.Window < 0 {
		return fmt.Errorf("config: stagnation threshold and window must be non-negative")
	}
	for i, a := range c.Automatons {
		if a.Size < 3 {
			return fmt.Errorf("config: automaton %d: size must be at least 3, got %d", i, a.Size)
		}
		if a.Period < 1 {
			return fmt.Errorf("config: automaton %d: period must be positive, got %d", i, a.Period)
		}
		if a.FillRate < 0 || a.FillRate > 1 {
			return fmt.Errorf("config: automaton %d: fill_rate outside [0,1]: %f", i, a.FillRate)
		}
		if a.Movements < 0 {
			return fmt.Errorf("config: automaton %d: movements must be non-negative, got %d", i, a.Movements)
		}
		tw, th := a.TileW, a.TileH
		if a.Policy == "row_sort" {
			tw = a.Size // bands span the full width
		}
		if tw < 1 || th < 1 || a.Size%tw != 0 || a.Size%th != 0 {
			return fmt.Errorf("config: automaton %d: tile %dx%d does not evenly tile a %d grid",
				i, tw, th, a.Size)
		}
	}
	return nil
}
