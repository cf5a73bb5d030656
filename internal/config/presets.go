package config

// Presets are ready-made scenes keyed by name.
var Presets = map[string]func() *Config{
	// classic: the four-grid gallery, one automaton per policy.
	"classic": DefaultConfig,

	// bullseye: one large grid reorganized radially.
	"bullseye": func() *Config {
		return &Config{
			Steps: DefaultSteps, FPS: DefaultFPS,
			Stagnation: StagnationConfig{Threshold: 4, Window: 40},
			Automatons: []AutomatonConfig{
				{Policy: "circular_sort", Size: 64, Period: 8,
					TileW: 8, TileH: 8, FillRate: 0.45},
			},
		}
	},

	// bands: two grids settling into sorted horizontal strata.
	"bands": func() *Config {
		return &Config{
			Steps: DefaultSteps, FPS: DefaultFPS,
			Stagnation: StagnationConfig{Threshold: 4, Window: 40},
			Automatons: []AutomatonConfig{
				{Policy: "row_sort", Size: 48, Period: 16,
					TileW: 48, TileH: 2, FillRate: 0.5},
				{Policy: "row_sort", Size: 48, Period: 6,
					TileW: 48, TileH: 8, FillRate: 0.65},
			},
		}
	},

	// shuffle: aggressive random relocation over fine tiles.
	"shuffle": func() *Config {
		return &Config{
			Steps: DefaultSteps, FPS: DefaultFPS,
			Stagnation: StagnationConfig{Threshold: 8, Window: 30},
			Automatons: []AutomatonConfig{
				{Policy: "random_swap", Size: 48, Period: 4,
					TileW: 4, TileH: 4, FillRate: 0.5, Movements: 96},
			},
		}
	},

	// blocks: coarse majority flattening on a slow cadence.
	"blocks": func() *Config {
		return &Config{
			Steps: DefaultSteps, FPS: DefaultFPS,
			Stagnation: StagnationConfig{Threshold: 2, Window: 60},
			Automatons: []AutomatonConfig{
				{Policy: "dominant_fill", Size: 48, Period: 24,
					TileW: 12, TileH: 12, FillRate: 0.55},
			},
		}
	},
}

// GetPreset returns a fresh config for the named preset, or nil.
func GetPreset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn()
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
