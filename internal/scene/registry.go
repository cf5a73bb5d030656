package scene

import (
	"fmt"
	"math/rand/v2"

	"github.com/imclab/casa/internal/automaton"
	"github.com/imclab/casa/internal/config"
	"github.com/imclab/casa/internal/tiling"
)

// FromConfig builds a seeded scene from a validated config. Each
// automaton gets its own PCG stream derived from the scene seed, so runs
// are reproducible and automatons stay independent.
func FromConfig(cfg *config.Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := New(cfg.Stagnation.Threshold, cfg.Stagnation.Window)
	for i, ac := range cfg.Automatons {
		rng := rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(i)))
		policy, err := buildPolicy(ac, rng)
		if err != nil {
			return nil, fmt.Errorf("automaton %d: %w", i, err)
		}
		a, err := automaton.New(ac.Size, ac.Period, policy, rng)
		if err != nil {
			return nil, fmt.Errorf("automaton %d: %w", i, err)
		}
		if err := s.Add(a, ac.FillRate); err != nil {
			return nil, fmt.Errorf("automaton %d: %w", i, err)
		}
	}
	return s, nil
}

func buildPolicy(ac config.AutomatonConfig, rng *rand.Rand) (automaton.Policy, error) {
	switch ac.Policy {
	case "random_swap":
		return tiling.NewRandomSwap(ac.Size, ac.TileW, ac.TileH, ac.Movements, rng)
	case "dominant_fill":
		return tiling.NewDominantFill(ac.Size, ac.TileW, ac.TileH)
	case "circular_sort":
		return tiling.NewCircularSort(ac.Size, ac.TileW, ac.TileH)
	case "row_sort":
		return tiling.NewRowSort(ac.Size, ac.TileH)
	default:
		return nil, fmt.Errorf("unknown policy: %s", ac.Policy)
	}
}

// Policies lists the recognized policy names.
func Policies() []string {
	return []string{"random_swap", "dominant_fill", "circular_sort", "row_sort"}
}
