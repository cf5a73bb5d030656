package tiling

import (
	"math/rand/v2"
	"slices"

	"github.com/imclab/casa/internal/automaton"
)

// RandomSwap relocates a fixed number of randomly chosen tiles to fresh
// random positions. The tile multiset is invariant; only the order moves.
type RandomSwap struct {
	tiler *Tiler
	moves int
	rng   *rand.Rand
}

// NewRandomSwap builds the policy for a d×d grid with tw×th tiles,
// performing moves relocations per reorganization.
func NewRandomSwap(d, tw, th, moves int, rng *rand.Rand) (*RandomSwap, error) {
	if moves < 0 {
		return nil, ErrMoveCount
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	tiler, err := NewTiler(d, tw, th)
	if err != nil {
		return nil, err
	}
	return &RandomSwap{tiler: tiler, moves: moves, rng: rng}, nil
}

// Name identifies the policy.
func (p *RandomSwap) Name() string { return "random_swap" }

// Apply removes a random tile and reinserts it at a freshly drawn random
// position, moves times, then merges in standard row-major order.
func (p *RandomSwap) Apply(g *automaton.Grid) error {
	tiles := p.tiler.Split(g)
	for i := 0; i < p.moves; i++ {
		src := p.rng.IntN(len(tiles))
		tile := tiles[src]
		tiles = slices.Delete(tiles, src, src+1)
		dst := p.rng.IntN(len(tiles) + 1)
		tiles = slices.Insert(tiles, dst, tile)
	}
	return p.tiler.Merge(g, tiles)
}
