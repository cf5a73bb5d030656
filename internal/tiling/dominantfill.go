package tiling

import "github.com/imclab/casa/internal/automaton"

// DominantFill flattens each tile to its majority value: a tile with more
// than half its cells live becomes all live, otherwise all dead. Ties go
// to dead (floor comparison on the halfway point). Tile order is
// unchanged. This is the one policy that rewrites cell values.
type DominantFill struct {
	tiler *Tiler
}

// NewDominantFill builds the policy for a d×d grid with tw×th tiles.
func NewDominantFill(d, tw, th int) (*DominantFill, error) {
	tiler, err := NewTiler(d, tw, th)
	if err != nil {
		return nil, err
	}
	return &DominantFill{tiler: tiler}, nil
}

// Name identifies the policy.
func (p *DominantFill) Name() string { return "dominant_fill" }

// Apply flattens every tile independently and merges in standard
// row-major order.
func (p *DominantFill) Apply(g *automaton.Grid) error {
	tiles := p.tiler.Split(g)
	half := float64(p.tiler.tw * p.tiler.th / 2)
	for i := range tiles {
		v := 0.0
		if tiles[i].Sum() > half {
			v = 1
		}
		for j := range tiles[i].Cells {
			tiles[i].Cells[j] = v
		}
	}
	return p.tiler.Merge(g, tiles)
}
