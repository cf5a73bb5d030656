package tiling

import (
	"sort"

	"github.com/imclab/casa/internal/automaton"
)

// RowSort tiles the grid into full-width horizontal bands and sorts them
// descending by live-cell count, so the densest band rises to the top.
// Applying it to an already sorted grid is a no-op.
type RowSort struct {
	tiler *Tiler
}

// NewRowSort builds the policy for a d×d grid with bands bandH rows tall.
func NewRowSort(d, bandH int) (*RowSort, error) {
	tiler, err := NewTiler(d, d, bandH)
	if err != nil {
		return nil, err
	}
	return &RowSort{tiler: tiler}, nil
}

// Name identifies the policy.
func (p *RowSort) Name() string { return "row_sort" }

// Apply sorts the bands and merges in standard row-major order, making
// sorted order the top-to-bottom band order.
func (p *RowSort) Apply(g *automaton.Grid) error {
	tiles := p.tiler.Split(g)
	sort.SliceStable(tiles, func(i, j int) bool { return tiles[i].Sum() > tiles[j].Sum() })
	return p.tiler.Merge(g, tiles)
}
