package tiling

import (
	"math"
	"slices"
	"sort"

	"github.com/imclab/casa/internal/automaton"
)

// CircularSort sorts tiles descending by live-cell count and lays them
// out radially: destinations near the tile-grid center draw from the
// front of the sorted sequence, destinations near the corners from the
// back, producing a bullseye of fill density.
type CircularSort struct {
	tiler *Tiler
}

// NewCircularSort builds the policy for a d×d grid with tw×th tiles.
func NewCircularSort(d, tw, th int) (*CircularSort, error) {
	tiler, err := NewTiler(d, tw, th)
	if err != nil {
		return nil, err
	}
	return &CircularSort{tiler: tiler}, nil
}

// Name identifies the policy.
func (p *CircularSort) Name() string { return "circular_sort" }

// Apply sorts the tile sequence, then places tiles by non-standard
// geometry: for each destination (col, row) in row-major order it takes
// index round(nDist*(remaining-1)) from the live, shrinking sequence,
// where nDist is the destination's distance from the tile-grid center
// normalized by the corner-to-center distance.
func (p *CircularSort) Apply(g *automaton.Grid) error {
	tiles := p.tiler.Split(g)
	sort.Slice(tiles, func(i, j int) bool { return tiles[i].Sum() > tiles[j].Sum() })

	cols, rows := p.tiler.Cols(), p.tiler.Rows()
	cx, cy := float64(cols/2), float64(rows/2)
	maxDist := math.Hypot(cx, cy)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			nDist := 0.0
			if maxDist > 0 {
				nDist = math.Hypot(float64(col)-cx, float64(row)-cy) / maxDist
			}
			// The index is recomputed against the shrinking sequence,
			// not the original length.
			idx := int(math.Round(nDist * float64(len(tiles)-1)))
			tile := tiles[idx]
			tiles = slices.Delete(tiles, idx, idx+1)
			p.tiler.Place(g, tile, col, row)
		}
	}
	return nil
}
