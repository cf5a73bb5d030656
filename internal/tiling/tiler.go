package tiling

import "github.com/imclab/casa/internal/automaton"

// Tile is an independently owned copy of a rectangular block of cells,
// row-major, extracted from a grid at an integer-multiple offset.
type Tile struct {
	W, H  int
	Cells []float64
}

// Sum counts the live cells in the tile.
func (t Tile) Sum() float64 {
	sum := 0.0
	for _, v := range t.Cells {
		sum += v
	}
	return sum
}

// Tiler partitions a d×d grid into tw×th tiles. Both tile dimensions must
// divide d evenly, so the tiling covers the grid with no partial tiles.
type Tiler struct {
	d, tw, th int
}

// NewTiler validates the tile geometry against the grid side length.
func NewTiler(d, tw, th int) (*Tiler, error) {
	if tw < 1 || th < 1 || d%tw != 0 || d%th != 0 {
		return nil, ErrTileSize
	}
	return &Tiler{d: d, tw: tw, th: th}, nil
}

// Cols returns the number of tile columns.
func (t *Tiler) Cols() int { return t.d / t.tw }

// Rows returns the number of tile rows.
func (t *Tiler) Rows() int { return t.d / t.th }

// Count returns the total number of tiles in the layout.
func (t *Tiler) Count() int { return t.Cols() * t.Rows() }

// Split copies the grid into an ordered tile sequence, scanning tile
// origins row-major (y outer, x inner).
func (t *Tiler) Split(g *automaton.Grid) []Tile {
	tiles := make([]Tile, 0, t.Count())
	for row := 0; row < t.Rows(); row++ {
		for col := 0; col < t.Cols(); col++ {
			tile := Tile{W: t.tw, H: t.th, Cells: make([]float64, t.tw*t.th)}
			ox, oy := col*t.tw, row*t.th
			for y := 0; y < t.th; y++ {
				for x := 0; x < t.tw; x++ {
					tile.Cells[y*t.tw+x] = g.At(ox+x, oy+y)
				}
			}
			tiles = append(tiles, tile)
		}
	}
	return tiles
}

// Merge writes the tile sequence back into the grid in the same row-major
// order Split produced it. The sequence length must match the layout
// exactly; resized sequences need an explicit alternate placement rule.
func (t *Tiler) Merge(g *automaton.Grid, tiles []Tile) error {
	if len(tiles) != t.Count() {
		return ErrTileCount
	}
	i := 0
	for row := 0; row < t.Rows(); row++ {
		for col := 0; col < t.Cols(); col++ {
			t.Place(g, tiles[i], col, row)
			i++
		}
	}
	return nil
}

// Place writes one tile into the grid at tile coordinate (col, row).
func (t *Tiler) Place(g *automaton.Grid, tile Tile, col, row int) {
	ox, oy := col*t.tw, row*t.th
	for y := 0; y < t.th; y++ {
		for x := 0; x < t.tw; x++ {
			g.Set(ox+x, oy+y, tile.Cells[y*t.tw+x])
		}
	}
}
