package automaton

import "math/rand/v2"

// Grid is a square board of binary-valued cells with double-buffered
// state. Cell values live in two parallel row-major slices: present holds
// the committed generation, future the one being computed. Border cells
// are never touched by the update rule.
type Grid struct {
	d       int
	present []float64
	future  []float64
}

// NewGrid allocates a d×d grid. The side length must be at least 3 so the
// grid has an interior for the update rule to act on.
func NewGrid(d int) (*Grid, error) {
	if d < 3 {
		return nil, ErrGridSize
	}
	return &Grid{
		d:       d,
		present: make([]float64, d*d),
		future:  make([]float64, d*d),
	}, nil
}

// Size returns the side length.
func (g *Grid) Size() int { return g.d }

// At returns the committed value of the cell at (x, y).
func (g *Grid) At(x, y int) float64 { return g.present[y*g.d+x] }

// Set overwrites the committed value of the cell at (x, y).
func (g *Grid) Set(x, y int, v float64) { g.present[y*g.d+x] = v }

// LiveCells counts committed cells with value 1.
func (g *Grid) LiveCells() int {
	live := 0
	for _, v := range g.present {
		if v == 1 {
			live++
		}
	}
	return live
}

// Seed sets every cell to 1 with independent probability fillRate, else 0.
// Future values are left undefined until the next ComputeNext.
func (g *Grid) Seed(fillRate float64, rng *rand.Rand) {
	for i := range g.present {
		if rng.Float64() < fillRate {
			g.present[i] = 1
		} else {
			g.present[i] = 0
		}
	}
}

// ComputeNext evaluates the update rule for every interior cell, writing
// results into the future buffer. Border cells are skipped.
func (g *Grid) ComputeNext() {
	d := g.d
	for y := 1; y < d-1; y++ {
		for x := 1; x < d-1; x++ {
			i := y*d + x
			g.future[i] = nextValue(
				g.present[i],
				g.present[i-d], // up
				g.present[i+d], // down
				g.present[i-1], // left
				g.present[i+1], // right
			)
		}
	}
}

// Commit copies every interior cell's future value into present and
// returns the number of cells whose value changed.
func (g *Grid) Commit() int {
	d, changed := g.d, 0
	for y := 1; y < d-1; y++ {
		for x := 1; x < d-1; x++ {
			i := y*d + x
			if g.present[i] != g.future[i] {
				changed++
			}
			g.present[i] = g.future[i]
		}
	}
	return changed
}
