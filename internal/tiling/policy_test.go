package tiling

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/imclab/casa/internal/automaton"
)

func blockSum(g *automaton.Grid, ox, oy, w, h int) float64 {
	sum := 0.0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum += g.At(ox+x, oy+y)
		}
	}
	return sum
}

func sortedTileSums(g *automaton.Grid, tw, th int) []float64 {
	tiler, _ := NewTiler(g.Size(), tw, th)
	tiles := tiler.Split(g)
	sums := make([]float64, len(tiles))
	for i, tile := range tiles {
		sums[i] = tile.Sum()
	}
	sort.Float64s(sums)
	return sums
}

func TestRandomSwapValidation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 0))
	if _, err := NewRandomSwap(8, 2, 2, -1, rng); err != ErrMoveCount {
		t.Errorf("negative moves: expected ErrMoveCount, got %v", err)
	}
	if _, err := NewRandomSwap(8, 2, 2, 4, nil); err != ErrNilRand {
		t.Errorf("nil rand: expected ErrNilRand, got %v", err)
	}
	if _, err := NewRandomSwap(8, 3, 2, 4, rng); err != ErrTileSize {
		t.Errorf("bad tile: expected ErrTileSize, got %v", err)
	}
}

func TestRandomSwapPreservesTileMultiset(t *testing.T) {
	g, _ := automaton.NewGrid(8)
	rng := rand.New(rand.NewPCG(5, 0))
	g.Seed(0.5, rng)

	before := sortedTileSums(g, 2, 2)
	liveBefore := g.LiveCells()

	policy, err := NewRandomSwap(8, 2, 2, 17, rng)
	if err != nil {
		t.Fatalf("NewRandomSwap failed: %v", err)
	}
	if err := policy.Apply(g); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	after := sortedTileSums(g, 2, 2)
	if len(before) != len(after) {
		t.Fatalf("tile count changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("tile sum multiset changed at %d: %v -> %v", i, before[i], after[i])
		}
	}
	if live := g.LiveCells(); live != liveBefore {
		t.Errorf("total live cells changed: %d -> %d", liveBefore, live)
	}
}

func TestRandomSwapZeroMovesIsNoOp(t *testing.T) {
	g, _ := automaton.NewGrid(8)
	rng := rand.New(rand.NewPCG(5, 0))
	g.Seed(0.5, rng)
	want := snapshot(g)

	policy, _ := NewRandomSwap(8, 2, 2, 0, rng)
	if err := policy.Apply(g); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !gridsEqual(snapshot(g), want) {
		t.Error("zero movements altered the grid")
	}
}

func TestDominantFill(t *testing.T) {
	g, _ := automaton.NewGrid(4)
	// 2x2 tiles: full, half (tie), three quarters, empty.
	g.Set(0, 0, 1)
	g.Set(1, 0, 1)
	g.Set(0, 1, 1)
	g.Set(1, 1, 1)

	g.Set(2, 0, 1)
	g.Set(3, 0, 1)

	g.Set(0, 2, 1)
	g.Set(1, 2, 1)
	g.Set(0, 3, 1)

	policy, err := NewDominantFill(4, 2, 2)
	if err != nil {
		t.Fatalf("NewDominantFill failed: %v", err)
	}
	if err := policy.Apply(g); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	tests := []struct {
		name     string
		ox, oy   int
		expected float64
	}{
		{"full tile stays full", 0, 0, 4},
		{"half tile ties to empty", 2, 0, 0},
		{"majority tile fills", 0, 2, 4},
		{"empty tile stays empty", 2, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := blockSum(g, tt.ox, tt.oy, 2, 2); got != tt.expected {
				t.Errorf("block (%d,%d): sum %v, want %v", tt.ox, tt.oy, got, tt.expected)
			}
		})
	}
}

func TestCircularSortBullseye(t *testing.T) {
	// A 4x4 tile layout with strictly distinct tile sums 0..15.
	g, _ := automaton.NewGrid(16)
	k := 0
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			for c := 0; c < k; c++ {
				g.Set(col*4+c%4, row*4+c/4, 1)
			}
			k++
		}
	}
	liveBefore := g.LiveCells()
	before := sortedTileSums(g, 4, 4)

	policy, err := NewCircularSort(16, 4, 4)
	if err != nil {
		t.Fatalf("NewCircularSort failed: %v", err)
	}
	if err := policy.Apply(g); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// The tile-grid center (2,2) has normalized distance 0 and must
	// receive the fullest tile; the corner (0,0) has distance 1 and must
	// receive the emptiest.
	if got := blockSum(g, 8, 8, 4, 4); got != 15 {
		t.Errorf("center tile sum %v, want 15", got)
	}
	if got := blockSum(g, 0, 0, 4, 4); got != 0 {
		t.Errorf("corner tile sum %v, want 0", got)
	}

	if live := g.LiveCells(); live != liveBefore {
		t.Errorf("total live cells changed: %d -> %d", liveBefore, live)
	}
	after := sortedTileSums(g, 4, 4)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("tile sum multiset changed at %d", i)
		}
	}
}

func TestRowSortOrdersBands(t *testing.T) {
	g, _ := automaton.NewGrid(8)
	// Band sums 2, 12, 6, 9 from top to bottom.
	fillBand := func(band, count int) {
		for c := 0; c < count; c++ {
			g.Set(c%8, band*2+c/8, 1)
		}
	}
	fillBand(0, 2)
	fillBand(1, 12)
	fillBand(2, 6)
	fillBand(3, 9)

	policy, err := NewRowSort(8, 2)
	if err != nil {
		t.Fatalf("NewRowSort failed: %v", err)
	}
	if err := policy.Apply(g); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	want := []float64{12, 9, 6, 2}
	for band, sum := range want {
		if got := blockSum(g, 0, band*2, 8, 2); got != sum {
			t.Errorf("band %d: sum %v, want %v", band, got, sum)
		}
	}

	// A second pass over the sorted grid is a no-op.
	sorted := snapshot(g)
	if err := policy.Apply(g); err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	if !gridsEqual(snapshot(g), sorted) {
		t.Error("row sort is not idempotent on a sorted grid")
	}
}
