// Package automaton provides the core cellular-automaton primitives for
// the casa lab.
//
// The package defines the fundamental types for a single automaton:
//
//   - [Grid]: a square, double-buffered board of binary cells
//   - [Policy]: interface for periodic tile-reorganization strategies
//   - [Automaton]: couples a grid with a policy and a step counter
//
// An [Automaton] advances one generation per [Automaton.Step]; every
// `period` steps the bound [Policy] rearranges the grid in whole-tile
// units. Randomness (seeding, tile shuffling) always flows through an
// explicitly passed *rand.Rand so runs are reproducible.
//
// # Example
//
//	rng := rand.New(rand.NewPCG(42, 0))
//	p, _ := tiling.NewRandomSwap(48, 8, 8, 24, rng)
//	a, _ := automaton.New(48, 12, p, rng)
//	a.Reset(0.5)
//	a.Step()
//
// # Thread Safety
//
// Automaton instances are NOT thread-safe, but no instance shares state
// with another, so distinct automatons may be stepped from distinct
// goroutines.
package automaton
