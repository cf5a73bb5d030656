package automaton

import "errors"

// Domain errors for automaton construction and seeding.
var (
	// ErrGridSize indicates a grid side length too small to have an interior.
	ErrGridSize = errors.New("automaton: grid size must be at least 3")

	// ErrPeriod indicates a non-positive reorganization period.
	ErrPeriod = errors.New("automaton: reorganization period must be positive")

	// ErrNilPolicy indicates a missing reorganization policy.
	ErrNilPolicy = errors.New("automaton: nil reorganization policy")

	// ErrNilRand indicates a missing random source.
	ErrNilRand = errors.New("automaton: nil random source")

	// ErrFillRate indicates a seeding probability outside [0, 1].
	ErrFillRate = errors.New("automaton: fill rate outside [0, 1]")
)
