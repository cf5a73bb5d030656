package tiling

import "errors"

// Domain errors for tiler construction and tile placement.
var (
	// ErrTileSize indicates a tile dimension that is non-positive or does
	// not divide the grid side evenly.
	ErrTileSize = errors.New("tiling: tile size must be positive and divide the grid size")

	// ErrTileCount indicates a merge with a tile sequence whose length
	// does not match the tiler layout.
	ErrTileCount = errors.New("tiling: tile count does not match the tiler layout")

	// ErrMoveCount indicates a negative movement count for RandomSwap.
	ErrMoveCount = errors.New("tiling: movement count must be non-negative")

	// ErrNilRand indicates a missing random source.
	ErrNilRand = errors.New("tiling: nil random source")
)
