// Package tiling partitions an automaton grid into fixed-size rectangular
// tiles and implements the four reorganization policies that rearrange
// them:
//
//   - [RandomSwap]: relocates random tiles a fixed number of times
//   - [DominantFill]: flattens each tile to its majority value
//   - [CircularSort]: sorts tiles by fill and lays them out radially
//   - [RowSort]: sorts full-width bands by fill, top to bottom
//
// A [Tiler] splits a grid into an ordered, row-major sequence of tile
// copies and merges a sequence back at the same coordinates. The grid
// side must divide evenly by both tile dimensions; partial tiles are
// rejected at construction.
package tiling
