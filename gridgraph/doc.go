// Package gridgraph treats a 2D grid of terrain codes as a graph, ready for
// step-by-step path searches.
//
// What:
//
//   - GridGraph wraps a [][]int grid of terrain codes (Open, Blocked,
//     LightTerrain, MediumTerrain, HeavyTerrain).
//   - Every cell becomes a Node; Blocked cells are kept (see Walls) but are
//     never anyone's neighbor and have no neighbors of their own.
//   - Adjacency is computed once, after all Nodes exist, using Conn8 (default)
//     or Conn4 offsets.
//   - Distance is the octile metric: √2 per diagonal step, 1 per straight step.
//   - ConnectedComponents / Connected expose regions of mutually reachable cells.
//
// Why:
//
//   - Tile maps: walls, swamps and roads in one integer grid.
//   - Search engines need a stable, immutable topology that many runs can share.
//
// Complexity:
//
//   - NewGridGraph:        O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Distance, Node, ID:  O(1).
//   - Connected:           O(1) (regions are labeled at build time).
//
// Options:
//
//   - GridOptions.Width: declared width; shorter rows are padded with Open cells.
//   - GridOptions.Conn:  Conn8 (8-neighbors) or Conn4 (4-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid:          input grid has no rows or no columns (wraps ErrMalformedGrid).
//   - ErrMalformedGrid:      a row is longer than the declared width.
//   - ErrInvalidTerrainCode: a cell holds a code outside the terrain set.
//   - ErrNodeNotFound:       NodeAt was asked for an out-of-bounds coordinate.
package gridgraph
