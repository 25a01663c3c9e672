// Package gridgraph treats a rectangular 2D grid of cells as an implicit
// 4-connected graph and answers path questions about it.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid; 0 is an open cell, anything else is an obstacle.
//   - ShortestPath: BFS from the top-left to the bottom-right cell, returned as a U/D/L/R string.
//   - CountPaths: number of monotone (right/down) paths avoiding obstacles.
//
// Determinism:
//
//	Neighbors are always expanded in the order Up, Down, Left, Right, so the
//	first shortest path found is stable across runs.
//
// Complexity:
//
//   - ShortestPath: O(W×H), Memory: O(W×H).
//   - CountPaths:   O(W×H), Memory: O(W).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
