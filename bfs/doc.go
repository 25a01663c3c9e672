// Package bfs runs breadth-first search over any Graph that can list the
// neighbors of a vertex.
//
// The search returns a Result with the visit order, the distance of every
// discovered vertex from the start and the BFS tree as parent links, so
// Result.PathTo yields an unweighted shortest path.
//
// Graph is kept small so implicit graphs work: a network scanner, a puzzle's
// edge list or the bundled AdjacencyList all satisfy it. Neighbors are
// enqueued in the order NeighborIDs returns them, so visit order and paths
// are reproducible.
//
// Options add discovery and visit hooks (WithOnEnqueue, WithOnVisit), a depth
// limit (WithMaxDepth), per-edge filtering (WithFilterNeighbor) and
// cancellation (WithContext). An OnVisit error stops the walk early; callers
// use a private sentinel for "found it" searches.
//
// Time O(V+E), memory O(V).
package bfs
