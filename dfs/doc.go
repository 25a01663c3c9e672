// Package dfs implements depth-first search over any Graph that can list the
// neighbors of a vertex.
//
// What:
//
//   - DFS(g, startID, opts...) explores as far as possible along each branch
//     before backtracking. Neighbors are followed in the order the graph
//     returns them, so traversal is reproducible.
//   - Pre-order (OnVisit) and post-order (OnExit) hooks; either may abort.
//   - Cancellation via context.Context, depth limiting, neighbor filtering.
//   - ErrStop returned from a hook ends the walk early without an error,
//     which turns DFS into a goal search (see DFSResult.PathTo).
//
// Key Types:
//
//   - Graph: HasVertex and NeighborIDs; implicit graphs such as a network
//     scanner satisfy it directly.
//   - DFSOptions / Option: functional configuration.
//   - DFSResult: post-order, Depth, Parent and Visited maps.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the recursion stack and result maps.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if startID is missing.
//   - ErrNoPath               from PathTo for unvisited destinations.
//   - context.Canceled        if ctx is done.
//   - wrapped errors from OnVisit, OnExit or NeighborIDs.
package dfs
