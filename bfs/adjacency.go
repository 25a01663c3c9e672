package bfs

import "fmt"

// AdjacencyList is a small undirected Graph with deterministic neighbor
// order: neighbors are returned in the order their edges were added.
// It is not safe for concurrent mutation.
type AdjacencyList struct {
	order []string
	adj   map[string][]string
}

// NewAdjacencyList returns an empty AdjacencyList.
func NewAdjacencyList() *AdjacencyList {
	return &AdjacencyList{adj: make(map[string][]string)}
}

// AddVertex inserts id if it is not already present.
func (a *AdjacencyList) AddVertex(id string) {
	if _, ok := a.adj[id]; ok {
		return
	}
	a.adj[id] = nil
	a.order = append(a.order, id)
}

// AddEdge connects u and v in both directions, creating missing vertices.
// Self-loops are stored once.
func (a *AdjacencyList) AddEdge(u, v string) {
	a.AddVertex(u)
	a.AddVertex(v)
	a.adj[u] = append(a.adj[u], v)
	if u != v {
		a.adj[v] = append(a.adj[v], u)
	}
}

// HasVertex implements Graph.
func (a *AdjacencyList) HasVertex(id string) bool {
	_, ok := a.adj[id]
	return ok
}

// NeighborIDs implements Graph.
func (a *AdjacencyList) NeighborIDs(id string) ([]string, error) {
	nbrs, ok := a.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, id)
	}
	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// Vertices returns vertex IDs in insertion order.
func (a *AdjacencyList) Vertices() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)

	return out
}
