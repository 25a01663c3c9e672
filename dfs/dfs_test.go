package dfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bitrunner/bfs"
	"github.com/katalvlaran/bitrunner/dfs"
)

// buildChain creates an undirected chain N0-N1-...-N(n-1).
func buildChain(n int) *bfs.AdjacencyList {
	g := bfs.NewAdjacencyList()
	g.AddVertex("N0")
	for i := 0; i < n-1; i++ {
		g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", i+1))
	}

	return g
}

// buildTriangleTail builds A-B, A-C, B-C, C-D.
func buildTriangleTail() *bfs.AdjacencyList {
	g := bfs.NewAdjacencyList()
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddEdge("B", "C")
	g.AddEdge("C", "D")

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	res, err := dfs.DFS(bfs.NewAdjacencyList(), "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_PostOrderAndParents(t *testing.T) {
	res, err := dfs.DFS(buildTriangleTail(), "A")
	require.NoError(t, err)

	// A -> B -> C -> D, so D finishes first.
	assert.Equal(t, []string{"D", "C", "B", "A"}, res.Order)
	assert.Equal(t, map[string]string{"B": "A", "C": "B", "D": "C"}, res.Parent)
	assert.Equal(t, 3, res.Depth["D"])

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)
}

func TestDFS_PathToUnvisited(t *testing.T) {
	g := buildChain(3)
	g.AddVertex("island")
	res, err := dfs.DFS(g, "N0")
	require.NoError(t, err)
	_, err = res.PathTo("island")
	assert.ErrorIs(t, err, dfs.ErrNoPath)
}

func TestDFS_MaxDepth(t *testing.T) {
	res, err := dfs.DFS(buildChain(6), "N0", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Len(t, res.Visited, 3)
	assert.False(t, res.Visited["N3"])
}

func TestDFS_FilterNeighbor(t *testing.T) {
	res, err := dfs.DFS(buildTriangleTail(), "A", dfs.WithFilterNeighbor(func(id string) bool { return id != "C" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
	assert.Equal(t, 2, res.SkippedNeighbors)
}

func TestDFS_StopEarly(t *testing.T) {
	var visited []string
	res, err := dfs.DFS(buildChain(10), "N0", dfs.WithOnVisit(func(id string) error {
		visited = append(visited, id)
		if id == "N3" {
			return dfs.ErrStop
		}
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"N0", "N1", "N2", "N3"}, visited)
	path, err := res.PathTo("N3")
	require.NoError(t, err)
	assert.Equal(t, []string{"N0", "N1", "N2", "N3"}, path)
}

func TestDFS_HookErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := dfs.DFS(buildChain(3), "N0", dfs.WithOnVisit(func(id string) error {
		if id == "N1" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)

	_, err = dfs.DFS(buildChain(3), "N0", dfs.WithOnExit(func(string) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestDFS_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(buildChain(3), "N0", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
