package contracts

import (
	"strconv"

	"github.com/katalvlaran/bitrunner/bfs"
)

// TwoColoring assigns color 0 or 1 to vertices 0..n-1 so that every edge joins
// differently colored vertices. Each connected component is colored by BFS
// from its lowest-numbered vertex, which gets color 0. A graph with an odd
// cycle, a self-loop or an out-of-range endpoint yields an empty slice.
func TwoColoring(n int, edges [][2]int) []int {
	if n <= 0 {
		return []int{}
	}
	g := bfs.NewAdjacencyList()
	for v := 0; v < n; v++ {
		g.AddVertex(strconv.Itoa(v))
	}
	for _, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return []int{}
		}
		g.AddEdge(strconv.Itoa(e[0]), strconv.Itoa(e[1]))
	}

	colors := make([]int, n)
	colored := make([]bool, n)
	for v := 0; v < n; v++ {
		if colored[v] {
			continue
		}
		res, err := bfs.BFS(g, strconv.Itoa(v))
		if err != nil {
			return []int{}
		}
		// BFS order guarantees a parent is colored before its children
		for _, id := range res.Order {
			u, _ := strconv.Atoi(id)
			colored[u] = true
			if parent, ok := res.Parent[id]; ok {
				p, _ := strconv.Atoi(parent)
				colors[u] = 1 - colors[p]
			}
		}
	}

	for _, e := range edges {
		if colors[e[0]] == colors[e[1]] {
			return []int{}
		}
	}

	return colors
}
