package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/bitrunner/bfs"
	"github.com/katalvlaran/bitrunner/dfs"
)

// ExampleDFS stops as soon as the goal is discovered and prints the tree path.
func ExampleDFS() {
	g := bfs.NewAdjacencyList()
	g.AddEdge("home", "n00dles")
	g.AddEdge("home", "foodnstuff")
	g.AddEdge("foodnstuff", "nectar-net")

	res, err := dfs.DFS(g, "home", dfs.WithOnVisit(func(id string) error {
		if id == "nectar-net" {
			return dfs.ErrStop
		}
		return nil
	}))
	if err != nil {
		panic(err)
	}
	path, _ := res.PathTo("nectar-net")
	fmt.Println(path)
	// Output: [home foodnstuff nectar-net]
}
