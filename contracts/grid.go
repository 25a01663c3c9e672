package contracts

import (
	"sort"

	"github.com/katalvlaran/bitrunner/gridgraph"
)

// Spiralize returns the elements of a rectangular matrix in clockwise spiral
// order starting at the top-left corner. Empty or ragged input yields an
// empty slice.
func Spiralize(matrix [][]int) []int {
	out := []int{}
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return out
	}
	for _, row := range matrix {
		if len(row) != len(matrix[0]) {
			return out
		}
	}

	top, bottom := 0, len(matrix)-1
	left, right := 0, len(matrix[0])-1
	for top <= bottom && left <= right {
		for x := left; x <= right; x++ {
			out = append(out, matrix[top][x])
		}
		for y := top + 1; y <= bottom; y++ {
			out = append(out, matrix[y][right])
		}
		if top < bottom {
			for x := right - 1; x >= left; x-- {
				out = append(out, matrix[bottom][x])
			}
		}
		if left < right {
			for y := bottom - 1; y > top; y-- {
				out = append(out, matrix[y][left])
			}
		}
		top, bottom, left, right = top+1, bottom-1, left+1, right-1
	}

	return out
}

// MinTrianglePathSum returns the minimum top-to-bottom path sum of a triangle
// where each step moves to an adjacent number on the row below. The DP works
// on a copy of the bottom row. An empty triangle yields 0.
func MinTrianglePathSum(triangle [][]int) int {
	if len(triangle) == 0 {
		return 0
	}
	last := triangle[len(triangle)-1]
	best := make([]int, len(last))
	copy(best, last)
	for r := len(triangle) - 2; r >= 0; r-- {
		row := triangle[r]
		if len(row) >= len(best) {
			return 0
		}
		for i, v := range row {
			best[i] = v + min(best[i], best[i+1])
		}
	}

	return best[0]
}

// UniquePaths counts the monotone (right/down) paths across a rows×cols grid.
func UniquePaths(rows, cols int) int {
	if rows <= 0 || cols <= 0 {
		return 0
	}
	ways := make([]int, cols)
	for i := range ways {
		ways[i] = 1
	}
	for r := 1; r < rows; r++ {
		for c := 1; c < cols; c++ {
			ways[c] += ways[c-1]
		}
	}

	return ways[cols-1]
}

// UniquePathsWithObstacles counts monotone paths across grid avoiding cells
// marked 1. Empty or ragged grids yield 0.
func UniquePathsWithObstacles(grid [][]int) int {
	gg, err := gridgraph.NewGridGraph(grid)
	if err != nil {
		return 0
	}

	return gg.CountPaths()
}

// ShortestPathInGrid returns the U/D/L/R moves of a shortest route from the
// top-left to the bottom-right cell avoiding cells marked 1, or "" when there
// is none.
func ShortestPathInGrid(grid [][]int) string {
	gg, err := gridgraph.NewGridGraph(grid)
	if err != nil {
		return ""
	}
	path, _ := gg.ShortestPath()

	return path
}

// MergeIntervals merges overlapping or touching [start, end] intervals and
// returns them sorted by start. The input slice is not modified.
func MergeIntervals(intervals [][2]int) [][2]int {
	out := [][2]int{}
	if len(intervals) == 0 {
		return out
	}
	sorted := make([][2]int, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i][0] != sorted[j][0] {
			return sorted[i][0] < sorted[j][0]
		}
		return sorted[i][1] < sorted[j][1]
	})

	cur := sorted[0]
	for _, iv := range sorted[1:] {
		if iv[0] <= cur[1] {
			cur[1] = max(cur[1], iv[1])
			continue
		}
		out = append(out, cur)
		cur = iv
	}

	return append(out, cur)
}
