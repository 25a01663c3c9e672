package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/bitrunner/gridgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_DeepCopy ensures caller mutations are not observed.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{0, 0}, {0, 0}}
	gg, err := gridgraph.NewGridGraph(grid)
	require.NoError(t, err)
	grid[0][1] = 1
	assert.True(t, gg.Open(1, 0), "grid must be copied on construction")
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{0, 1, 0}, {1, 0, 1}})
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	assert.False(t, gg.Open(1, 0))
	assert.True(t, gg.Open(1, 1))
}

//----------------------------------------------------------------------------//
// ShortestPath Tests
//----------------------------------------------------------------------------//

func TestShortestPath(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		path string
		ok   bool
	}{
		{"SingleCell", [][]int{{0}}, "", true},
		{"Row", [][]int{{0, 0, 0}}, "RR", true},
		{"Column", [][]int{{0}, {0}}, "D", true},
		{"Detour", [][]int{
			{0, 1, 0, 0, 0},
			{0, 0, 0, 1, 0},
		}, "DRRURRD", true},
		{"Blocked", [][]int{
			{0, 1},
			{1, 0},
		}, "", false},
		{"StartBlocked", [][]int{{1, 0}}, "", false},
		{"EndBlocked", [][]int{{0, 1}}, "", false},
		// Down is expanded before Right, so the vertical leg comes first.
		{"TieBreak", [][]int{{0, 0}, {0, 0}}, "DR", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gg, err := gridgraph.NewGridGraph(tc.grid)
			require.NoError(t, err)
			path, ok := gg.ShortestPath()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.path, path)
		})
	}
}

// TestShortestPath_LengthMatchesDistance walks the returned path and checks it
// ends on the goal without touching obstacles.
func TestShortestPath_LengthMatchesDistance(t *testing.T) {
	grid := [][]int{
		{0, 0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1},
		{0, 0, 0, 0, 0, 0},
	}
	gg, err := gridgraph.NewGridGraph(grid)
	require.NoError(t, err)
	path, ok := gg.ShortestPath()
	require.True(t, ok)
	assert.Len(t, path, 5+2+5+2+5)

	x, y := 0, 0
	for i := 0; i < len(path); i++ {
		for _, m := range gridgraph.Moves {
			if m.Letter == path[i] {
				x, y = x+m.DX, y+m.DY
			}
		}
		require.True(t, gg.Open(x, y), "step %d lands on (%d,%d)", i, x, y)
	}
	assert.Equal(t, [2]int{5, 4}, [2]int{x, y})
}

//----------------------------------------------------------------------------//
// CountPaths Tests
//----------------------------------------------------------------------------//

func TestCountPaths(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		want int
	}{
		{"SingleCell", [][]int{{0}}, 1},
		{"SingleBlocked", [][]int{{1}}, 0},
		{"Open3x3", [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, 6},
		{"CenterObstacle", [][]int{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}}, 2},
		{"Wall", [][]int{{0, 1}, {1, 0}}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gg, err := gridgraph.NewGridGraph(tc.grid)
			require.NoError(t, err)
			assert.Equal(t, tc.want, gg.CountPaths())
		})
	}
}
