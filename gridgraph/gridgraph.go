package gridgraph

// Move is one step on the grid together with the letter that names it.
type Move struct {
	DX, DY int
	Letter byte
}

// Moves lists the 4-connectivity steps in expansion order.
var Moves = [4]Move{
	{DX: 0, DY: -1, Letter: 'U'},
	{DX: 0, DY: 1, Letter: 'D'},
	{DX: -1, DY: 0, Letter: 'L'},
	{DX: 1, DY: 0, Letter: 'R'},
}

// GridGraph is an immutable rectangular grid. CellValues[y][x] holds the
// original input value; non-zero cells are obstacles.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
}

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input so later changes by the caller are not observed.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
func NewGridGraph(values [][]int) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([][]int, h)
	for y, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[y] = make([]int, w)
		copy(cells[y], row)
	}

	return &GridGraph{Width: w, Height: h, CellValues: cells}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Open reports whether (x,y) is inside the grid and not an obstacle.
func (gg *GridGraph) Open(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] == 0
}

// index maps (x,y) to a row‑major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// ShortestPath finds a fewest-steps route from the top-left cell to the
// bottom-right cell and returns it as a string of move letters.
// ok is false when either corner is blocked or the target is unreachable.
// A 1×1 open grid yields ("", true).
func (gg *GridGraph) ShortestPath() (path string, ok bool) {
	goalX, goalY := gg.Width-1, gg.Height-1
	if !gg.Open(0, 0) || !gg.Open(goalX, goalY) {
		return "", false
	}
	goal := gg.index(goalX, goalY)
	// via[i] is the move index used to enter cell i; -1 for unseen cells
	via := make([]int, gg.Width*gg.Height)
	for i := range via {
		via[i] = -1
	}
	via[0] = len(Moves)
	queue := []int{0}
	for qi := 0; qi < len(queue) && via[goal] == -1; qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for m, d := range Moves {
			vx, vy := ux+d.DX, uy+d.DY
			if !gg.Open(vx, vy) {
				continue
			}
			vi := gg.index(vx, vy)
			if via[vi] != -1 {
				continue
			}
			via[vi] = m
			queue = append(queue, vi)
		}
	}
	if via[goal] == -1 {
		return "", false
	}

	// walk back from the goal collecting letters in reverse
	var rev []byte
	for cur := goal; cur != 0; {
		d := Moves[via[cur]]
		rev = append(rev, d.Letter)
		x, y := gg.Coordinate(cur)
		cur = gg.index(x-d.DX, y-d.DY)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return string(rev), true
}

// CountPaths returns the number of paths from the top-left to the
// bottom-right cell that only move right or down and avoid obstacles.
func (gg *GridGraph) CountPaths() int {
	ways := make([]int, gg.Width)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			switch {
			case gg.CellValues[y][x] != 0:
				ways[x] = 0
			case x == 0 && y == 0:
				ways[x] = 1
			case x > 0:
				ways[x] += ways[x-1]
			}
		}
	}

	return ways[gg.Width-1]
}
