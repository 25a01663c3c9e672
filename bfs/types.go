package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
	// ErrNeighbors is returned when the graph fails to list neighbors.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
	// ErrNoPath is returned by PathTo when the destination was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Graph is the minimal view BFS needs. NeighborIDs must return neighbors in a
// stable order; BFS enqueues them in exactly that order.
type Graph interface {
	HasVertex(id string) bool
	NeighborIDs(id string) ([]string, error)
}

// Option configures a BFS call. An invalid Option is recorded and reported as
// ErrOptionViolation when BFS runs.
type Option func(*config)

type config struct {
	ctx       context.Context
	onEnqueue func(id string, depth int)
	onVisit   func(id string, depth int) error
	maxDepth  int // 0 = unlimited
	filter    func(curr, neighbor string) bool
	err       error
}

func newConfig(opts []Option) (config, error) {
	c := config{ctx: context.Background()}
	for _, opt := range opts {
		opt(&c)
	}
	return c, c.err
}

// WithContext makes BFS stop with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithOnEnqueue calls fn when a vertex is discovered, with its depth.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(c *config) { c.onEnqueue = fn }
}

// WithOnVisit calls fn when a vertex is dequeued. A non-nil error aborts the
// search; the partial Result is still returned.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(c *config) { c.onVisit = fn }
}

// WithMaxDepth limits discovery to vertices at most d edges from the start.
// Zero means no limit; a negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(c *config) {
		if d < 0 {
			c.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		c.maxDepth = d
	}
}

// WithFilterNeighbor skips the edge curr→neighbor when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(c *config) { c.filter = fn }
}

// Result is the BFS tree: Order lists vertices in visit sequence, Depth maps
// each discovered vertex to its distance in edges and Parent to its
// predecessor. The start vertex has no Parent entry.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Reached reports whether id was discovered by the traversal.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo returns the tree path from the start vertex to dest, or ErrNoPath.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	path := []string{dest}
	for prev, ok := r.Parent[dest]; ok; prev, ok = r.Parent[prev] {
		path = append(path, prev)
	}
	slices.Reverse(path)

	return path, nil
}
