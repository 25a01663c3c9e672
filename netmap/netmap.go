package netmap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/bitrunner/bfs"
	"github.com/katalvlaran/bitrunner/dfs"
)

// DefaultRoot is the host every discovery starts from.
const DefaultRoot = "home"

var (
	// ErrUnreachable indicates the requested host is not connected to the root.
	ErrUnreachable = errors.New("netmap: host unreachable")

	// ErrScannerNil is returned when a nil Scanner is supplied.
	ErrScannerNil = errors.New("netmap: scanner is nil")
)

// Scanner lists the hosts directly connected to host.
type Scanner interface {
	Scan(ctx context.Context, host string) ([]string, error)
}

// ScannerFunc adapts a function to Scanner.
type ScannerFunc func(ctx context.Context, host string) ([]string, error)

// Scan implements Scanner.
func (f ScannerFunc) Scan(ctx context.Context, host string) ([]string, error) { return f(ctx, host) }

// scanGraph exposes a Scanner as the graph view the traversal packages walk.
// Every host is assumed to exist; unknown hosts surface as scan errors.
type scanGraph struct {
	ctx context.Context
	s   Scanner
}

func (g scanGraph) HasVertex(string) bool { return true }

func (g scanGraph) NeighborIDs(id string) ([]string, error) {
	return g.s.Scan(g.ctx, id)
}

// FindAll returns every host reachable from root, root first, in
// breadth-first discovery order.
func FindAll(ctx context.Context, s Scanner, root string) ([]string, error) {
	if s == nil {
		return nil, ErrScannerNil
	}
	res, err := bfs.BFS(scanGraph{ctx: ctx, s: s}, root, bfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("netmap: discovery from %q: %w", root, err)
	}

	return res.Order, nil
}

// PathTo returns the shortest hop sequence root..target. The search stops as
// soon as target is visited.
func PathTo(ctx context.Context, s Scanner, root, target string) ([]string, error) {
	if s == nil {
		return nil, ErrScannerNil
	}
	found := errors.New("found")
	res, err := bfs.BFS(scanGraph{ctx: ctx, s: s}, root,
		bfs.WithContext(ctx),
		bfs.WithOnVisit(func(id string, _ int) error {
			if id == target {
				return found
			}
			return nil
		}),
	)
	switch {
	case errors.Is(err, found):
	case err != nil:
		return nil, fmt.Errorf("netmap: path to %q: %w", target, err)
	default:
		return nil, fmt.Errorf("%w: %q from %q", ErrUnreachable, target, root)
	}

	return res.PathTo(target)
}

// TraceBack walks depth-first from host until it reaches root and returns the
// path host..root. The result is a valid route but not necessarily the
// shortest one.
func TraceBack(ctx context.Context, s Scanner, host, root string) ([]string, error) {
	if s == nil {
		return nil, ErrScannerNil
	}
	res, err := dfs.DFS(scanGraph{ctx: ctx, s: s}, host,
		dfs.WithContext(ctx),
		dfs.WithOnVisit(func(id string) error {
			if id == root {
				return dfs.ErrStop
			}
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("netmap: trace from %q: %w", host, err)
	}
	path, err := res.PathTo(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %q from %q", ErrUnreachable, root, host)
	}

	return path, nil
}

// Reverse returns a reversed copy of path.
func Reverse(path []string) []string {
	out := make([]string, len(path))
	for i, h := range path {
		out[len(path)-1-i] = h
	}

	return out
}

// FormatPath renders path as "[a] => [b] => [c]".
func FormatPath(path []string) string {
	parts := make([]string, len(path))
	for i, h := range path {
		parts[i] = "[" + h + "]"
	}

	return strings.Join(parts, " => ")
}

// ConnectCommand renders the terminal command chain that follows path,
// skipping root: "connect a;connect b;".
func ConnectCommand(path []string, root string) string {
	var sb strings.Builder
	for _, h := range path {
		if h == root {
			continue
		}
		sb.WriteString("connect ")
		sb.WriteString(h)
		sb.WriteByte(';')
	}

	return sb.String()
}
