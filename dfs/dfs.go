package dfs

import (
	"errors"
	"fmt"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph Graph      // underlying graph
	opts  DFSOptions // traversal options
	res   *DFSResult // result collector
}

// DFS performs depth-first search on g starting at startID.
// Returns the DFSResult or an error if aborted by context, hook or graph.
// A hook returning ErrStop ends the walk and yields the partial result.
func DFS(g Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	res := &DFSResult{
		Order:   []string{},
		Depth:   make(map[string]int),
		Parent:  make(map[string]string),
		Visited: make(map[string]bool),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	err := walker.traverse(startID, 0)
	res.SkippedNeighbors = walker.opts.SkippedNeighbors
	if errors.Is(err, ErrStop) {
		return res, nil
	}
	if err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits vertex id at the given depth, recursing to neighbors.
func (w *dfsWalker) traverse(id string, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			if errors.Is(err, ErrStop) {
				return err
			}
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	// 5. Fetch neighbors once
	nbs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
	}

	// 6. Explore each neighbor
	for _, nid := range nbs {
		if nid == id {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.opts.SkippedNeighbors++
			continue
		}
		if !w.res.Visited[nid] {
			w.res.Parent[nid] = id
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	// 7. Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			if errors.Is(err, ErrStop) {
				return err
			}
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	// 8. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}
