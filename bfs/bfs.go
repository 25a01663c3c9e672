package bfs

import "fmt"

// frontier entry
type node struct {
	id    string
	depth int
}

type walker struct {
	g    Graph
	cfg  config
	head int
	fifo []node
	res  *Result
}

// BFS searches g breadth-first from startID. It fails fast with ErrGraphNil,
// ErrOptionViolation or ErrStartVertexNotFound. During the walk, a neighbor
// lookup failure (ErrNeighbors), a hook error or a cancelled context stops
// the search and is returned together with the partial Result.
func BFS(g Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	w := &walker{
		g:   g,
		cfg: cfg,
		res: &Result{Depth: map[string]int{}, Parent: map[string]string{}},
	}
	w.discover(startID, "", 0)

	return w.res, w.run()
}

func (w *walker) discover(id, parent string, depth int) {
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	if w.cfg.onEnqueue != nil {
		w.cfg.onEnqueue(id, depth)
	}
	w.fifo = append(w.fifo, node{id: id, depth: depth})
}

func (w *walker) run() error {
	for w.head < len(w.fifo) {
		if err := w.cfg.ctx.Err(); err != nil {
			return err
		}
		cur := w.fifo[w.head]
		w.head++

		w.res.Order = append(w.res.Order, cur.id)
		if w.cfg.onVisit != nil {
			if err := w.cfg.onVisit(cur.id, cur.depth); err != nil {
				return fmt.Errorf("bfs: OnVisit error at %q: %w", cur.id, err)
			}
		}
		if w.cfg.maxDepth > 0 && cur.depth >= w.cfg.maxDepth {
			continue
		}
		nbrs, err := w.g.NeighborIDs(cur.id)
		if err != nil {
			return fmt.Errorf("%w: neighbors of %q: %v", ErrNeighbors, cur.id, err)
		}
		for _, n := range nbrs {
			if w.res.Reached(n) {
				continue
			}
			if w.cfg.filter != nil && !w.cfg.filter(cur.id, n) {
				continue
			}
			w.discover(n, cur.id, cur.depth+1)
		}
	}

	return nil
}
