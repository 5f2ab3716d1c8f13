package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/pq"
)

// Dijkstra computes shortest distances from the configured sources to every
// vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. At least one source (ErrNoSource).
//  3. Every source is a vertex of g (ErrVertexNotFound).
//
// A negative edge weight met during the run aborts it with ErrNegativeWeight.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Dijkstra(g Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if len(cfg.Sources) == 0 {
		return nil, ErrNoSource
	}
	for _, s := range cfg.Sources {
		if !g.HasNode(s) {
			return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, s)
		}
	}

	n := g.MaxID() + 1
	bound := int64(-1)
	if cfg.MaxDistance != Inf {
		bound = cfg.MaxDistance
	}
	q, err := pq.New[int](cfg.Queue, n, bound)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	r := &runner{
		g:       g,
		options: cfg,
		res:     &Result{Dist: make([]int64, n), Origin: make([]int, n)},
		settled: make([]bool, n),
		q:       q,
	}
	if cfg.ReturnPath {
		r.res.Prev = make([]int, n)
	}
	if err = r.init(); err != nil {
		return nil, err
	}
	if err = r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph
	options Options
	res     *Result
	settled []bool
	q       pq.Queue[int]
}

// init resets every vertex to unreached and queues the sources at distance 0.
func (r *runner) init() error {
	for v := range r.res.Dist {
		r.res.Dist[v] = Inf
		r.res.Origin[v] = -1
		if r.res.Prev != nil {
			r.res.Prev[v] = -1
		}
	}
	for _, s := range r.options.Sources {
		if r.res.Origin[s] == -1 || s < r.res.Origin[s] {
			r.res.Origin[s] = s
		}
		r.res.Dist[s] = 0
		if err := r.q.InsertOrDecrease(0, s); err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}
	}

	return nil
}

// process extracts vertices in distance order until the queue is empty.
func (r *runner) process() error {
	for r.q.Len() > 0 {
		u, _, err := r.q.ExtractMin()
		if err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}
		r.settled[u] = true
		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the tentative distance of every unsettled neighbor of u.
// An equal distance from a smaller origin takes the neighbor over without
// touching the queue.
func (r *runner) relax(u int) error {
	var failure error
	du := r.res.Dist[u]
	ou := r.res.Origin[u]
	r.g.ForEachNeighbor(u, func(v int, w int64) {
		if failure != nil || r.settled[v] {
			return
		}
		if w < 0 {
			failure = fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, v, w)
			return
		}
		if w >= r.options.InfEdgeThreshold {
			return
		}
		nd := du + w
		if nd > r.options.MaxDistance {
			return
		}
		dv := r.res.Dist[v]
		if nd > dv || (nd == dv && ou >= r.res.Origin[v]) {
			return
		}
		r.res.Dist[v] = nd
		r.res.Origin[v] = ou
		if r.res.Prev != nil {
			r.res.Prev[v] = u
		}
		if nd < dv {
			if err := r.q.InsertOrDecrease(nd, v); err != nil {
				failure = fmt.Errorf("dijkstra: %w", err)
			}
		}
	})

	return failure
}
