package bfs

import (
	"errors"
	"slices"

	"github.com/katalvlaran/lvsteiner/core"
)

type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil, ErrStartVertexNotFound, the context error on
// cancellation, or any error returned by OnVisit.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasNode(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{v: start})
	if err := w.loop(); err != nil {
		return w.res, err
	}

	return w.res, nil
}

func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return err
		}
		w.graph.ForEachNeighbor(item.v, func(x int, _ int64) {
			if _, seen := w.res.Depth[x]; seen || !w.opts.FilterNeighbor(item.v, x) {
				return
			}
			w.res.Depth[x] = item.depth + 1
			w.res.Parent[x] = item.v
			w.queue = append(w.queue, queueItem{v: x, depth: item.depth + 1})
		})
	}

	return nil
}

// Components returns the connected components of g, each sorted, ordered by
// their smallest vertex. opts apply to every walk, so a neighbor filter
// splits components along the arcs it rejects.
//
// Errors: as BFS.
//
// Complexity: O(V + E).
func Components(g *core.Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[int]bool, g.NodeCount())
	var comps [][]int
	for _, s := range g.Nodes() {
		if seen[s] {
			continue
		}
		res, err := BFS(g, s, opts...)
		if err != nil {
			return comps, err
		}
		comp := slices.Clone(res.Order)
		for _, v := range comp {
			seen[v] = true
		}
		slices.Sort(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// errReached stops Connected once the last wanted vertex is visited.
var errReached = errors.New("bfs: every vertex reached")

// Connected reports whether every vertex of vs lies in one component of g.
// An empty set is connected; an absent vertex is not. The walk stops as
// soon as the last vertex of vs is visited.
func Connected(g *core.Graph, vs []int) bool {
	if len(vs) == 0 {
		return true
	}
	want := make(map[int]bool, len(vs))
	for _, v := range vs {
		want[v] = true
	}
	left := len(want)
	_, err := BFS(g, vs[0], WithOnVisit(func(v, _ int) error {
		if want[v] {
			if left--; left == 0 {
				return errReached
			}
		}
		return nil
	}))

	return errors.Is(err, errReached)
}
