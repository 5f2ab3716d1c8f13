package dualascent

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/dijkstra"
)

// Digraph is the bidirected copy of an undirected graph with a residual cost
// per arc. It implements dijkstra.Graph over its out-arcs, weighted by
// residual cost.
type Digraph struct {
	present []bool
	src     []int
	dst     []int
	cost    []int64
	res     []int64
	out     [][]int
	in      [][]int
}

// NewDigraph copies g into a digraph with both arc directions; residuals
// start at the edge weights.
//
// Complexity: O(V + E).
func NewDigraph(g Graph) *Digraph {
	n := g.MaxID() + 1
	d := &Digraph{
		present: make([]bool, n),
		out:     make([][]int, n),
		in:      make([][]int, n),
	}
	for v := 0; v < n; v++ {
		if !g.HasNode(v) {
			continue
		}
		d.present[v] = true
		g.ForEachNeighbor(v, func(w int, weight int64) {
			a := len(d.src)
			d.src = append(d.src, v)
			d.dst = append(d.dst, w)
			d.cost = append(d.cost, weight)
			d.res = append(d.res, weight)
			d.out[v] = append(d.out[v], a)
			d.in[w] = append(d.in[w], a)
		})
	}

	return d
}

// MaxID returns the largest vertex id.
func (d *Digraph) MaxID() int { return len(d.present) - 1 }

// HasNode reports whether v is a vertex.
func (d *Digraph) HasNode(v int) bool { return v >= 0 && v < len(d.present) && d.present[v] }

// ForEachNeighbor calls fn for every arc leaving v with its residual cost.
func (d *Digraph) ForEachNeighbor(v int, fn func(w int, residual int64)) {
	if v < 0 || v >= len(d.out) {
		return
	}
	for _, a := range d.out[v] {
		fn(d.dst[a], d.res[a])
	}
}

// ArcCount returns the number of arcs (twice the undirected edge count).
func (d *Digraph) ArcCount() int { return len(d.src) }

// Residual returns the reduced cost of the arc u→v.
func (d *Digraph) Residual(u, v int) (int64, bool) {
	if u < 0 || u >= len(d.out) {
		return 0, false
	}
	for _, a := range d.out[u] {
		if d.dst[a] == v {
			return d.res[a], true
		}
	}

	return 0, false
}

// reversed walks in-arcs, so Dijkstra on it measures distances *to* its sources.
type reversed struct{ *Digraph }

func (r reversed) ForEachNeighbor(v int, fn func(w int, residual int64)) {
	if v < 0 || v >= len(r.in) {
		return
	}
	for _, a := range r.in[v] {
		fn(r.src[a], r.res[a])
	}
}

// DistancesFrom returns residual shortest-path distances from root,
// indexed by vertex id (dijkstra.Inf when unreachable).
func (d *Digraph) DistancesFrom(root int) ([]int64, error) {
	res, err := dijkstra.Dijkstra(d, dijkstra.Source(root))
	if err != nil {
		return nil, fmt.Errorf("dualascent: distances from %d: %w", root, err)
	}

	return res.Dist, nil
}

// DistancesToTerminals returns, per vertex, the residual distance to the
// nearest of the given terminals.
func (d *Digraph) DistancesToTerminals(terminals []int) ([]int64, error) {
	res, err := dijkstra.Dijkstra(reversed{d}, dijkstra.WithSources(terminals...))
	if err != nil {
		return nil, fmt.Errorf("dualascent: distances to terminals: %w", err)
	}

	return res.Dist, nil
}
