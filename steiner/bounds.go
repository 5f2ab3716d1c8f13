package steiner

import (
	"context"
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/dualascent"
	"github.com/katalvlaran/lvsteiner/prim_kruskal"
)

// inf marks an unreachable vertex or an unknown bound.
const inf = int64(math.MaxInt64)

// add sums two non-negative costs, saturating at inf.
func add(a, b int64) int64 {
	if a >= inf-b {
		return inf
	}

	return a + b
}

// daBound is one cached dual-ascent run for a complement subset.
type daBound struct {
	lb   int64
	dist []int64 // residual distance from the root, by vertex id
}

// bounds evaluates and caches every lower and upper bound of one solve.
// Terminal index i < width is bit i; index width is the root.
type bounds struct {
	ctx   context.Context
	g     *core.Graph
	terms []int
	rows  [][]int64 // rows[i][v] = d(terms[i], v)
	width int
	full  uint64

	mst    map[uint64]int64 // complement MST weight by subset
	da     map[uint64]daBound
	subset map[uint64]int64
}

func newBounds(ctx context.Context, g *core.Graph, others []int, root int) (*bounds, error) {
	b := &bounds{
		ctx:    ctx,
		g:      g,
		terms:  append(append([]int(nil), others...), root),
		width:  len(others),
		full:   fullMask(len(others)),
		mst:    make(map[uint64]int64),
		da:     make(map[uint64]daBound),
		subset: make(map[uint64]int64),
	}
	b.rows = make([][]int64, len(b.terms))
	for i, t := range b.terms {
		row, err := g.Lengths(t)
		if err != nil {
			return nil, err
		}
		b.rows[i] = row
	}

	return b, nil
}

// fullMask returns the subset id with the low width bits set.
func fullMask(width int) uint64 {
	if width >= 64 {
		return math.MaxUint64
	}

	return 1<<width - 1
}

// dist returns d(terms[i], v).
func (b *bounds) dist(i, v int) int64 {
	row := b.rows[i]
	if v < 0 || v >= len(row) {
		return inf
	}

	return row[v]
}

// members returns the terminal indices in set; with root, the root index too.
func (b *bounds) members(set uint64, root bool) []int {
	idx := make([]int, 0, bits.OnesCount64(set)+1)
	for rest := set; rest != 0; rest &= rest - 1 {
		idx = append(idx, bits.TrailingZeros64(rest))
	}
	if root {
		idx = append(idx, b.width)
	}

	return idx
}

// metricMST returns the weight of a minimum spanning tree over the given
// terminal indices in the shortest-path metric.
func (b *bounds) metricMST(idx []int) (int64, error) {
	if len(idx) < 2 {
		return 0, nil
	}
	dist := make([][]int64, len(idx))
	for x := range dist {
		dist[x] = make([]int64, len(idx))
	}
	for x, i := range idx {
		for y := x + 1; y < len(idx); y++ {
			d := b.dist(i, b.terms[idx[y]])
			dist[x][y], dist[y][x] = d, d
		}
	}
	w, err := prim_kruskal.PrimWeight(dist)
	if err != nil {
		return 0, fmt.Errorf("%w: terminal metric: %v", ErrInvariant, err)
	}

	return w, nil
}

// compMST returns the cached MST weight of the terminals outside set,
// root included.
func (b *bounds) compMST(comp uint64) (int64, error) {
	if w, ok := b.mst[comp]; ok {
		return w, nil
	}
	w, err := b.metricMST(b.members(comp, true))
	if err != nil {
		return 0, err
	}
	b.mst[comp] = w

	return w, nil
}

// oneTree is the 1-tree bound ½(MST(R) + d(v,t) + d(v,t')) where R is the
// complement of set with the root, and t, t' are the two terminals of R
// nearest to v. With R = {root} it is d(v, root).
//
// It never drops by more than d(u,v) along an edge u-v, and merging a label
// (v, J) into (v, I) never lowers cost + bound, so it can order the queue.
func (b *bounds) oneTree(v int, set uint64) (int64, error) {
	comp := ^set & b.full
	if comp == 0 {
		return b.dist(b.width, v), nil
	}
	w, err := b.compMST(comp)
	if err != nil {
		return 0, err
	}
	d1, d2 := inf, inf
	for _, i := range b.members(comp, true) {
		switch d := b.dist(i, v); {
		case d < d1:
			d1, d2 = d, d1
		case d < d2:
			d2 = d
		}
	}
	if w == inf || d2 == inf {
		return inf, nil
	}

	return add(w, add(d1, d2)) / 2, nil
}

// mstBound is floor(MST(complement of set ∪ {v}) / 2). The complement
// always holds the root. It is a valid lower bound but not monotone along
// edges, so it only prunes.
func (b *bounds) mstBound(v int, set uint64) (int64, error) {
	comp := ^set & b.full
	if comp == 0 {
		return b.dist(b.width, v) / 2, nil
	}
	idx := b.members(comp, true)
	n := len(idx) + 1
	dist := make([][]int64, n)
	for x := range dist {
		dist[x] = make([]int64, n)
	}
	for x, i := range idx {
		for y, j := range idx[x+1:] {
			d := b.dist(i, b.terms[j])
			dist[x][x+1+y], dist[x+1+y][x] = d, d
		}
		d := b.dist(i, v)
		dist[x][n-1], dist[n-1][x] = d, d
	}
	w, err := prim_kruskal.PrimWeight(dist)
	if err != nil {
		return 0, fmt.Errorf("%w: bound at %d: %v", ErrInvariant, v, err)
	}

	return w / 2, nil
}

// daBoundAt is LB + d̄(root, v) for a dual-ascent run rooted at the root
// over the terminals outside set.
func (b *bounds) daBoundAt(v int, set uint64) (int64, error) {
	comp := ^set & b.full
	run, ok := b.da[comp]
	if !ok {
		idx := b.members(comp, false)
		terms := make([]int, len(idx))
		for k, i := range idx {
			terms[k] = b.terms[i]
		}
		root := b.terms[b.width]
		res, err := dualascent.Compute(b.g, root, terms, dualascent.WithContext(b.ctx))
		if err != nil {
			return 0, fmt.Errorf("steiner: dual ascent for %b: %w", comp, err)
		}
		dist, err := res.Residual.DistancesFrom(root)
		if err != nil {
			return 0, err
		}
		run = daBound{lb: res.LowerBound, dist: dist}
		b.da[comp] = run
	}
	if v >= len(run.dist) {
		return inf, nil
	}

	return add(run.lb, run.dist[v]), nil
}

// subsetBound is the cheapest known tree joining the terminals of set to one
// terminal outside it, starting from MST(set) + the shortest link out.
func (b *bounds) subsetBound(set uint64) (int64, error) {
	if ub, ok := b.subset[set]; ok {
		return ub, nil
	}
	in := b.members(set, false)
	w, err := b.metricMST(in)
	if err != nil {
		return 0, err
	}
	link := inf
	for _, j := range b.members(^set&b.full, true) {
		for _, i := range in {
			link = min(link, b.dist(i, b.terms[j]))
		}
	}
	ub := add(w, link)
	b.subset[set] = ub

	return ub, nil
}

// tighten lowers the subset bound of set with a settled label at v: its
// tree plus a shortest path from v to the nearest outside terminal.
func (b *bounds) tighten(v int, set uint64, cost int64) error {
	ub, err := b.subsetBound(set)
	if err != nil {
		return err
	}
	link := inf
	for _, j := range b.members(^set&b.full, true) {
		link = min(link, b.dist(j, v))
	}
	if c := add(cost, link); c < ub {
		b.subset[set] = c
	}

	return nil
}
