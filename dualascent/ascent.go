package dualascent

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvsteiner/pq"
)

// Compute runs dual ascent on g for the given root and terminals.
// Terminals equal to root and duplicates are ignored.
//
// Errors: ErrNilGraph, ErrVertexNotFound, ErrDisconnected, or the context error.
func Compute(g Graph, root int, terminals []int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasNode(root) {
		return nil, fmt.Errorf("%w: root %d", ErrVertexNotFound, root)
	}
	terms := make([]int, 0, len(terminals))
	for _, t := range terminals {
		if !g.HasNode(t) {
			return nil, fmt.Errorf("%w: terminal %d", ErrVertexNotFound, t)
		}
		if t != root {
			terms = append(terms, t)
		}
	}
	slices.Sort(terms)
	terms = slices.Compact(terms)

	a := &ascent{
		d:    NewDigraph(g),
		root: root,
		open: make(map[int]int, len(terms)),
	}
	a.mark = make([]uint32, len(a.d.present))
	if err := a.run(o, terms); err != nil {
		return nil, err
	}

	return &Result{LowerBound: a.bound, Residual: a.d}, nil
}

// ascent holds the mutable state of one run.
type ascent struct {
	d     *Digraph
	root  int
	bound int64
	open  map[int]int // open terminal → index in the sorted terminal list
	mark  []uint32    // cut membership, valid where mark[v] == epoch
	epoch uint32
	cut   []int
}

func (a *ascent) run(o Options, terms []int) error {
	queue, err := pq.NewDaryHeap[int](4)
	if err != nil {
		return err
	}
	n := int64(len(terms))
	for i, t := range terms {
		a.open[t] = i
		_ = queue.InsertOrDecrease(n+int64(i), t)
	}

	for queue.Len() > 0 {
		if err = o.Ctx.Err(); err != nil {
			return err
		}
		t, prio, _ := queue.ExtractMin()
		a.collectCut(t)
		if a.mark[a.root] == a.epoch || a.containsOtherOpen(t) {
			delete(a.open, t)
			continue
		}
		if key := int64(len(a.cut))*n + int64(a.open[t]); key > prio {
			_ = queue.InsertOrDecrease(key, t)
			continue
		}

		delta := int64(math.MaxInt64)
		for _, v := range a.cut {
			for _, arc := range a.d.in[v] {
				if a.mark[a.d.src[arc]] != a.epoch {
					delta = min(delta, a.d.res[arc])
				}
			}
		}
		if delta == math.MaxInt64 {
			return fmt.Errorf("%w: terminal %d", ErrDisconnected, t)
		}
		for _, v := range a.cut {
			for _, arc := range a.d.in[v] {
				if a.mark[a.d.src[arc]] != a.epoch {
					a.d.res[arc] -= delta
				}
			}
		}
		a.bound += delta
		_ = queue.InsertOrDecrease(int64(len(a.cut))*n+int64(a.open[t]), t)
	}

	return nil
}

// collectCut marks every vertex reaching t through zero-residual arcs.
func (a *ascent) collectCut(t int) {
	a.epoch++
	a.cut = a.cut[:0]
	a.cut = append(a.cut, t)
	a.mark[t] = a.epoch
	for head := 0; head < len(a.cut); head++ {
		for _, arc := range a.d.in[a.cut[head]] {
			u := a.d.src[arc]
			if a.d.res[arc] == 0 && a.mark[u] != a.epoch {
				a.mark[u] = a.epoch
				a.cut = append(a.cut, u)
			}
		}
	}
}

func (a *ascent) containsOtherOpen(t int) bool {
	for _, v := range a.cut {
		if _, ok := a.open[v]; ok && v != t {
			return true
		}
	}

	return false
}
