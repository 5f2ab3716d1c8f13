package reduce

import (
	"context"

	"github.com/katalvlaran/lvsteiner/core"
)

// TerminalLeaf contracts an edge t–u of a terminal t into u when every
// optimal tree can be assumed to use it: t has no other edge, or t–u is the
// cheapest edge of t and u is a terminal too.
type TerminalLeaf struct {
	records []contraction
}

// contraction is the undo record of one contracted edge. restored is set
// once the contracted edge is back in a tree.
type contraction struct {
	pairs    []core.EdgePair
	restored bool
}

// Name implements Rule.
func (*TerminalLeaf) Name() string { return "terminal-leaf" }

// Reduce implements Rule. It counts contracted edges.
func (r *TerminalLeaf) Reduce(ctx context.Context, g *core.Graph, _ int, _ bool) (int, error) {
	contracted := 0
	for progress := true; progress; {
		progress = false
		for _, t := range g.Terminals() {
			if err := ctx.Err(); err != nil {
				return contracted, err
			}
			if g.TerminalCount() < 2 {
				return contracted, nil
			}
			if !g.IsTerminal(t) {
				continue
			}
			u, ok := target(g, t)
			if !ok {
				continue
			}
			pairs, err := g.ContractEdge(u, t)
			if err != nil {
				return contracted, err
			}
			r.records = append(r.records, contraction{pairs: pairs})
			contracted++
			progress = true
		}
	}

	return contracted, nil
}

// target picks the neighbor t is contracted into, if any.
func target(g *core.Graph, t int) (int, bool) {
	nbrs := g.Neighbors(t)
	switch len(nbrs) {
	case 0:
		return -1, false
	case 1:
		return nbrs[0], true
	}
	best, bw := -1, int64(0)
	for _, x := range nbrs {
		if w, _ := g.Weight(t, x); best == -1 || w < bw {
			best, bw = x, w
		}
	}

	return best, g.IsTerminal(best)
}

// PostProcess implements Rule: latest contraction first, every edge moved
// onto the surviving vertex is moved back to the vertex it came from and the
// contracted edge is put back. A contracted edge is put back at most once,
// so later calls only move edges that other rules have since exposed.
func (r *TerminalLeaf) PostProcess(t core.Tree) (core.Tree, bool, error) {
	changed := false
	for i := len(r.records) - 1; i >= 0; i-- {
		rec := &r.records[i]
		pairs := rec.pairs
		for _, p := range pairs[1:] {
			if p.New == nil || p.Old.Weight != p.New.Weight {
				continue
			}
			if at := find(t.Edges, *p.New); at >= 0 {
				t = replace(t, at, p.Old)
				changed = true
			}
		}
		if rec.restored {
			continue
		}
		fixed := pairs[0].Old
		if !touches(t, fixed) {
			continue
		}
		rec.restored = true
		if find(t.Edges, fixed) < 0 {
			t.Edges = append(t.Edges, fixed)
			t.Cost += fixed.Weight
			t.Node = -1
			changed = true
		}
	}

	return t, changed, nil
}

func (r *TerminalLeaf) rewind() {
	for i := range r.records {
		r.records[i].restored = false
	}
}

// touches reports whether t contains an endpoint of e.
func touches(t core.Tree, e core.Edge) bool {
	if len(t.Edges) == 0 {
		return t.Node == e.U || t.Node == e.V
	}
	for _, x := range t.Edges {
		if x.U == e.U || x.U == e.V || x.V == e.U || x.V == e.V {
			return true
		}
	}

	return false
}
