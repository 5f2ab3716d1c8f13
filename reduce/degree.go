package reduce

import (
	"context"

	"github.com/katalvlaran/lvsteiner/core"
)

// DegreeOne removes non-terminal vertices of degree zero or one; no
// minimal tree ends in a non-terminal leaf.
type DegreeOne struct{}

// Name implements Rule.
func (*DegreeOne) Name() string { return "degree-one" }

// Reduce implements Rule. It counts removed vertices.
func (*DegreeOne) Reduce(ctx context.Context, g *core.Graph, _ int, _ bool) (int, error) {
	removed := 0
	work := g.Nodes()
	for len(work) > 0 {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		v := work[len(work)-1]
		work = work[:len(work)-1]
		if !g.HasNode(v) || g.IsTerminal(v) || g.Degree(v) > 1 {
			continue
		}
		nbrs := g.Neighbors(v)
		if err := g.RemoveNode(v); err != nil {
			return removed, err
		}
		removed++
		work = append(work, nbrs...)
	}

	return removed, nil
}

// PostProcess implements Rule; removed vertices are never needed.
func (*DegreeOne) PostProcess(t core.Tree) (core.Tree, bool, error) { return t, false, nil }

// bypass records a vertex v replaced by the edge a–b.
type bypass struct {
	a, b, v int
	wa, wb  int64
	done    bool
}

// DegreeTwo replaces a non-terminal vertex v with exactly two neighbors a
// and b by the edge a–b of weight w(a,v) + w(v,b). When a cheaper a–b
// already exists v is simply dropped: any tree through a–v–b can use it.
type DegreeTwo struct {
	records []bypass
}

// Name implements Rule.
func (*DegreeTwo) Name() string { return "degree-two" }

// Reduce implements Rule. It counts removed vertices.
func (r *DegreeTwo) Reduce(ctx context.Context, g *core.Graph, _ int, _ bool) (int, error) {
	removed := 0
	work := g.Nodes()
	for len(work) > 0 {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		v := work[len(work)-1]
		work = work[:len(work)-1]
		if !g.HasNode(v) || g.IsTerminal(v) || g.Degree(v) != 2 {
			continue
		}
		nbrs := g.Neighbors(v)
		a, b := nbrs[0], nbrs[1]
		wa, _ := g.Weight(a, v)
		wb, _ := g.Weight(v, b)
		old, had := g.Weight(a, b)
		if err := g.RemoveNode(v); err != nil {
			return removed, err
		}
		removed++
		if !had || wa+wb < old {
			if err := g.AddEdge(a, b, wa+wb); err != nil {
				return removed, err
			}
			r.records = append(r.records, bypass{a: a, b: b, v: v, wa: wa, wb: wb})
		}
		work = append(work, a, b)
	}

	return removed, nil
}

// PostProcess implements Rule: a bypass edge in the tree becomes the two
// edges through the removed vertex again, latest bypass first. Each bypass
// is expanded at most once.
func (r *DegreeTwo) PostProcess(t core.Tree) (core.Tree, bool, error) {
	changed := false
	for i := len(r.records) - 1; i >= 0; i-- {
		rec := &r.records[i]
		if rec.done {
			continue
		}
		at := find(t.Edges, core.Edge{U: rec.a, V: rec.b, Weight: rec.wa + rec.wb})
		if at < 0 {
			continue
		}
		rec.done = true
		t = replace(t, at,
			core.Edge{U: rec.a, V: rec.v, Weight: rec.wa},
			core.Edge{U: rec.v, V: rec.b, Weight: rec.wb})
		changed = true
	}

	return t, changed, nil
}

func (r *DegreeTwo) rewind() {
	for i := range r.records {
		r.records[i].done = false
	}
}
