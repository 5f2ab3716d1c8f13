package reduce

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/dualascent"
)

// DualAscent removes vertices and edges whose reduced-cost bound exceeds the
// approximation cost UB. With LB the dual-ascent bound rooted at the
// smallest terminal and d̄ the residual distances:
//
//   - non-terminal v goes when LB + d̄(root, v) + d̄(v, terminals) > UB;
//   - edge u–v goes when both orientations give
//     LB + d̄(root, u) + c̄(u, v) + d̄(v, terminals) > UB.
//
// Any tree through such an element costs more than UB, and UB is the cost
// of a real tree, so every optimal tree survives. The ascent is expensive:
// the rule only runs on a pass where the earlier rules changed nothing, or
// on the last pass.
type DualAscent struct{}

// Name implements Rule.
func (*DualAscent) Name() string { return "dual-ascent" }

// Reduce implements Rule. It counts removed vertices and edges.
func (*DualAscent) Reduce(ctx context.Context, g *core.Graph, changes int, lastPass bool) (int, error) {
	if changes > 0 && !lastPass {
		return 0, nil
	}
	terms := g.Terminals()
	if len(terms) < 2 {
		return 0, nil
	}
	approx, err := g.Approximation()
	if errors.Is(err, core.ErrDisconnected) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reduce: upper bound: %w", err)
	}
	root := terms[0]
	res, err := dualascent.Compute(g, root, terms, dualascent.WithContext(ctx))
	if err != nil {
		return 0, err
	}
	from, err := res.Residual.DistancesFrom(root)
	if err != nil {
		return 0, err
	}
	to, err := res.Residual.DistancesToTerminals(terms[1:])
	if err != nil {
		return 0, err
	}
	ub, lb := approx.Cost, res.LowerBound
	at := func(dist []int64, v int) int64 {
		if v >= len(dist) {
			return core.Inf
		}
		return dist[v]
	}

	removed := 0
	for _, v := range g.Nodes() {
		if err = ctx.Err(); err != nil {
			return removed, err
		}
		if g.IsTerminal(v) {
			continue
		}
		if sum(lb, at(from, v), at(to, v)) > ub {
			if err = g.RemoveNode(v); err != nil {
				return removed, err
			}
			removed++
		}
	}
	for _, e := range g.Edges() {
		if err = ctx.Err(); err != nil {
			return removed, err
		}
		best := int64(core.Inf)
		for _, arc := range [2][2]int{{e.U, e.V}, {e.V, e.U}} {
			c, ok := res.Residual.Residual(arc[0], arc[1])
			if !ok {
				continue
			}
			best = min(best, sum(lb, at(from, arc[0]), c, at(to, arc[1])))
		}
		if best > ub && g.HasEdge(e.U, e.V) {
			if err = g.RemoveEdge(e.U, e.V); err != nil {
				return removed, err
			}
			removed++
		}
	}

	return removed, nil
}

// sum adds non-negative costs, saturating at core.Inf.
func sum(xs ...int64) int64 {
	var s int64
	for _, x := range xs {
		if x >= core.Inf-s {
			return core.Inf
		}
		s += x
	}

	return s
}

// PostProcess implements Rule; removed elements are never needed.
func (*DualAscent) PostProcess(t core.Tree) (core.Tree, bool, error) { return t, false, nil }
