package reduce

import (
	"context"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/dijkstra"
)

// LongEdge removes edges that no minimal tree needs:
//
//   - u–v is longer than the shortest u–v path;
//   - u and v are terminals and u–v is longer than their bottleneck
//     Steiner distance, so a path of shorter terminal-to-terminal hops
//     joins them.
//
// Distances are re-read after every removal, so each test runs on the
// current graph.
type LongEdge struct{}

// Name implements Rule.
func (*LongEdge) Name() string { return "long-edge" }

// Reduce implements Rule. It counts removed edges.
func (*LongEdge) Reduce(ctx context.Context, g *core.Graph, _ int, _ bool) (int, error) {
	removed := 0
	for _, e := range g.Edges() {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if !g.HasEdge(e.U, e.V) {
			continue
		}
		long, err := isLong(g, e)
		if err != nil {
			return removed, err
		}
		if !long {
			continue
		}
		if err = g.RemoveEdge(e.U, e.V); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}

// isLong runs both tests on e. The path search stops at distance
// e.Weight and skips edges at least that heavy, since neither can lie on
// a strictly shorter path.
func isLong(g *core.Graph, e core.Edge) (bool, error) {
	if e.Weight > 0 {
		res, err := dijkstra.Dijkstra(g,
			dijkstra.Source(e.U),
			dijkstra.WithMaxDistance(e.Weight),
			dijkstra.WithInfEdgeThreshold(e.Weight))
		if err != nil {
			return false, err
		}
		if res.Dist[e.V] < e.Weight {
			return true, nil
		}
	}
	if !g.IsTerminal(e.U) || !g.IsTerminal(e.V) {
		return false, nil
	}
	s, err := g.SteinerLength(e.U, e.V)
	if err != nil {
		return false, err
	}

	return e.Weight > s, nil
}

// PostProcess implements Rule; removed edges are never needed.
func (*LongEdge) PostProcess(t core.Tree) (core.Tree, bool, error) { return t, false, nil }
