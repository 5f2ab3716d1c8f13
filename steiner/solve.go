package steiner

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/lvsteiner/bfs"
	"github.com/katalvlaran/lvsteiner/core"
)

// Solve returns a minimum-cost Steiner tree for the terminals of g.
// The graph is read, not modified, but its derived views are filled.
//
// A single terminal yields the edgeless tree at that terminal.
//
// Errors: ErrNilGraph, ErrNoTerminals, ErrBadRoot, ErrTooManyTerminals,
// ErrDisconnected, ErrInvariant.
func Solve(ctx context.Context, g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{Tree: core.Tree{Node: -1}}, ErrNilGraph
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctx, span := startSolveSpan(ctx, g)
	defer span.End()

	start := time.Now()
	res, err := solve(ctx, g, o)
	res.Stats.Elapsed = time.Since(start)
	recordSolveMetrics(ctx, res.Stats.Elapsed, res.Stats, err == nil)
	setSolveSpanResult(span, res, err)
	if err != nil {
		o.Logger.Debug("steiner: solve failed", "error", err)
		return res, err
	}
	o.Logger.Debug("steiner: solved",
		"cost", res.Tree.Cost,
		"upper_bound", res.Stats.UpperBound,
		"labels", res.Stats.Labels,
		"settled", res.Stats.Settled,
		"merges", res.Stats.Merges,
		"pruned_bound", res.Stats.PrunedBound,
		"pruned_subset", res.Stats.PrunedSubset,
		"elapsed", res.Stats.Elapsed)

	return res, nil
}

func solve(ctx context.Context, g *core.Graph, o Options) (Result, error) {
	res := Result{Tree: core.Tree{Node: -1}}
	terms := g.Terminals()
	res.Stats.Terminals = len(terms)
	if len(terms) == 0 {
		return res, ErrNoTerminals
	}
	root := o.Root
	if root < 0 {
		root = terms[0]
	} else if !g.IsTerminal(root) {
		return res, fmt.Errorf("%w: %d", ErrBadRoot, root)
	}
	if len(terms) > MaxTerminals {
		return res, fmt.Errorf("%w: %d > %d", ErrTooManyTerminals, len(terms), MaxTerminals)
	}
	if len(terms) == 1 {
		res.Tree.Node = root
		return res, nil
	}
	if !bfs.Connected(g, terms) {
		return res, ErrDisconnected
	}

	approx, err := g.Approximation()
	if err != nil {
		return res, fmt.Errorf("steiner: upper bound: %w", err)
	}
	res.Stats.UpperBound = approx.Cost

	others := make([]int, 0, len(terms)-1)
	for _, t := range terms {
		if t != root {
			others = append(others, t)
		}
	}
	b, err := newBounds(ctx, g, others, root)
	if err != nil {
		return res, err
	}
	o.Logger.Debug("steiner: search started",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"terminals", len(terms),
		"root", root,
		"upper_bound", approx.Cost)

	s, err := newSearch(g, o, b, approx.Cost, &res.Stats)
	if err != nil {
		return res, err
	}
	goal, err := s.run()
	if err != nil {
		return res, err
	}
	edges, err := s.rebuild(goal)
	if err != nil {
		return res, err
	}
	tree, err := core.SpanningTree(edges, g.IsTerminal)
	if err != nil {
		return res, fmt.Errorf("%w: rebuilt edges: %v", ErrInvariant, err)
	}
	if cost := s.labels[goal].cost; tree.Cost != cost {
		return res, fmt.Errorf("%w: rebuilt tree costs %d, label %d", ErrInvariant, tree.Cost, cost)
	}
	res.Tree = tree

	return res, nil
}
