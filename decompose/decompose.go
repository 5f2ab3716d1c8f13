package decompose

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsteiner/bfs"
	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/dfs"
)

// key is the vertex pair of u–v, smaller id first.
func key(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}

// Split cuts g at its bridges. The parts are ordered by their smallest
// vertex and never share a vertex; g is not modified.
//
// Errors: ErrNilGraph, ErrNoTerminals, ErrDisconnected, or the error of ctx.
func Split(ctx context.Context, g *core.Graph) (Plan, error) {
	var plan Plan
	if g == nil {
		return plan, ErrNilGraph
	}
	terms := g.Terminals()
	if len(terms) == 0 {
		return plan, ErrNoTerminals
	}
	if !bfs.Connected(g, terms) {
		return plan, ErrDisconnected
	}
	bridges, err := dfs.Bridges(ctx, g)
	if err != nil {
		return plan, err
	}
	plan.Bridges = len(bridges)

	cut := make(map[[2]int]bool, len(bridges))
	for _, b := range bridges {
		cut[key(b.U, b.V)] = true
	}
	comps, err := bfs.Components(g,
		bfs.WithContext(ctx),
		bfs.WithFilterNeighbor(func(u, v int) bool { return !cut[key(u, v)] }))
	if err != nil {
		return plan, err
	}
	of := make(map[int]int, g.NodeCount())
	for c, comp := range comps {
		for _, v := range comp {
			of[v] = c
		}
	}
	count := make([]int, len(comps))
	for _, t := range terms {
		count[of[t]]++
	}

	// The bridge forest has one vertex per component. Rooted at a
	// terminal's component, a bridge is required exactly when it lies on
	// the path from the root to some other component holding a terminal.
	forest := core.NewGraph()
	across := make(map[[2]int]int, len(bridges))
	for c := range comps {
		_ = forest.AddNode(c)
	}
	for i, b := range bridges {
		cu, cv := of[b.U], of[b.V]
		if err := forest.AddEdge(cu, cv, b.Weight); err != nil {
			return plan, fmt.Errorf("decompose: bridge forest: %w", err)
		}
		across[key(cu, cv)] = i
	}
	walk, err := bfs.BFS(forest, of[terms[0]], bfs.WithContext(ctx))
	if err != nil {
		return plan, err
	}
	required := make([]bool, len(bridges))
	for c := range comps {
		if count[c] == 0 {
			continue
		}
		path := walk.PathTo(c)
		for k := 1; k < len(path); k++ {
			required[across[key(path[k-1], path[k])]] = true
		}
	}

	promote := make(map[int][]int)
	for i, b := range bridges {
		if required[i] {
			plan.Required = append(plan.Required, b)
			promote[of[b.U]] = append(promote[of[b.U]], b.U)
			promote[of[b.V]] = append(promote[of[b.V]], b.V)
		}
	}
	for c, comp := range comps {
		if count[c] == 0 && len(promote[c]) == 0 {
			plan.Dropped += len(comp)
			continue
		}
		part := g.Subgraph(comp, nil)
		for _, v := range promote[c] {
			if err := part.AddTerminal(v); err != nil {
				return plan, fmt.Errorf("decompose: promote %d: %w", v, err)
			}
		}
		plan.Parts = append(plan.Parts, part)
	}

	return plan, nil
}

// Solve splits g, solves the parts concurrently with solve and joins the
// part trees with the required bridges. Parts with a single terminal are
// answered without calling solve. The first part error cancels the others.
//
// Errors: ErrNilSolver, any Split error, or a part error wrapped with its
// index.
func Solve(ctx context.Context, g *core.Graph, solve SolveFunc, opts ...Option) (Result, error) {
	res := Result{Tree: core.Tree{Node: -1}}
	if solve == nil {
		return res, ErrNilSolver
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.MaxConcurrency = max(o.MaxConcurrency, 1)

	ctx, span := startSolveSpan(ctx, g)
	defer span.End()

	start := time.Now()
	plan, err := Split(ctx, g)
	res.Plan = plan
	if err != nil {
		setSolveSpanResult(span, res, err)
		return res, err
	}
	o.Logger.Debug("decompose: split",
		"parts", len(plan.Parts),
		"bridges", plan.Bridges,
		"required", len(plan.Required),
		"dropped", plan.Dropped)

	trees := make([]core.Tree, len(plan.Parts))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.MaxConcurrency)
	for i, part := range plan.Parts {
		eg.Go(func() error {
			if terms := part.Terminals(); len(terms) == 1 {
				trees[i] = core.Tree{Node: terms[0]}
				return nil
			}
			partCtx, partSpan := startPartSpan(egCtx, i, part)
			defer partSpan.End()
			began := time.Now()
			t, err := solve(partCtx, part)
			if err != nil {
				partSpan.RecordError(err)
				return fmt.Errorf("decompose: part %d: %w", i, err)
			}
			trees[i] = t
			o.Logger.Debug("decompose: part solved",
				"part", i,
				"nodes", part.NodeCount(),
				"terminals", part.TerminalCount(),
				"cost", t.Cost,
				"elapsed", time.Since(began))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		setSolveSpanResult(span, res, err)
		return res, err
	}

	res.Tree, err = join(g, trees, plan.Required)
	setSolveSpanResult(span, res, err)
	if err != nil {
		return res, err
	}
	o.Logger.Debug("decompose: solved",
		"cost", res.Tree.Cost,
		"edges", len(res.Tree.Edges),
		"elapsed", time.Since(start))

	return res, nil
}

// join unions the part trees with the required bridges.
func join(g *core.Graph, trees []core.Tree, required []core.Edge) (core.Tree, error) {
	edges := slices.Clone(required)
	for _, t := range trees {
		edges = append(edges, t.Edges...)
	}
	if len(edges) == 0 {
		if len(trees) == 1 && trees[0].Node >= 0 {
			return core.Tree{Node: trees[0].Node}, nil
		}
		return core.Tree{Node: -1}, fmt.Errorf("decompose: join: %d edgeless parts", len(trees))
	}
	tree, err := core.SpanningTree(edges, g.IsTerminal)
	if err != nil {
		return core.Tree{Node: -1}, fmt.Errorf("decompose: join: %w", err)
	}

	return tree, nil
}
