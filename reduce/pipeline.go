package reduce

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvsteiner/core"
)

// Run reduces g in place. The report is filled even when an error is
// returned.
//
// Errors: ErrNilGraph, the first rule error (wrapped with the rule name),
// or the error of ctx when ctx itself ends.
func (p *Pipeline) Run(ctx context.Context, g *core.Graph) (Report, error) {
	var rep Report
	if g == nil {
		return rep, ErrNilGraph
	}
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ctx, span := startRunSpan(ctx, g)
	defer span.End()

	p.original = g.Clone()
	p.changes = 0
	rep.NodesBefore, rep.EdgesBefore = g.NodeCount(), g.EdgeCount()
	logger.Info("reduction started",
		slog.Int("nodes", rep.NodesBefore),
		slog.Int("edges", rep.EdgesBefore),
		slog.Int("terminals", g.TerminalCount()),
		slog.Int("rules", len(p.Rules)))

	defer func() {
		rep.NodesAfter, rep.EdgesAfter = g.NodeCount(), g.EdgeCount()
		setRunSpanResult(span, rep)
	}()

	for pass := 0; pass < p.MaxPasses; pass++ {
		size := g.NodeCount() + g.EdgeCount()
		last := pass == p.MaxPasses-1
		changes := 0
		rep.Passes++
		for _, rule := range p.Rules {
			run, err := p.apply(ctx, rule, g, pass, changes, last)
			rep.Runs = append(rep.Runs, run)
			changes += run.Count
			if err != nil {
				rep.Eliminated += changes
				p.changes += changes
				return rep, err
			}
			if run.TimedOut {
				logger.Warn("reduction rule timed out",
					slog.String("rule", run.Rule),
					slog.Int("pass", pass),
					slog.Int("partial", run.Count),
					slog.Duration("budget", p.RuleTimeout))
			}
		}
		rep.Eliminated += changes
		p.changes += changes
		logger.Debug("reduction pass done",
			slog.Int("pass", pass),
			slog.Int("eliminated", changes),
			slog.Int("nodes", g.NodeCount()),
			slog.Int("edges", g.EdgeCount()))
		if changes == 0 || float64(changes) <= p.Threshold*float64(size) {
			break
		}
	}

	logger.Info("reduction finished",
		slog.Int("passes", rep.Passes),
		slog.Int("eliminated", rep.Eliminated),
		slog.Int("nodes", g.NodeCount()),
		slog.Int("edges", g.EdgeCount()))

	return rep, nil
}

// apply runs one rule under its own deadline.
func (p *Pipeline) apply(ctx context.Context, rule Rule, g *core.Graph, pass, changes int, last bool) (RuleRun, error) {
	run := RuleRun{Pass: pass, Rule: rule.Name()}
	if err := ctx.Err(); err != nil {
		return run, err
	}
	ruleCtx, cancel := ctx, context.CancelFunc(func() {})
	if p.RuleTimeout > 0 {
		ruleCtx, cancel = context.WithTimeout(ctx, p.RuleTimeout)
	}
	defer cancel()
	ruleCtx, span := startRuleSpan(ruleCtx, run.Rule, pass)
	defer span.End()

	start := time.Now()
	n, err := rule.Reduce(ruleCtx, g, changes, last)
	run.Count, run.Elapsed = n, time.Since(start)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		run.TimedOut, err = true, nil
	}
	recordRuleMetrics(ctx, run)
	setRuleSpanResult(span, run, err)
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return run, err
		}
		return run, fmt.Errorf("reduce: rule %s: %w", run.Rule, err)
	}

	return run, nil
}

// rewinder is a rule whose PostProcess marks undo records as used.
type rewinder interface {
	rewind()
}

// Restore maps a solution of the reduced graph back onto the graph Run
// started from. It may be called again with another solution.
//
// Errors: ErrNotRun, ErrRestore, or a PostProcess error.
func (p *Pipeline) Restore(tree core.Tree) (core.Tree, error) {
	if p.original == nil {
		return core.Tree{Node: -1}, ErrNotRun
	}
	tree.Edges = append([]core.Edge(nil), tree.Edges...)
	for _, r := range p.Rules {
		if rw, ok := r.(rewinder); ok {
			rw.rewind()
		}
	}

	for round := 0; ; round++ {
		if round > p.changes+len(p.Rules) {
			return core.Tree{Node: -1}, fmt.Errorf("%w: no fixpoint after %d rounds", ErrRestore, round)
		}
		changed := false
		for i := len(p.Rules) - 1; i >= 0; i-- {
			next, ch, err := p.Rules[i].PostProcess(tree)
			if err != nil {
				return core.Tree{Node: -1}, fmt.Errorf("reduce: restore %s: %w", p.Rules[i].Name(), err)
			}
			tree, changed = next, changed || ch
		}
		if !changed {
			break
		}
	}

	return p.check(tree)
}

// check verifies tree against the original graph and normalizes it.
func (p *Pipeline) check(tree core.Tree) (core.Tree, error) {
	orig := p.original
	for _, e := range tree.Edges {
		if w, ok := orig.Weight(e.U, e.V); !ok || w != e.Weight {
			return core.Tree{Node: -1}, fmt.Errorf("%w: edge %v not in the original graph", ErrRestore, e)
		}
	}
	terms := orig.Terminals()
	if len(tree.Edges) == 0 {
		if len(terms) > 1 || (len(terms) == 1 && tree.Node != terms[0]) {
			return core.Tree{Node: -1}, fmt.Errorf("%w: single vertex %d for %d terminals", ErrRestore, tree.Node, len(terms))
		}
		return core.Tree{Node: tree.Node}, nil
	}
	out, err := core.SpanningTree(tree.Edges, orig.IsTerminal)
	if err != nil {
		return core.Tree{Node: -1}, fmt.Errorf("%w: %v", ErrRestore, err)
	}
	in := make(map[int]bool)
	for _, v := range out.Nodes() {
		in[v] = true
	}
	for _, t := range terms {
		if !in[t] {
			return core.Tree{Node: -1}, fmt.Errorf("%w: terminal %d missing", ErrRestore, t)
		}
	}

	return out, nil
}
