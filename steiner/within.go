package steiner

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

// SolveWithin runs Solve on a clone of g and waits for it or for ctx,
// whichever ends first. When ctx ends first it returns ErrTimeout wrapping
// the context error; the abandoned search finishes in the background on
// its private clone and its result is discarded.
func SolveWithin(ctx context.Context, g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{Tree: core.Tree{Node: -1}}, ErrNilGraph
	}
	if err := ctx.Err(); err != nil {
		return Result{Tree: core.Tree{Node: -1}}, fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	if ctx.Done() == nil {
		return Solve(ctx, g, opts...)
	}

	type outcome struct {
		res Result
		err error
	}
	done := make(chan outcome, 1)
	clone := g.Clone()
	go func() {
		res, err := Solve(context.WithoutCancel(ctx), clone, opts...)
		done <- outcome{res, err}
	}()

	select {
	case out := <-done:
		return out.res, out.err
	case <-ctx.Done():
		return Result{Tree: core.Tree{Node: -1}}, fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
	}
}
