package decompose

import (
	"context"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/steiner"
)

// Exact returns a SolveFunc running the exact solver on each part.
func Exact(opts ...steiner.Option) SolveFunc {
	return func(ctx context.Context, g *core.Graph) (core.Tree, error) {
		res, err := steiner.Solve(ctx, g, opts...)
		return res.Tree, err
	}
}
