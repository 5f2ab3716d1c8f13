package dualascent_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/dijkstra"
	"github.com/katalvlaran/lvsteiner/dualascent"
	"github.com/katalvlaran/lvsteiner/prim_kruskal"
)

// bruteForce returns the optimum Steiner cost by trying every set of
// non-terminal vertices and spanning terminals plus that set.
func bruteForce(g *core.Graph) int64 {
	terms := g.Terminals()
	var others []int
	for _, v := range g.Nodes() {
		if !g.IsTerminal(v) {
			others = append(others, v)
		}
	}
	best := int64(dijkstra.Inf)
	for mask := 0; mask < 1<<len(others); mask++ {
		keep := map[int]bool{}
		for _, t := range terms {
			keep[t] = true
		}
		for i, v := range others {
			if mask&(1<<i) != 0 {
				keep[v] = true
			}
		}
		var edges []prim_kruskal.Edge
		for _, e := range g.Edges() {
			if keep[e.U] && keep[e.V] {
				edges = append(edges, prim_kruskal.Edge{U: e.U, V: e.V, Weight: e.Weight})
			}
		}
		tree, w, err := prim_kruskal.Kruskal(edges)
		if err != nil {
			continue
		}
		touched := map[int]bool{}
		for _, e := range tree {
			touched[e.U], touched[e.V] = true, true
		}
		if len(touched) != len(keep) && len(keep) > 1 {
			continue
		}
		best = min(best, w)
	}

	return best
}

func star(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for leaf := 1; leaf <= 3; leaf++ {
		require.NoError(t, g.AddEdge(0, leaf, 5))
		require.NoError(t, g.AddTerminal(leaf))
	}

	return g
}

func TestCompute_Star(t *testing.T) {
	g := star(t)
	res, err := dualascent.Compute(g, 1, g.Terminals())
	require.NoError(t, err)
	assert.LessOrEqual(t, res.LowerBound, int64(15))
	assert.Equal(t, int64(15), res.LowerBound)
	assert.Equal(t, 6, res.Residual.ArcCount())
}

func TestCompute_Path(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 2))
	require.NoError(t, g.AddEdge(3, 4, 3))
	res, err := dualascent.Compute(g, 1, []int{1, 4, 4})
	require.NoError(t, err)
	assert.Equal(t, int64(6), res.LowerBound)

	r, ok := res.Residual.Residual(1, 2)
	require.True(t, ok)
	assert.Zero(t, r)
	_, ok = res.Residual.Residual(1, 3)
	assert.False(t, ok)
}

func TestCompute_Errors(t *testing.T) {
	_, err := dualascent.Compute(nil, 0, nil)
	assert.ErrorIs(t, err, dualascent.ErrNilGraph)

	g := star(t)
	_, err = dualascent.Compute(g, 9, []int{1})
	assert.ErrorIs(t, err, dualascent.ErrVertexNotFound)
	_, err = dualascent.Compute(g, 1, []int{9})
	assert.ErrorIs(t, err, dualascent.ErrVertexNotFound)

	require.NoError(t, g.AddEdge(7, 8, 1))
	_, err = dualascent.Compute(g, 1, []int{2, 8})
	assert.ErrorIs(t, err, dualascent.ErrDisconnected)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dualascent.Compute(star(t), 1, []int{2, 3}, dualascent.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompute_RootOnly(t *testing.T) {
	res, err := dualascent.Compute(star(t), 1, []int{1})
	require.NoError(t, err)
	assert.Zero(t, res.LowerBound)
}

// TestCompute_BoundAndResidualProperties checks on random graphs that the
// bound never exceeds the optimum, residuals stay non-negative, and every
// terminal ends at residual distance zero from the root.
func TestCompute_BoundAndResidualProperties(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for round := 0; round < 40; round++ {
		g := core.NewGraph()
		n := 4 + r.Intn(6)
		for i := 1; i < n; i++ {
			require.NoError(t, g.AddEdge(r.Intn(i), i, int64(1+r.Intn(10))))
		}
		for i := 0; i < n; i++ {
			if u, v := r.Intn(n), r.Intn(n); u != v {
				require.NoError(t, g.AddEdge(u, v, int64(r.Intn(10))))
			}
		}
		want := 2 + r.Intn(3)
		for g.TerminalCount() < want {
			require.NoError(t, g.AddTerminal(r.Intn(n)))
		}
		terms := g.Terminals()

		res, err := dualascent.Compute(g, terms[0], terms)
		require.NoError(t, err)
		assert.LessOrEqual(t, res.LowerBound, bruteForce(g), "round %d", round)

		d := res.Residual
		for u := 0; u <= d.MaxID(); u++ {
			d.ForEachNeighbor(u, func(_ int, w int64) {
				assert.GreaterOrEqual(t, w, int64(0))
			})
		}
		from, err := d.DistancesFrom(terms[0])
		require.NoError(t, err)
		for _, term := range terms {
			assert.Zero(t, from[term], "round %d terminal %d", round, term)
		}
		to, err := d.DistancesToTerminals(terms)
		require.NoError(t, err)
		for _, term := range terms {
			assert.Zero(t, to[term])
		}
	}
}
