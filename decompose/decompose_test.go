package decompose_test

import (
	"context"
	"errors"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/decompose"
	"github.com/katalvlaran/lvsteiner/steiner"
)

// triangles builds n unit triangles {3k, 3k+1, 3k+2} chained by bridges
// 3k+2 – 3k+3 of weight 10, with terminal 3k+1 in each.
func triangles(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for k := 0; k < n; k++ {
		a, b, c := 3*k, 3*k+1, 3*k+2
		require.NoError(t, g.AddEdge(a, b, 1))
		require.NoError(t, g.AddEdge(b, c, 1))
		require.NoError(t, g.AddEdge(a, c, 1))
		require.NoError(t, g.AddTerminal(b))
		if k+1 < n {
			require.NoError(t, g.AddEdge(c, c+1, 10))
		}
	}

	return g
}

func TestSplit(t *testing.T) {
	g := triangles(t, 2)
	// A tail without terminals hangs off vertex 5.
	require.NoError(t, g.AddEdge(5, 6, 1))
	require.NoError(t, g.AddEdge(6, 7, 1))

	plan, err := decompose.Split(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, 3, plan.Bridges)
	assert.Equal(t, []core.Edge{core.NewEdge(2, 3, 10)}, plan.Required)
	assert.Equal(t, 2, plan.Dropped)
	require.Len(t, plan.Parts, 2)
	assert.Equal(t, []int{0, 1, 2}, plan.Parts[0].Nodes())
	assert.Equal(t, []int{1, 2}, plan.Parts[0].Terminals())
	assert.Equal(t, []int{3, 4, 5}, plan.Parts[1].Nodes())
	assert.Equal(t, []int{3, 4}, plan.Parts[1].Terminals())
	assert.Equal(t, 3, plan.Parts[1].EdgeCount())

	// The input keeps its own terminals.
	assert.Equal(t, []int{1, 4}, g.Terminals())
}

func TestSplit_BranchingBridges(t *testing.T) {
	g := core.NewGraph()
	for _, e := range []core.Edge{
		core.NewEdge(0, 1, 1), core.NewEdge(1, 2, 1), core.NewEdge(0, 2, 1),
		core.NewEdge(0, 10, 4), core.NewEdge(1, 20, 5), core.NewEdge(2, 30, 6), core.NewEdge(30, 31, 7),
	} {
		require.NoError(t, g.AddEdge(e.U, e.V, e.Weight))
	}
	for _, v := range []int{0, 10, 31} {
		require.NoError(t, g.AddTerminal(v))
	}

	plan, err := decompose.Split(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, 4, plan.Bridges)
	assert.ElementsMatch(t, []core.Edge{
		core.NewEdge(0, 10, 4), core.NewEdge(2, 30, 6), core.NewEdge(30, 31, 7),
	}, plan.Required)
	assert.Equal(t, 1, plan.Dropped, "the branch to 20 holds no terminal")
	require.Len(t, plan.Parts, 4)
	assert.Equal(t, []int{0, 2}, plan.Parts[0].Terminals())
	assert.Equal(t, []int{30}, plan.Parts[2].Terminals())
	assert.Equal(t, []int{31}, plan.Parts[3].Terminals())
}

func TestSolve_Chain(t *testing.T) {
	g := triangles(t, 6)
	res, err := decompose.Solve(context.Background(), g, decompose.Exact(), decompose.WithMaxConcurrency(3))
	require.NoError(t, err)
	assert.Equal(t, int64(60), res.Tree.Cost)
	assert.Len(t, res.Plan.Parts, 6)
	assert.Len(t, res.Plan.Required, 5)

	direct, err := steiner.Solve(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, direct.Tree.Cost, res.Tree.Cost)
	assert.Len(t, res.Tree.Edges, len(res.Tree.Nodes())-1)
}

func TestSolve_SingleTerminal(t *testing.T) {
	g := triangles(t, 1)
	require.NoError(t, g.AddEdge(2, 9, 4))
	never := func(context.Context, *core.Graph) (core.Tree, error) {
		return core.Tree{}, errors.New("called")
	}

	res, err := decompose.Solve(context.Background(), g, never)
	require.NoError(t, err)
	assert.Empty(t, res.Tree.Edges)
	assert.Equal(t, 1, res.Tree.Node)
	assert.Equal(t, 1, res.Plan.Dropped)
}

// TestSolve_MatchesDirect compares decomposition against the plain solver
// on random blocks joined by random tree edges.
func TestSolve_MatchesDirect(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for round := 0; round < 20; round++ {
		g := core.NewGraph()
		blocks := 2 + r.Intn(4)
		const size = 5
		for b := 0; b < blocks; b++ {
			base := b * size
			for i := 1; i < size; i++ {
				require.NoError(t, g.AddEdge(base+r.Intn(i), base+i, int64(1+r.Intn(9))))
			}
			for i := 0; i < 3; i++ {
				if u, v := r.Intn(size), r.Intn(size); u != v {
					require.NoError(t, g.AddEdge(base+u, base+v, int64(1+r.Intn(9))))
				}
			}
			if b > 0 {
				require.NoError(t, g.AddEdge(r.Intn(b*size), base+r.Intn(size), int64(1+r.Intn(9))))
			}
		}
		for k := 2 + r.Intn(5); g.TerminalCount() < k; {
			require.NoError(t, g.AddTerminal(r.Intn(blocks*size)))
		}

		want, err := steiner.Solve(context.Background(), g)
		require.NoError(t, err)
		got, err := decompose.Solve(context.Background(), g, decompose.Exact())
		require.NoError(t, err, "round %d", round)
		require.Equal(t, want.Tree.Cost, got.Tree.Cost, "round %d", round)

		var sum int64
		for _, e := range got.Tree.Edges {
			w, ok := g.Weight(e.U, e.V)
			require.True(t, ok)
			require.Equal(t, w, e.Weight)
			sum += w
		}
		require.Equal(t, got.Tree.Cost, sum)
		nodes := got.Tree.Nodes()
		for _, term := range g.Terminals() {
			assert.Contains(t, nodes, term)
		}
	}
}

func TestSolve_ConcurrencyLimit(t *testing.T) {
	g := triangles(t, 8)
	var inFlight, peak atomic.Int32
	solve := func(ctx context.Context, part *core.Graph) (core.Tree, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		res, err := steiner.Solve(ctx, part)
		return res.Tree, err
	}

	res, err := decompose.Solve(context.Background(), g, solve, decompose.WithMaxConcurrency(2))
	require.NoError(t, err)
	assert.Equal(t, int64(2*6+2+10*7), res.Tree.Cost)
	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.Positive(t, peak.Load())
}

func TestSolve_Errors(t *testing.T) {
	ctx := context.Background()
	g := triangles(t, 3)

	_, err := decompose.Solve(ctx, g, nil)
	assert.ErrorIs(t, err, decompose.ErrNilSolver)

	_, err = decompose.Solve(ctx, nil, decompose.Exact())
	assert.ErrorIs(t, err, decompose.ErrNilGraph)

	empty := core.NewGraph()
	require.NoError(t, empty.AddEdge(0, 1, 1))
	_, err = decompose.Solve(ctx, empty, decompose.Exact())
	assert.ErrorIs(t, err, decompose.ErrNoTerminals)

	apart := triangles(t, 1)
	require.NoError(t, apart.AddEdge(20, 21, 1))
	require.NoError(t, apart.AddTerminal(21))
	_, err = decompose.Solve(ctx, apart, decompose.Exact())
	assert.ErrorIs(t, err, decompose.ErrDisconnected)

	boom := errors.New("boom")
	failing := func(context.Context, *core.Graph) (core.Tree, error) {
		return core.Tree{Node: -1}, boom
	}
	_, err = decompose.Solve(ctx, g, failing)
	assert.ErrorIs(t, err, boom)

	cancelled, stop := context.WithCancel(ctx)
	stop()
	_, err = decompose.Split(cancelled, g)
	assert.ErrorIs(t, err, context.Canceled)
}
