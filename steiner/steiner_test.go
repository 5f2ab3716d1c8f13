package steiner_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/bfs"
	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/pq"
	"github.com/katalvlaran/lvsteiner/prim_kruskal"
	"github.com/katalvlaran/lvsteiner/steiner"
)

// bruteForce returns the optimum by spanning the terminals plus every
// possible set of non-terminal vertices.
func bruteForce(g *core.Graph) int64 {
	terms := g.Terminals()
	var others []int
	for _, v := range g.Nodes() {
		if !g.IsTerminal(v) {
			others = append(others, v)
		}
	}
	best := int64(core.Inf)
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
		if len(touched) != len(keep) {
			continue
		}
		best = min(best, w)
	}

	return best
}

// randomInstance builds a connected graph with n vertices and a few
// terminals; zero weights are allowed on the extra edges.
func randomInstance(t *testing.T, r *rand.Rand, n, terminals int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(r.Intn(i), i, int64(1+r.Intn(9))))
	}
	for i := 0; i < n; i++ {
		if u, v := r.Intn(n), r.Intn(n); u != v {
			require.NoError(t, g.AddEdge(u, v, int64(r.Intn(9))))
		}
	}
	for g.TerminalCount() < terminals {
		require.NoError(t, g.AddTerminal(r.Intn(n)))
	}

	return g
}

// requireValidTree checks that tree is a tree of g spanning every terminal
// and that its cost is the sum of its edge weights.
func requireValidTree(t *testing.T, g *core.Graph, tree core.Tree) {
	t.Helper()
	var sum int64
	h := core.NewGraph()
	for _, e := range tree.Edges {
		w, ok := g.Weight(e.U, e.V)
		require.True(t, ok, "edge %v not in graph", e)
		require.Equal(t, w, e.Weight)
		sum += e.Weight
		require.NoError(t, h.AddEdge(e.U, e.V, e.Weight))
	}
	require.Equal(t, sum, tree.Cost)
	if len(tree.Edges) == 0 {
		require.Equal(t, 1, g.TerminalCount())
		require.Equal(t, g.Terminals()[0], tree.Node)
		return
	}
	require.Equal(t, h.NodeCount()-1, h.EdgeCount(), "not a tree")
	for _, term := range g.Terminals() {
		require.True(t, h.HasNode(term), "terminal %d missing", term)
	}
	require.True(t, bfs.Connected(h, h.Nodes()))
}

func TestSolve_Scenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("path", func(t *testing.T) {
		g := core.NewGraph()
		require.NoError(t, g.AddEdge(1, 2, 1))
		require.NoError(t, g.AddEdge(2, 3, 2))
		require.NoError(t, g.AddEdge(3, 4, 3))
		require.NoError(t, g.AddTerminal(1))
		require.NoError(t, g.AddTerminal(4))

		res, err := steiner.Solve(ctx, g)
		require.NoError(t, err)
		assert.Equal(t, int64(6), res.Tree.Cost)
		assert.Equal(t, []core.Edge{core.NewEdge(1, 2, 1), core.NewEdge(2, 3, 2), core.NewEdge(3, 4, 3)}, res.Tree.Edges)
	})

	t.Run("cycle", func(t *testing.T) {
		g := core.NewGraph()
		for i := 0; i < 4; i++ {
			require.NoError(t, g.AddEdge(i, (i+1)%4, 1))
		}
		require.NoError(t, g.AddTerminal(0))
		require.NoError(t, g.AddTerminal(2))

		res, err := steiner.Solve(ctx, g)
		require.NoError(t, err)
		assert.Equal(t, int64(2), res.Tree.Cost)
		assert.Len(t, res.Tree.Edges, 2)
		requireValidTree(t, g, res.Tree)
	})

	t.Run("star", func(t *testing.T) {
		g := core.NewGraph()
		for leaf := 1; leaf <= 3; leaf++ {
			require.NoError(t, g.AddEdge(0, leaf, 5))
			require.NoError(t, g.AddTerminal(leaf))
		}

		res, err := steiner.Solve(ctx, g)
		require.NoError(t, err)
		assert.Equal(t, int64(15), res.Tree.Cost)
		assert.Equal(t, []int{0, 1, 2, 3}, res.Tree.Nodes())
	})

	t.Run("single terminal", func(t *testing.T) {
		g := core.NewGraph()
		require.NoError(t, g.AddEdge(0, 1, 4))
		require.NoError(t, g.AddTerminal(1))

		res, err := steiner.Solve(ctx, g)
		require.NoError(t, err)
		assert.Empty(t, res.Tree.Edges)
		assert.Zero(t, res.Tree.Cost)
		assert.Equal(t, 1, res.Tree.Node)
	})
}

func TestSolve_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := steiner.Solve(ctx, nil)
	assert.ErrorIs(t, err, steiner.ErrNilGraph)

	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1))
	_, err = steiner.Solve(ctx, g)
	assert.ErrorIs(t, err, steiner.ErrNoTerminals)

	require.NoError(t, g.AddTerminal(0))
	require.NoError(t, g.AddTerminal(1))
	_, err = steiner.Solve(ctx, g, steiner.WithRoot(5))
	assert.ErrorIs(t, err, steiner.ErrBadRoot)

	require.NoError(t, g.AddEdge(7, 8, 1))
	require.NoError(t, g.AddTerminal(8))
	_, err = steiner.Solve(ctx, g)
	assert.ErrorIs(t, err, steiner.ErrDisconnected)

	big := core.NewGraph()
	for i := 0; i <= steiner.MaxTerminals; i++ {
		require.NoError(t, big.AddEdge(i, i+1, 1))
		require.NoError(t, big.AddTerminal(i))
	}
	_, err = steiner.Solve(ctx, big)
	assert.ErrorIs(t, err, steiner.ErrTooManyTerminals)
}

// TestSolve_MatchesBruteForce runs every combination of bounds, pruning and
// partner enumeration, and both queue kinds, against exhaustive search.
func TestSolve_MatchesBruteForce(t *testing.T) {
	heap := pq.DefaultOptions()
	heap.BucketThreshold = 0
	heap.Arity = 3

	r := rand.New(rand.NewSource(5))
	for round := 0; round < 25; round++ {
		g := randomInstance(t, r, 5+r.Intn(5), 2+r.Intn(4))
		want := bruteForce(g)
		approx, err := g.Approximation()
		require.NoError(t, err)

		for combo := 0; combo < 32; combo++ {
			opts := []steiner.Option{
				steiner.WithMSTHeuristic(combo&1 != 0),
				steiner.WithDualAscentHeuristic(combo&2 != 0),
				steiner.WithLabelStore(combo&4 != 0),
				steiner.WithSubsetBound(combo&8 != 0),
			}
			if combo&16 != 0 {
				opts = append(opts, steiner.WithQueue(heap))
			}
			res, err := steiner.Solve(context.Background(), g, opts...)
			require.NoError(t, err, "round %d combo %05b", round, combo)
			require.Equal(t, want, res.Tree.Cost, "round %d combo %05b", round, combo)
			requireValidTree(t, g, res.Tree)
			assert.LessOrEqual(t, res.Tree.Cost, approx.Cost)
			assert.Equal(t, approx.Cost, res.Stats.UpperBound)
		}
	}
}

// TestSolve_MonotonePriorities covers an instance where half the metric MST
// over the remaining terminals and v drops by more than an edge weight
// between neighbors; as a queue priority it pushed labels below the bucket
// queue cursor.
func TestSolve_MonotonePriorities(t *testing.T) {
	g := core.NewGraph()
	for _, e := range []core.Edge{
		core.NewEdge(0, 1, 8), core.NewEdge(0, 2, 9), core.NewEdge(0, 4, 4),
		core.NewEdge(1, 2, 1), core.NewEdge(1, 5, 5), core.NewEdge(1, 8, 6),
		core.NewEdge(2, 3, 5), core.NewEdge(2, 7, 4), core.NewEdge(2, 10, 3),
		core.NewEdge(2, 13, 6), core.NewEdge(3, 8, 7), core.NewEdge(3, 11, 7),
		core.NewEdge(3, 13, 7), core.NewEdge(4, 11, 7), core.NewEdge(5, 6, 5),
		core.NewEdge(5, 9, 7), core.NewEdge(6, 12, 5), core.NewEdge(7, 13, 8),
		core.NewEdge(8, 9, 3), core.NewEdge(8, 10, 2), core.NewEdge(8, 12, 1),
		core.NewEdge(11, 12, 5), core.NewEdge(12, 13, 8),
	} {
		require.NoError(t, g.AddEdge(e.U, e.V, e.Weight))
	}
	for _, term := range []int{0, 5, 6, 7, 11} {
		require.NoError(t, g.AddTerminal(term))
	}
	want := bruteForce(g)

	heap := pq.DefaultOptions()
	heap.BucketThreshold = 0
	for name, opts := range map[string][]steiner.Option{
		"default":    nil,
		"plain":      {steiner.WithSubsetBound(false), steiner.WithLabelStore(false)},
		"heap":       {steiner.WithQueue(heap)},
		"heap plain": {steiner.WithQueue(heap), steiner.WithSubsetBound(false), steiner.WithLabelStore(false)},
	} {
		res, err := steiner.Solve(context.Background(), g, opts...)
		require.NoError(t, err, name)
		assert.Equal(t, want, res.Tree.Cost, name)
		requireValidTree(t, g, res.Tree)
	}
}

// TestSolve_BucketQueueStress solves many mid-sized instances with the
// default options, which pick the bucket queue.
func TestSolve_BucketQueueStress(t *testing.T) {
	if testing.Short() {
		t.Skip("stress test")
	}
	r := rand.New(rand.NewSource(23))
	for round := 0; round < 150; round++ {
		g := randomInstance(t, r, 8+r.Intn(6), 3+r.Intn(3))
		want := bruteForce(g)
		res, err := steiner.Solve(context.Background(), g)
		require.NoError(t, err, "round %d", round)
		require.Equal(t, want, res.Tree.Cost, "round %d", round)

		res, err = steiner.Solve(context.Background(), g, steiner.WithSubsetBound(false), steiner.WithLabelStore(false))
		require.NoError(t, err, "round %d", round)
		require.Equal(t, want, res.Tree.Cost, "round %d", round)
	}
}

func TestSolve_AnyRoot(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for round := 0; round < 10; round++ {
		g := randomInstance(t, r, 8, 4)
		want := bruteForce(g)
		for _, root := range g.Terminals() {
			res, err := steiner.Solve(context.Background(), g, steiner.WithRoot(root))
			require.NoError(t, err)
			assert.Equal(t, want, res.Tree.Cost, "round %d root %d", round, root)
		}
	}
}

func TestSolve_Stats(t *testing.T) {
	g := core.NewGraph()
	for leaf := 1; leaf <= 3; leaf++ {
		require.NoError(t, g.AddEdge(0, leaf, 5))
		require.NoError(t, g.AddTerminal(leaf))
	}
	res, err := steiner.Solve(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Stats.Terminals)
	assert.Positive(t, res.Stats.Labels)
	assert.Positive(t, res.Stats.Settled)
	assert.LessOrEqual(t, res.Stats.Settled, res.Stats.Labels)
	assert.Equal(t, int64(15), res.Stats.UpperBound)
}

func TestSolveWithin(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddTerminal(0))
	require.NoError(t, g.AddTerminal(2))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	res, err := steiner.SolveWithin(ctx, g)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Tree.Cost)

	res, err = steiner.SolveWithin(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Tree.Cost)

	cancelled, stop := context.WithCancel(context.Background())
	stop()
	_, err = steiner.SolveWithin(cancelled, g)
	assert.ErrorIs(t, err, steiner.ErrTimeout)
	assert.ErrorIs(t, err, context.Canceled)
}
