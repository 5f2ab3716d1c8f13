package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/core"
)

func TestCacheState_Transitions(t *testing.T) {
	g := core.NewGraph()
	mustEdges(t, g, e(0, 1, 1), e(1, 2, 1), e(2, 3, 1))
	require.NoError(t, g.AddTerminal(0))
	require.NoError(t, g.AddTerminal(3))
	assert.Equal(t, core.CacheUnknown, g.Validity(core.ViewApproximation), "never computed")

	_, err := g.Approximation()
	require.NoError(t, err)
	assert.Equal(t, core.CacheValid, g.Validity(core.ViewApproximation))

	mustEdges(t, g, e(0, 3, 10))
	assert.Equal(t, core.CacheDirtyShrink, g.Validity(core.ViewApproximation))
	mustEdges(t, g, e(0, 3, 9))
	assert.Equal(t, core.CacheDirtyShrink, g.Validity(core.ViewApproximation))
	require.NoError(t, g.RemoveEdge(0, 3))
	assert.Equal(t, core.CacheUnknown, g.Validity(core.ViewApproximation))
	mustEdges(t, g, e(0, 2, 7))
	assert.Equal(t, core.CacheUnknown, g.Validity(core.ViewApproximation), "unknown is sticky")

	_, err = g.Approximation()
	require.NoError(t, err)
	require.NoError(t, g.RemoveEdge(0, 2))
	assert.Equal(t, core.CacheDirtyGrow, g.Validity(core.ViewApproximation))

	_, err = g.Approximation()
	require.NoError(t, err)
	require.NoError(t, g.AddTerminal(2))
	assert.Equal(t, core.CacheUnknown, g.Validity(core.ViewApproximation))
	assert.Equal(t, core.CacheUnknown, g.Validity(core.ViewClosest))

	assert.Equal(t, "dirty-grow", core.CacheDirtyGrow.String())
	assert.Equal(t, "voronoi", core.ViewVoronoi.String())
}

func TestCache_RowEviction(t *testing.T) {
	g := core.NewGraph()
	mustEdges(t, g, e(0, 1, 1), e(1, 2, 1))

	_, err := g.Lengths(0)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Recomputations(core.ViewDistances))

	// 0–2 at 5 improves nothing from 0: the row survives.
	mustEdges(t, g, e(0, 2, 5))
	assert.Equal(t, core.CacheDirtyShrink, g.Validity(core.ViewDistances))
	_, err = g.Lengths(0)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Recomputations(core.ViewDistances))
	assert.Equal(t, core.CacheValid, g.Validity(core.ViewDistances))

	// Removing a non-tight edge keeps the row too.
	require.NoError(t, g.RemoveEdge(0, 2))
	_, err = g.Lengths(0)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Recomputations(core.ViewDistances))

	// A shortcut evicts it.
	mustEdges(t, g, e(0, 2, 1))
	d, err := g.Distance(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), d)
	assert.Equal(t, 2, g.Recomputations(core.ViewDistances))

	// Removing a tight edge evicts it.
	require.NoError(t, g.RemoveEdge(0, 2))
	d, err = g.Distance(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), d)
	assert.Equal(t, 3, g.Recomputations(core.ViewDistances))
}

func TestCache_UnknownDropsRows(t *testing.T) {
	g := core.NewGraph()
	mustEdges(t, g, e(0, 1, 1), e(1, 2, 1), e(5, 6, 1))
	_, err := g.Lengths(0)
	require.NoError(t, err)

	// Neither event touches row 0, but together they make the view ambiguous.
	mustEdges(t, g, e(5, 7, 1))
	require.NoError(t, g.RemoveEdge(5, 7))
	assert.Equal(t, core.CacheUnknown, g.Validity(core.ViewDistances))
	_, err = g.Lengths(0)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Recomputations(core.ViewDistances))
}

// TestCache_MatchesFreshComputation interleaves random mutations and reads
// and compares every cached answer with a cold clone.
func TestCache_MatchesFreshComputation(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	for round := 0; round < 15; round++ {
		g := core.NewGraph()
		n := 12
		for i := 1; i < n; i++ {
			mustEdges(t, g, e(r.Intn(i), i, int64(1+r.Intn(9))))
		}
		for _, term := range []int{0, 3, 7} {
			require.NoError(t, g.AddTerminal(term))
		}
		for step := 0; step < 60; step++ {
			switch r.Intn(4) {
			case 0:
				if u, v := r.Intn(n+3), r.Intn(n+3); u != v {
					mustEdges(t, g, e(u, v, int64(1+r.Intn(9))))
				}
			case 1:
				if edges := g.Edges(); len(edges) > 0 {
					x := edges[r.Intn(len(edges))]
					require.NoError(t, g.RemoveEdge(x.U, x.V))
				}
			default:
				nodes := g.Nodes()
				src := nodes[r.Intn(len(nodes))]
				fresh := g.Clone()
				for _, v := range nodes {
					got, err := g.Distance(src, v)
					require.NoError(t, err)
					want, err := fresh.Distance(src, v)
					require.NoError(t, err)
					require.Equal(t, want, got, "round %d step %d %d→%d", round, step, src, v)
				}
				for _, v := range nodes {
					got, err := g.Closest(v)
					require.NoError(t, err)
					want, err := fresh.Closest(v)
					require.NoError(t, err)
					require.Equal(t, want, got)
				}
			}
		}
	}
}

func TestCache_MaxRows(t *testing.T) {
	g := core.NewGraph(core.WithMaxRows(2))
	mustEdges(t, g, e(0, 1, 1), e(1, 2, 1))
	lengths := func(vs ...int) {
		for _, v := range vs {
			_, err := g.Lengths(v)
			require.NoError(t, err)
		}
	}

	lengths(0, 1, 2)
	assert.Equal(t, 3, g.Recomputations(core.ViewDistances))
	lengths(1, 2)
	assert.Equal(t, 3, g.Recomputations(core.ViewDistances), "rows 1 and 2 stay cached")
	lengths(0)
	assert.Equal(t, 4, g.Recomputations(core.ViewDistances), "row 0 was evicted first")
	lengths(2)
	assert.Equal(t, 4, g.Recomputations(core.ViewDistances))

	assert.Panics(t, func() { core.WithMaxRows(0) })
}
