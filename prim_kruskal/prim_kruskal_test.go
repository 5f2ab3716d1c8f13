package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/prim_kruskal"
)

const inf = prim_kruskal.Inf

func TestPrim_Validation(t *testing.T) {
	_, _, err := prim_kruskal.Prim([][]int64{{0, 1}, {1}})
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidMatrix)

	_, _, err = prim_kruskal.Prim([][]int64{{0, 1}, {2, 0}})
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidMatrix)

	_, _, err = prim_kruskal.Prim([][]int64{{0, -1}, {-1, 0}})
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidMatrix)
}

func TestPrim_EmptyAndSingle(t *testing.T) {
	parent, total, err := prim_kruskal.Prim(nil)
	require.NoError(t, err)
	assert.Empty(t, parent)
	assert.Zero(t, total)

	parent, total, err = prim_kruskal.Prim([][]int64{{0}})
	require.NoError(t, err)
	assert.Equal(t, []int{-1}, parent)
	assert.Zero(t, total)
}

func TestPrim_Triangle(t *testing.T) {
	dist := [][]int64{
		{0, 1, 4},
		{1, 0, 2},
		{4, 2, 0},
	}
	parent, total, err := prim_kruskal.Prim(dist)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []int{-1, 0, 1}, parent)
}

func TestPrim_Disconnected(t *testing.T) {
	dist := [][]int64{
		{0, 1, inf},
		{1, 0, inf},
		{inf, inf, 0},
	}
	_, _, err := prim_kruskal.Prim(dist)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestKruskal_Triangle(t *testing.T) {
	edges := []prim_kruskal.Edge{{U: 0, V: 1, Weight: 1}, {U: 1, V: 2, Weight: 2}, {U: 0, V: 2, Weight: 4}}
	tree, total, err := prim_kruskal.Kruskal(edges)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, edges[:2], tree)
}

func TestKruskal_EdgeCases(t *testing.T) {
	tree, total, err := prim_kruskal.Kruskal(nil)
	require.NoError(t, err)
	assert.Empty(t, tree)
	assert.Zero(t, total)

	// Self-loops are ignored.
	tree, _, err = prim_kruskal.Kruskal([]prim_kruskal.Edge{{U: 3, V: 3, Weight: 1}, {U: 3, V: 5, Weight: 2}})
	require.NoError(t, err)
	assert.Len(t, tree, 1)

	_, _, err = prim_kruskal.Kruskal([]prim_kruskal.Edge{{U: 0, V: 1, Weight: -2}})
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidEdge)

	tree, _, err = prim_kruskal.Kruskal([]prim_kruskal.Edge{{U: 0, V: 1, Weight: 1}, {U: 2, V: 3, Weight: 1}})
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	assert.Len(t, tree, 2)
}

func TestDSU(t *testing.T) {
	d := prim_kruskal.NewDSU(5)
	assert.True(t, d.Union(0, 1))
	assert.True(t, d.Union(3, 4))
	assert.False(t, d.Union(1, 0))
	assert.Equal(t, d.Find(0), d.Find(1))
	assert.NotEqual(t, d.Find(1), d.Find(3))
	assert.True(t, d.Union(1, 4))
	assert.Equal(t, d.Find(0), d.Find(3))
}

// TestPrimKruskalAgree compares both algorithms on random complete graphs.
func TestPrimKruskalAgree(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for round := 0; round < 25; round++ {
		n := 2 + r.Intn(12)
		dist := make([][]int64, n)
		for i := range dist {
			dist[i] = make([]int64, n)
		}
		var edges []prim_kruskal.Edge
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				w := int64(r.Intn(50))
				dist[i][j], dist[j][i] = w, w
				edges = append(edges, prim_kruskal.Edge{U: i, V: j, Weight: w})
			}
		}
		pw, err := prim_kruskal.PrimWeight(dist)
		require.NoError(t, err)
		_, kw, err := prim_kruskal.Kruskal(edges)
		require.NoError(t, err)
		assert.Equal(t, kw, pw, "round %d", round)
	}
}
