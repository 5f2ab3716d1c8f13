package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/bfs"
	"github.com/katalvlaran/lvsteiner/core"
)

func build(t *testing.T, edges ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := build(t, [2]int{0, 1})
	_, err = bfs.BFS(g, 5)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestBFS_OrderDepthParent(t *testing.T) {
	g := build(t, [2]int{0, 2}, [2]int{0, 1}, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 4})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)
	assert.Equal(t, 3, res.Depth[4])
	assert.Equal(t, []int{0, 1, 3, 4}, res.PathTo(4))
	assert.Nil(t, res.PathTo(9))
}

func TestBFS_Filter(t *testing.T) {
	g := build(t, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	res, err := bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(_, n int) bool { return n != 2 }))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
}

func TestBFS_HookAbortAndCancel(t *testing.T) {
	g := build(t, [2]int{0, 1}, [2]int{1, 2})
	stop := errors.New("stop")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := build(t, [2]int{5, 6}, [2]int{0, 1}, [2]int{1, 2})
	require.NoError(t, g.AddNode(9))
	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {5, 6}, {9}}, comps)

	_, err = bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	assert.True(t, bfs.Connected(g, []int{0, 2}))
	assert.True(t, bfs.Connected(g, []int{2, 2, 0}))
	assert.False(t, bfs.Connected(g, []int{0, 5}))
	assert.False(t, bfs.Connected(g, []int{42}))
	assert.False(t, bfs.Connected(g, []int{0, 42}))
	assert.True(t, bfs.Connected(g, nil))
}

func TestComponents_Filtered(t *testing.T) {
	g := build(t, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0}, [2]int{3, 4})
	cut := func(u, v int) bool { return !((u == 3 && v == 4) || (u == 4 && v == 3)) }
	comps, err := bfs.Components(g, bfs.WithFilterNeighbor(cut))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {4}}, comps)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.Components(g, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
