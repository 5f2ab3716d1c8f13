package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/bfs"
	"github.com/katalvlaran/lvsteiner/builder"
	"github.com/katalvlaran/lvsteiner/core"
)

// TestBuilders_Functional checks counts and a few edges of each topology.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		edges []core.Edge
	}{
		{"Path(4)", builder.Path(4), 4, 3, []core.Edge{{U: 0, V: 1, Weight: 1}, {U: 2, V: 3, Weight: 1}}},
		{"Cycle(5)", builder.Cycle(5), 5, 5, []core.Edge{{U: 0, V: 4, Weight: 1}}},
		{"Star(4)", builder.Star(4), 4, 3, []core.Edge{{U: 0, V: 3, Weight: 1}}},
		{"Wheel(5)", builder.Wheel(5), 5, 8, []core.Edge{{U: 1, V: 4, Weight: 1}, {U: 0, V: 2, Weight: 1}}},
		{"Complete(5)", builder.Complete(5), 5, 10, []core.Edge{{U: 1, V: 3, Weight: 1}}},
		{"Grid(3,4)", builder.Grid(3, 4), 12, 17, []core.Edge{{U: 0, V: 4, Weight: 1}, {U: 10, V: 11, Weight: 1}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			for _, e := range tc.edges {
				w, ok := g.Weight(e.U, e.V)
				assert.True(t, ok, "missing %v", e)
				assert.Equal(t, e.Weight, w)
			}
			assert.True(t, bfs.Connected(g, g.Nodes()))
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"Grid(3,0)", builder.Grid(3, 0), builder.ErrTooFewVertices},
		{"RandomConnected(0)", builder.RandomConnected(0, 0.5), builder.ErrTooFewVertices},
		{"RandomConnected(p)", builder.RandomConnected(5, 1.5), builder.ErrInvalidProbability},
		{"RandomConnected(rng)", builder.RandomConnected(5, 0.5), builder.ErrNeedRandSource},
		{"Terminals(absent)", builder.Terminals(3), builder.ErrConstructFailed},
		{"RandomTerminals(0)", builder.RandomTerminals(0), builder.ErrTooFewVertices},
		{"RandomTerminals(big)", builder.RandomTerminals(1), builder.ErrTooManyTerminals},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := builder.BuildGraph(nil, nil, builder.Path(3), builder.RandomTerminals(2))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDScheme(func(i int) int { return -i - 1 })}, builder.Path(3))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, core.ErrBadVertex)
}

func TestRandomConnected(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 20; seed++ {
		opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(0, 9)}
		g, err := builder.BuildGraph(nil, opts, builder.RandomConnected(30, 0.05), builder.RandomTerminals(6))
		require.NoError(t, err)
		assert.Equal(t, 30, g.NodeCount())
		assert.GreaterOrEqual(t, g.EdgeCount(), 29)
		assert.Equal(t, 6, g.TerminalCount())
		assert.True(t, bfs.Connected(g, g.Nodes()), "seed %d", seed)
	}

	a, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomConnected(12, 0.3), builder.RandomTerminals(4))
	require.NoError(t, err)
	b, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(3)))}, builder.RandomConnected(12, 0.3), builder.RandomTerminals(4))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges(), "same seed, same graph")
	assert.Equal(t, a.Terminals(), b.Terminals())

	full, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomConnected(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 15, full.EdgeCount())
}

func TestOffsetAndTerminals(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithOffset(1), builder.WithConstantWeight(3)},
		builder.Path(3), builder.Terminals(0, 2)))
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithOffset(3)},
		builder.Star(3), builder.Terminals(2)))

	assert.Equal(t, []int{1, 2, 3, 4, 5}, g.Nodes())
	assert.Equal(t, []core.Edge{
		core.NewEdge(1, 2, 3), core.NewEdge(2, 3, 3),
		core.NewEdge(3, 4, 1), core.NewEdge(3, 5, 1),
	}, g.Edges())
	assert.Equal(t, []int{1, 3, 5}, g.Terminals())

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrConstructFailed)
}
