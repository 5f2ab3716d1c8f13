package steiner

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/core"
)

// TestOneTree_EdgeMonotone checks h(v, S) <= w(u, v) + h(u, S) on every
// edge and subset, and h = 0 at the goal label.
func TestOneTree_EdgeMonotone(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for round := 0; round < 30; round++ {
		g := core.NewGraph()
		n := 6 + r.Intn(8)
		for i := 1; i < n; i++ {
			require.NoError(t, g.AddEdge(r.Intn(i), i, int64(1+r.Intn(9))))
		}
		for i := 0; i < n; i++ {
			if u, v := r.Intn(n), r.Intn(n); u != v {
				require.NoError(t, g.AddEdge(u, v, int64(r.Intn(9))))
			}
		}
		for k := 2 + r.Intn(4); g.TerminalCount() < k; {
			require.NoError(t, g.AddTerminal(r.Intn(n)))
		}
		terms := g.Terminals()
		b, err := newBounds(context.Background(), g, terms[1:], terms[0])
		require.NoError(t, err)

		for set := uint64(1); set <= b.full; set++ {
			for _, e := range g.Edges() {
				hu, err := b.oneTree(e.U, set)
				require.NoError(t, err)
				hv, err := b.oneTree(e.V, set)
				require.NoError(t, err)
				assert.LessOrEqual(t, hv, hu+e.Weight, "round %d set %b edge %v", round, set, e)
				assert.LessOrEqual(t, hu, hv+e.Weight, "round %d set %b edge %v", round, set, e)
			}
		}
		h, err := b.oneTree(terms[0], b.full)
		require.NoError(t, err)
		assert.Zero(t, h, "the goal label has nothing left to connect")
	}
}
