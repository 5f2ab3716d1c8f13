package reduce

import "github.com/katalvlaran/lvsteiner/core"

// find returns the index of e (same endpoints and weight) in edges, or -1.
func find(edges []core.Edge, e core.Edge) int {
	e = core.NewEdge(e.U, e.V, e.Weight)
	for i, x := range edges {
		if x == e {
			return i
		}
	}

	return -1
}

// replace swaps edges[i] for the given edges, keeping the cost unchanged
// when the replacements weigh the same.
func replace(t core.Tree, i int, with ...core.Edge) core.Tree {
	out := make([]core.Edge, 0, len(t.Edges)-1+len(with))
	out = append(out, t.Edges[:i]...)
	out = append(out, t.Edges[i+1:]...)
	for _, e := range with {
		out = append(out, core.NewEdge(e.U, e.V, e.Weight))
		t.Cost += e.Weight
	}
	t.Cost -= t.Edges[i].Weight
	t.Edges = out

	return t
}
