package core

import (
	"cmp"
	"slices"
)

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

func compareEdges(a, b Edge) int {
	if c := cmp.Compare(a.U, b.U); c != 0 {
		return c
	}

	return cmp.Compare(a.V, b.V)
}

// SortEdges normalizes every edge and sorts by (U, V).
func SortEdges(edges []Edge) {
	for i, e := range edges {
		edges[i] = NewEdge(e.U, e.V, e.Weight)
	}
	slices.SortFunc(edges, compareEdges)
}
