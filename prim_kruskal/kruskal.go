package prim_kruskal

import (
	"cmp"
	"fmt"
	"slices"
)

// Kruskal computes a minimum spanning forest of the given edges and reports
// whether it is a single tree over every endpoint.
//
// Steps:
//  1. Validate ids and weights (ErrInvalidEdge); drop self-loops.
//  2. Stable-sort by weight.
//  3. Union endpoints through a DSU, keeping edges that join two components.
//  4. If more than one component remains, return the forest with ErrDisconnected.
//
// The returned edges keep their input orientation.
//
// Complexity: O(E log E + α(V)·E).
func Kruskal(edges []Edge) ([]Edge, int64, error) {
	maxID := -1
	sorted := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.U < 0 || e.V < 0 || e.Weight < 0 {
			return nil, 0, fmt.Errorf("%w: %d-%d w=%d", ErrInvalidEdge, e.U, e.V, e.Weight)
		}
		if e.U == e.V {
			continue
		}
		maxID = max(maxID, e.U, e.V)
		sorted = append(sorted, e)
	}
	slices.SortStableFunc(sorted, func(a, b Edge) int { return cmp.Compare(a.Weight, b.Weight) })

	dsu := NewDSU(maxID + 1)
	touched := make([]bool, maxID+1)
	vertices := 0
	for _, e := range sorted {
		for _, v := range [2]int{e.U, e.V} {
			if !touched[v] {
				touched[v] = true
				vertices++
			}
		}
	}

	tree := make([]Edge, 0, max(vertices-1, 0))
	var total int64
	for _, e := range sorted {
		if dsu.Union(e.U, e.V) {
			tree = append(tree, e)
			total += e.Weight
			if len(tree) == vertices-1 {
				break
			}
		}
	}
	if vertices > 0 && len(tree) != vertices-1 {
		return tree, total, fmt.Errorf("%w: %d components", ErrDisconnected, vertices-len(tree))
	}

	return tree, total, nil
}
