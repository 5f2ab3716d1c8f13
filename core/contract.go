// SPDX-License-Identifier: MIT
//
// File: contract.go
// Role: Edge contraction with an undo record.

package core

import "fmt"

// ContractEdge merges v into u along the edge u–v.
//
// Every edge v–x is moved to u–x; when u–x already exists the cheaper of the
// two survives. A terminal mark on v moves to u. v is removed.
//
// The result has one EdgePair per edge that disappeared or changed:
//   - {u–v, nil} for the contracted edge;
//   - {v–x, &u–x} when v–x moved to a fresh u–x;
//   - {v–x, &u–x} and {u–x(old), &u–x} (same pointer) when the moved edge
//     replaced a dearer u–x;
//   - {v–x, nil} when the moved edge was dearer than the existing u–x.
//
// Undo: remove every distinct New edge, re-add v, add every Old edge, and
// restore v's terminal mark.
//
// Errors: ErrEdgeNotFound.
//
// Complexity: O(deg(v)) plus cache maintenance.
func (g *Graph) ContractEdge(u, v int) ([]EdgePair, error) {
	wuv, ok := g.adj[u][v]
	if !ok {
		return nil, fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, u, v)
	}

	pairs := make([]EdgePair, 0, len(g.adj[v]))
	pairs = append(pairs, EdgePair{Old: NewEdge(u, v, wuv)})
	g.unlink(u, v)

	for _, x := range g.Neighbors(v) {
		wvx := g.adj[v][x]
		g.unlink(v, x)
		old := NewEdge(v, x, wvx)
		wux, had := g.adj[u][x]
		switch {
		case !had:
			g.link(u, x, wvx)
			ne := NewEdge(u, x, wvx)
			pairs = append(pairs, EdgePair{Old: old, New: &ne})
		case wvx < wux:
			g.link(u, x, wvx)
			ne := NewEdge(u, x, wvx)
			pairs = append(pairs,
				EdgePair{Old: old, New: &ne},
				EdgePair{Old: NewEdge(u, x, wux), New: &ne})
		default:
			pairs = append(pairs, EdgePair{Old: old})
		}
	}

	if g.IsTerminal(v) {
		delete(g.terminals, v)
		g.terminals[u] = struct{}{}
		g.onTerminalsChanged()
	}
	delete(g.adj, v)
	delete(g.sorted, v)
	g.purge(v)

	return pairs, nil
}
