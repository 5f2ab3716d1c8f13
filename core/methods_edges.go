// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and edge queries. Every change reports a shrink or
//       grow event to the cache layer.

package core

import (
	"fmt"
	"slices"
)

// AddEdge inserts the edge u–v with weight w, adding missing endpoints.
// If the edge exists and is dearer its weight is lowered; otherwise the call
// is a no-op.
//
// Errors: ErrBadVertex, ErrSelfLoop, ErrNegativeWeight.
//
// Complexity: O(1) plus O(R) cache maintenance for R cached distance rows.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if u < 0 || v < 0 {
		return fmt.Errorf("%w: %d-%d", ErrBadVertex, u, v)
	}
	if u == v {
		return fmt.Errorf("%w: %d", ErrSelfLoop, u)
	}
	if w < 0 {
		return fmt.Errorf("%w: %d-%d w=%d", ErrNegativeWeight, u, v, w)
	}
	_ = g.AddNode(u)
	_ = g.AddNode(v)
	g.link(u, v, w)

	return nil
}

// link stores or lowers u–v and reports whether the graph changed.
// Both endpoints must exist.
func (g *Graph) link(u, v int, w int64) bool {
	old, ok := g.adj[u][v]
	if ok && old <= w {
		return false
	}
	if !ok {
		g.edges++
		delete(g.sorted, u)
		delete(g.sorted, v)
	}
	g.adj[u][v] = w
	g.adj[v][u] = w
	g.onShrink(NewEdge(u, v, w))

	return true
}

// unlink deletes u–v, which must exist.
func (g *Graph) unlink(u, v int) {
	w := g.adj[u][v]
	delete(g.adj[u], v)
	delete(g.adj[v], u)
	delete(g.sorted, u)
	delete(g.sorted, v)
	g.edges--
	g.onGrow(NewEdge(u, v, w))
}

// RemoveEdge deletes the edge u–v. An endpoint left without edges is removed
// too, unless it is a terminal.
//
// Errors: ErrEdgeNotFound.
func (g *Graph) RemoveEdge(u, v int) error {
	if _, ok := g.adj[u][v]; !ok {
		return fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, u, v)
	}
	g.unlink(u, v)
	for _, x := range [2]int{u, v} {
		if len(g.adj[x]) == 0 && !g.IsTerminal(x) {
			_ = g.RemoveNode(x)
		}
	}

	return nil
}

// HasEdge reports whether u–v exists.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.adj[u][v]
	return ok
}

// Weight returns the weight of u–v.
func (g *Graph) Weight(u, v int) (int64, bool) {
	w, ok := g.adj[u][v]
	return w, ok
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return g.edges }

// Edges returns every edge once, normalized and sorted by (U, V).
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u, nbrs := range g.adj {
		for v, w := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v, Weight: w})
			}
		}
	}
	slices.SortFunc(out, compareEdges)

	return out
}

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() int64 {
	var sum int64
	for u, nbrs := range g.adj {
		for v, w := range nbrs {
			if u < v {
				sum += w
			}
		}
	}

	return sum
}
