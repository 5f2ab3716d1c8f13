// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle and vertex queries.

package core

import (
	"fmt"
	"slices"
)

// AddNode adds an isolated vertex. Adding an existing vertex is a no-op.
//
// Complexity: O(1).
func (g *Graph) AddNode(v int) error {
	if v < 0 {
		return fmt.Errorf("%w: %d", ErrBadVertex, v)
	}
	if _, ok := g.adj[v]; ok {
		return nil
	}
	g.adj[v] = make(map[int]int64)
	if v > g.maxID {
		g.maxID = v
	}

	return nil
}

// HasNode reports whether v is a vertex of g.
func (g *Graph) HasNode(v int) bool {
	_, ok := g.adj[v]
	return ok
}

// RemoveNode deletes v with all incident edges and its terminal status.
//
// Complexity: O(deg(v) · R) where R is the number of cached distance rows.
func (g *Graph) RemoveNode(v int) error {
	nbrs, ok := g.adj[v]
	if !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	for _, x := range sortedKeys(nbrs) {
		g.unlink(v, x)
	}
	if _, ok = g.terminals[v]; ok {
		delete(g.terminals, v)
		g.onTerminalsChanged()
	}
	delete(g.adj, v)
	delete(g.sorted, v)
	g.purge(v)

	return nil
}

// Nodes returns all vertex ids in ascending order.
//
// Complexity: O(V log V).
func (g *Graph) Nodes() []int { return sortedKeys(g.adj) }

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.adj) }

// MaxID returns the largest vertex id ever added, or -1 for a fresh graph.
// It never decreases.
func (g *Graph) MaxID() int { return g.maxID }

// Degree returns the number of edges incident to v (0 for unknown vertices).
func (g *Graph) Degree(v int) int { return len(g.adj[v]) }

// Neighbors returns the neighbors of v in ascending order.
func (g *Graph) Neighbors(v int) []int {
	return slices.Clone(g.neighborIDs(v))
}

// ForEachNeighbor calls fn for every neighbor of v in ascending id order.
// fn must not mutate g.
func (g *Graph) ForEachNeighbor(v int, fn func(w int, weight int64)) {
	nbrs := g.adj[v]
	for _, w := range g.neighborIDs(v) {
		fn(w, nbrs[w])
	}
}

// neighborIDs returns the cached sorted neighbor list of v, rebuilding it if needed.
func (g *Graph) neighborIDs(v int) []int {
	if ids, ok := g.sorted[v]; ok {
		return ids
	}
	nbrs, ok := g.adj[v]
	if !ok {
		return nil
	}
	ids := sortedKeys(nbrs)
	g.sorted[v] = ids

	return ids
}
