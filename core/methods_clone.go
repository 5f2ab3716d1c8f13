// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copies and induced subgraphs. Copies start with cold caches.

package core

// Clone returns a deep copy of g's vertices, edges, terminals and options.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := NewGraph(WithQueue(g.queue), WithMaxRows(g.maxRows))
	c.maxID = g.maxID
	c.edges = g.edges
	for v, nbrs := range g.adj {
		m := make(map[int]int64, len(nbrs))
		for w, x := range nbrs {
			m[w] = x
		}
		c.adj[v] = m
	}
	for t := range g.terminals {
		c.terminals[t] = struct{}{}
	}

	return c
}

// Subgraph returns the subgraph induced by nodes, without the edges listed
// in skip (compared by endpoints). Terminal marks of kept vertices carry
// over; ids outside g are ignored.
//
// Complexity: O(Σ deg(v) for v in nodes).
func (g *Graph) Subgraph(nodes []int, skip []Edge) *Graph {
	s := NewGraph(WithQueue(g.queue), WithMaxRows(g.maxRows))
	keep := make(map[int]struct{}, len(nodes))
	for _, v := range nodes {
		if g.HasNode(v) {
			keep[v] = struct{}{}
			_ = s.AddNode(v)
			if g.IsTerminal(v) {
				s.terminals[v] = struct{}{}
			}
		}
	}
	skipped := make(map[[2]int]struct{}, len(skip))
	for _, e := range skip {
		n := NewEdge(e.U, e.V, 0)
		skipped[[2]int{n.U, n.V}] = struct{}{}
	}
	for u := range keep {
		for v, w := range g.adj[u] {
			if _, ok := keep[v]; !ok || u > v {
				continue
			}
			if _, ok := skipped[[2]int{u, v}]; ok {
				continue
			}
			s.link(u, v, w)
		}
	}
	s.cache.reset(s.maxRows)

	return s
}
