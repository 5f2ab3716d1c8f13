// SPDX-License-Identifier: MIT
//
// File: approx.go
// Role: Shortest-path heuristic upper bound and tree normalization.

package core

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvsteiner/dijkstra"
	"github.com/katalvlaran/lvsteiner/prim_kruskal"
)

// Approximation returns a Steiner tree built by the shortest-path heuristic:
// start from the smallest terminal, repeatedly attach the nearest
// unconnected terminal along a shortest path, then take a minimum spanning
// tree of the spanned vertices and strip non-terminal leaves.
//
// Errors: ErrNoTerminals, ErrDisconnected.
//
// Complexity: O(T · (V + E) log V) on recompute.
func (g *Graph) Approximation() (Tree, error) {
	c := &g.cache
	if c.state[ViewApproximation] != CacheValid {
		c.approx, c.approxErr = g.buildApproximation()
		c.state[ViewApproximation] = CacheValid
		c.recomputes[ViewApproximation]++
	}
	if c.approxErr != nil {
		return Tree{Node: -1}, c.approxErr
	}
	t := c.approx
	t.Edges = append([]Edge(nil), t.Edges...)

	return t, nil
}

func (g *Graph) buildApproximation() (Tree, error) {
	terms := g.Terminals()
	switch len(terms) {
	case 0:
		return Tree{Node: -1}, ErrNoTerminals
	case 1:
		return Tree{Node: terms[0]}, nil
	}

	spanned := map[int]struct{}{terms[0]: {}}
	open := make(map[int]struct{}, len(terms)-1)
	for _, t := range terms[1:] {
		open[t] = struct{}{}
	}
	for len(open) > 0 {
		res, err := dijkstra.Dijkstra(g,
			dijkstra.WithSources(sortedKeys(spanned)...),
			dijkstra.WithReturnPath(),
			dijkstra.WithQueue(g.queue))
		if err != nil {
			return Tree{Node: -1}, fmt.Errorf("core: approximation: %w", err)
		}
		next := -1
		for _, t := range sortedKeys(open) {
			if res.Reached(t) && (next == -1 || res.Dist[t] < res.Dist[next]) {
				next = t
			}
		}
		if next == -1 {
			return Tree{Node: -1}, fmt.Errorf("%w: %d terminals unreachable from %d", ErrDisconnected, len(open), terms[0])
		}
		for x := next; x != -1; x = res.Prev[x] {
			if _, ok := spanned[x]; ok {
				break
			}
			spanned[x] = struct{}{}
			delete(open, x)
		}
	}

	var edges []Edge
	for u := range spanned {
		for v, w := range g.adj[u] {
			if _, ok := spanned[v]; ok && u < v {
				edges = append(edges, Edge{U: u, V: v, Weight: w})
			}
		}
	}

	return SpanningTree(edges, g.IsTerminal)
}

// SpanningTree turns a connected edge set into a tree: a minimum spanning
// tree of the edges with leaves that fail keep removed until none remain.
// Edges are normalized and sorted in the result.
//
// Errors: ErrDisconnected if the edges do not form one component.
//
// Complexity: O(E log E).
func SpanningTree(edges []Edge, keep func(int) bool) (Tree, error) {
	edges = slices.Clone(edges)
	SortEdges(edges)
	in := make([]prim_kruskal.Edge, len(edges))
	for i, e := range edges {
		in[i] = prim_kruskal.Edge{U: e.U, V: e.V, Weight: e.Weight}
	}
	mst, _, err := prim_kruskal.Kruskal(in)
	if err != nil {
		if errors.Is(err, prim_kruskal.ErrDisconnected) {
			return Tree{Node: -1}, fmt.Errorf("%w: %v", ErrDisconnected, err)
		}
		return Tree{Node: -1}, fmt.Errorf("core: spanning tree: %w", err)
	}

	degree := make(map[int]int)
	adj := make(map[int][]int)
	for i, e := range mst {
		degree[e.U]++
		degree[e.V]++
		adj[e.U] = append(adj[e.U], i)
		adj[e.V] = append(adj[e.V], i)
	}
	removed := make([]bool, len(mst))
	var leaves []int
	for v, d := range degree {
		if d == 1 && !keep(v) {
			leaves = append(leaves, v)
		}
	}
	for len(leaves) > 0 {
		v := leaves[len(leaves)-1]
		leaves = leaves[:len(leaves)-1]
		if degree[v] != 1 {
			continue
		}
		for _, i := range adj[v] {
			if removed[i] {
				continue
			}
			removed[i] = true
			degree[v]--
			o := mst[i].U
			if o == v {
				o = mst[i].V
			}
			degree[o]--
			if degree[o] == 1 && !keep(o) {
				leaves = append(leaves, o)
			}
			break
		}
	}

	t := Tree{Node: -1}
	for i, e := range mst {
		if !removed[i] {
			t.Edges = append(t.Edges, NewEdge(e.U, e.V, e.Weight))
			t.Cost += e.Weight
		}
	}
	if len(t.Edges) == 0 {
		for v := range degree {
			if keep(v) && (t.Node == -1 || v < t.Node) {
				t.Node = v
			}
		}
	}
	SortEdges(t.Edges)

	return t, nil
}
