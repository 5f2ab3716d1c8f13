// SPDX-License-Identifier: MIT
//
// File: views.go
// Role: Lazily recomputed read accessors over the derived views.

package core

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvsteiner/dijkstra"
	"github.com/katalvlaran/lvsteiner/prim_kruskal"
)

// Lengths returns the shortest-path distances from u, indexed by vertex id.
// Ids at or past the end of the row are unreachable, as are entries equal
// to Inf. The row is shared with the cache and must not be modified.
//
// At most the configured number of rows (WithMaxRows) is kept; the least
// recently read row goes first.
//
// Complexity: O(1) when cached, one Dijkstra run otherwise.
func (g *Graph) Lengths(u int) ([]int64, error) {
	if !g.HasNode(u) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, u)
	}
	c := &g.cache
	c.state[ViewDistances] = CacheValid
	if row, ok := c.rows.Get(u); ok {
		return row, nil
	}
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(u), dijkstra.WithQueue(g.queue))
	if err != nil {
		return nil, fmt.Errorf("core: distances from %d: %w", u, err)
	}
	c.rows.Add(u, res.Dist)
	c.recomputes[ViewDistances]++

	return res.Dist, nil
}

// Distance returns the shortest-path distance between u and v, Inf if
// they are not connected.
func (g *Graph) Distance(u, v int) (int64, error) {
	if !g.HasNode(v) {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	row, err := g.Lengths(u)
	if err != nil {
		return 0, err
	}

	return rowAt(row, v), nil
}

// Closest returns the terminals reachable from v ordered by distance, ties
// by terminal id. The slice is shared with the cache.
//
// Complexity: O(T · (V + E) log V) on recompute.
func (g *Graph) Closest(v int) ([]TerminalDistance, error) {
	if !g.HasNode(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	c := &g.cache
	if c.state[ViewClosest] != CacheValid {
		closest := make(map[int][]TerminalDistance, len(g.adj))
		for _, t := range g.Terminals() {
			row, err := g.Lengths(t)
			if err != nil {
				return nil, err
			}
			for x := range g.adj {
				if d := rowAt(row, x); d != Inf {
					closest[x] = append(closest[x], TerminalDistance{Terminal: t, Distance: d})
				}
			}
		}
		for _, list := range closest {
			slices.SortFunc(list, func(a, b TerminalDistance) int {
				if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
					return c
				}
				return cmp.Compare(a.Terminal, b.Terminal)
			})
		}
		c.closest = closest
		c.state[ViewClosest] = CacheValid
		c.recomputes[ViewClosest]++
	}

	return c.closest[v], nil
}

// Voronoi returns, for every terminal, the sorted vertices that are at least
// as close to it as to any other terminal (ties to the smaller terminal id).
// Vertices reaching no terminal appear in no region. The map is shared with
// the cache.
//
// Complexity: one multi-source Dijkstra run on recompute.
func (g *Graph) Voronoi() (map[int][]int, error) {
	c := &g.cache
	if c.state[ViewVoronoi] == CacheValid {
		return c.voronoi, nil
	}
	terms := g.Terminals()
	regions := make(map[int][]int, len(terms))
	if len(terms) > 0 {
		res, err := dijkstra.Dijkstra(g, dijkstra.WithSources(terms...), dijkstra.WithQueue(g.queue))
		if err != nil {
			return nil, fmt.Errorf("core: voronoi: %w", err)
		}
		for _, x := range g.Nodes() {
			if o := res.Origin[x]; o >= 0 {
				regions[o] = append(regions[o], x)
			}
		}
	}
	c.voronoi = regions
	c.state[ViewVoronoi] = CacheValid
	c.recomputes[ViewVoronoi]++

	return regions, nil
}

// SteinerLength returns the bottleneck Steiner distance between terminals
// t1 and t2: the largest edge on the t1–t2 path of a minimum spanning tree
// of the terminal distance graph. Inf if they are disconnected.
//
// Complexity: O(T · (V + E) log V + T²) on recompute.
func (g *Graph) SteinerLength(t1, t2 int) (int64, error) {
	for _, t := range [2]int{t1, t2} {
		if !g.IsTerminal(t) {
			return 0, fmt.Errorf("%w: %d", ErrNotTerminal, t)
		}
	}
	c := &g.cache
	if c.state[ViewSteinerLength] != CacheValid {
		table, err := g.buildSteinerTable()
		if err != nil {
			return 0, err
		}
		c.steiner = table
		c.state[ViewSteinerLength] = CacheValid
		c.recomputes[ViewSteinerLength]++
	}

	return c.steiner.dist[c.steiner.index[t1]][c.steiner.index[t2]], nil
}

func (g *Graph) buildSteinerTable() (steinerTable, error) {
	terms := g.Terminals()
	n := len(terms)
	table := steinerTable{index: make(map[int]int, n), dist: make([][]int64, n)}
	for i, t := range terms {
		table.index[t] = i
	}

	var edges []prim_kruskal.Edge
	for i, t := range terms {
		row, err := g.Lengths(t)
		if err != nil {
			return table, err
		}
		for j := i + 1; j < n; j++ {
			if d := rowAt(row, terms[j]); d != Inf {
				edges = append(edges, prim_kruskal.Edge{U: i, V: j, Weight: d})
			}
		}
	}
	forest, _, err := prim_kruskal.Kruskal(edges)
	if err != nil && !errors.Is(err, prim_kruskal.ErrDisconnected) {
		return table, fmt.Errorf("core: terminal tree: %w", err)
	}

	type arc struct {
		to int
		w  int64
	}
	tree := make([][]arc, n)
	for _, e := range forest {
		tree[e.U] = append(tree[e.U], arc{e.V, e.Weight})
		tree[e.V] = append(tree[e.V], arc{e.U, e.Weight})
	}
	for s := 0; s < n; s++ {
		row := make([]int64, n)
		for i := range row {
			row[i] = Inf
		}
		row[s] = 0
		stack := []int{s}
		for len(stack) > 0 {
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, a := range tree[x] {
				if row[a.to] == Inf {
					row[a.to] = max(row[x], a.w)
					stack = append(stack, a.to)
				}
			}
		}
		table.dist[s] = row
	}

	return table, nil
}
