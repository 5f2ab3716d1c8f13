package prim_kruskal

import (
	"errors"
	"math"
)

// Inf marks a missing connection in a Prim matrix.
const Inf = math.MaxInt64

var (
	// ErrInvalidMatrix indicates a non-square matrix, a negative entry or an
	// asymmetric pair.
	ErrInvalidMatrix = errors.New("prim_kruskal: matrix must be square, symmetric and non-negative")

	// ErrInvalidEdge indicates a negative vertex id or weight in an edge list.
	ErrInvalidEdge = errors.New("prim_kruskal: edge has negative id or weight")

	// ErrDisconnected indicates that no spanning tree exists.
	ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")
)

// Edge is an undirected weighted edge between two non-negative vertex ids.
type Edge struct {
	U, V   int
	Weight int64
}

// DSU is a disjoint-set forest with path halving and union by size.
// Elements are the integers [0, n).
type DSU struct {
	parent []int
	size   []int
}

// NewDSU returns n singleton sets.
func NewDSU(n int) *DSU {
	d := &DSU{parent: make([]int, n), size: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// Find returns the representative of x's set.
func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets of a and b and reports whether they were distinct.
func (d *DSU) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]

	return true
}
