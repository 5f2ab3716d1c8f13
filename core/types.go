// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, value types (Edge, Tree, EdgePair, TerminalDistance),
//       view identifiers and the Graph struct with its options.

package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvsteiner/pq"
)

// Inf is the distance reported for unreachable vertices.
const Inf = math.MaxInt64

// DefaultMaxRows is the default bound on cached distance rows.
const DefaultMaxRows = 1024

// Sentinel errors for core graph operations.
var (
	// ErrBadVertex indicates a negative vertex id.
	ErrBadVertex = errors.New("core: vertex id must be non-negative")

	// ErrSelfLoop indicates an edge from a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNegativeWeight indicates an edge with a negative weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNotTerminal indicates a terminal-only query on a non-terminal vertex.
	ErrNotTerminal = errors.New("core: vertex is not a terminal")

	// ErrNoTerminals indicates a terminal-derived view on a graph without terminals.
	ErrNoTerminals = errors.New("core: graph has no terminals")

	// ErrDisconnected indicates that some terminals cannot reach each other.
	ErrDisconnected = errors.New("core: terminals are disconnected")
)

// Edge is an undirected weighted edge, normalized so that U < V.
type Edge struct {
	U, V   int
	Weight int64
}

// NewEdge returns the normalized edge between a and b.
func NewEdge(a, b int, w int64) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b, Weight: w}
}

// Other returns the endpoint of e that is not x.
func (e Edge) Other(x int) int {
	if e.U == x {
		return e.V
	}

	return e.U
}

// String renders the edge as "u-v(w)".
func (e Edge) String() string { return fmt.Sprintf("%d-%d(%d)", e.U, e.V, e.Weight) }

// Tree is a solution: a set of edges and its total weight.
// Node names the single vertex of an edgeless tree and is -1 otherwise.
type Tree struct {
	Edges []Edge
	Cost  int64
	Node  int
}

// Nodes returns the sorted vertex set of t.
func (t Tree) Nodes() []int {
	if len(t.Edges) == 0 {
		if t.Node >= 0 {
			return []int{t.Node}
		}
		return nil
	}
	seen := make(map[int]struct{}, len(t.Edges)+1)
	for _, e := range t.Edges {
		seen[e.U] = struct{}{}
		seen[e.V] = struct{}{}
	}

	return sortedKeys(seen)
}

// EdgePair records one edge affected by a contraction.
// New is nil when Old simply disappeared. Two pairs may share the same New
// when a cheaper moved edge replaced an existing one.
type EdgePair struct {
	Old Edge
	New *Edge
}

// TerminalDistance is one entry of a Closest list.
type TerminalDistance struct {
	Terminal int
	Distance int64
}

// View identifies a derived view.
type View int

const (
	ViewDistances View = iota
	ViewClosest
	ViewVoronoi
	ViewSteinerLength
	ViewApproximation
	viewCount
)

func (v View) String() string {
	switch v {
	case ViewDistances:
		return "distances"
	case ViewClosest:
		return "closest"
	case ViewVoronoi:
		return "voronoi"
	case ViewSteinerLength:
		return "steiner-length"
	case ViewApproximation:
		return "approximation"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

// Graph is an undirected Steiner instance. The zero value is not usable;
// construct with NewGraph.
type Graph struct {
	adj       map[int]map[int]int64
	sorted    map[int][]int // ascending neighbor ids, rebuilt lazily per vertex
	terminals map[int]struct{}
	edges     int
	maxID     int
	queue     pq.Options
	maxRows   int
	cache     cache
}

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithQueue sets the priority queue used by the distance views.
func WithQueue(o pq.Options) GraphOption {
	return func(g *Graph) { g.queue = o }
}

// WithMaxRows bounds the number of cached distance rows. Panics if n < 1.
func WithMaxRows(n int) GraphOption {
	if n < 1 {
		panic(fmt.Sprintf("core: WithMaxRows(%d): need n >= 1", n))
	}
	return func(g *Graph) { g.maxRows = n }
}

// NewGraph returns an empty graph.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adj:       make(map[int]map[int]int64),
		sorted:    make(map[int][]int),
		terminals: make(map[int]struct{}),
		maxID:     -1,
		queue:     pq.DefaultOptions(),
		maxRows:   DefaultMaxRows,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.cache.reset(g.maxRows)

	return g
}
