package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvsteiner/pq"
)

// Inf marks an unreachable vertex in Result.Dist.
const Inf = math.MaxInt64

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates that a nil Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoSource indicates that no source vertex was configured.
	ErrNoSource = errors.New("dijkstra: no source vertex")

	// ErrVertexNotFound indicates that a source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was met during relaxation.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a negative value.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Graph is the read-only view Dijkstra needs.
//
// MaxID bounds every vertex id (ids are in [0, MaxID]); it is -1 for an empty graph.
// ForEachNeighbor calls fn once per arc leaving v.
type Graph interface {
	MaxID() int
	HasNode(v int) bool
	ForEachNeighbor(v int, fn func(w int, weight int64))
}

// Options configures a run.
//
// Sources          – one or more start vertices (at least one is required).
// ReturnPath       – if true, Result.Prev is filled.
// MaxDistance      – vertices farther than this are left unreached. Must be ≥ 0.
// InfEdgeThreshold – edges with weight ≥ this are skipped. Must be > 0.
// Queue            – priority queue selection, see pq.New.
type Options struct {
	Sources          []int
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
	Queue            pq.Options
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source adds v to the source set.
func Source(v int) Option {
	return func(o *Options) {
		o.Sources = append(o.Sources, v)
	}
}

// WithSources adds every vertex of vs to the source set.
func WithSources(vs ...int) Option {
	return func(o *Options) {
		o.Sources = append(o.Sources, vs...)
	}
}

// WithReturnPath enables predecessor recording.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration. Panics on a negative bound.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold makes edges with weight ≥ threshold impassable.
// Panics on a threshold ≤ 0.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithQueue selects the priority queue parameters.
func WithQueue(q pq.Options) Option {
	return func(o *Options) {
		o.Queue = q
	}
}

// DefaultOptions returns options with no sources, no predecessor map,
// no distance cap, no impassable edges and pq.DefaultOptions.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Inf,
		InfEdgeThreshold: Inf,
		Queue:            pq.DefaultOptions(),
	}
}

// Result holds per-vertex outcomes indexed by vertex id.
//
// Dist[v]   – shortest distance from the nearest source, Inf if unreached.
// Prev[v]   – predecessor on one shortest path, -1 at sources and unreached
//
//	vertices; nil unless ReturnPath was set.
//
// Origin[v] – the source whose region v belongs to, -1 if unreached.
type Result struct {
	Dist   []int64
	Prev   []int
	Origin []int
}

// Reached reports whether v was reached.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Inf
}

// Distance returns Dist[v], or Inf for ids outside the result.
func (r *Result) Distance(v int) int64 {
	if v < 0 || v >= len(r.Dist) {
		return Inf
	}

	return r.Dist[v]
}

// Path returns the vertices from v's origin to v, or nil when v is unreached
// or predecessors were not recorded.
func (r *Result) Path(v int) []int {
	if !r.Reached(v) || r.Prev == nil {
		return nil
	}
	var path []int
	for u := v; u != -1; u = r.Prev[u] {
		path = append(path, u)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
