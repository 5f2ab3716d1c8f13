package dualascent

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvsteiner/dijkstra"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dualascent: graph is nil")

	// ErrVertexNotFound indicates a root or terminal that is not in the graph.
	ErrVertexNotFound = errors.New("dualascent: vertex not found")

	// ErrDisconnected indicates a terminal that the root cannot reach.
	ErrDisconnected = errors.New("dualascent: terminal unreachable from root")
)

// Graph is the undirected input view; it is the same contract Dijkstra uses.
type Graph = dijkstra.Graph

// Result is the outcome of Compute.
type Result struct {
	// LowerBound never exceeds the cost of a Steiner tree for the terminals.
	LowerBound int64
	// Residual holds the reduced arc costs left by the ascent.
	Residual *Digraph
}

// Options configures Compute.
type Options struct {
	// Ctx is checked once per processed cut.
	Ctx context.Context
}

// Option configures Compute via functional arguments.
type Option func(*Options)

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}
