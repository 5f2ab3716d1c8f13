package decompose

import (
	"context"
	"errors"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/lvsteiner/core"
)

var (
	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("decompose: graph is nil")

	// ErrNilSolver is returned when Solve gets no component solver.
	ErrNilSolver = errors.New("decompose: solve function is nil")

	// ErrNoTerminals is returned when the graph has no terminal.
	ErrNoTerminals = errors.New("decompose: graph has no terminals")

	// ErrDisconnected is returned when the terminals span several components.
	ErrDisconnected = errors.New("decompose: terminals are disconnected")
)

// SolveFunc solves one component. The graph belongs to the call and may be
// modified by it.
type SolveFunc func(ctx context.Context, g *core.Graph) (core.Tree, error)

// Options configures Solve.
type Options struct {
	// MaxConcurrency bounds the components solved at once; values below 1
	// mean one.
	MaxConcurrency int

	// Logger receives per-component progress at debug level.
	Logger *slog.Logger
}

// DefaultOptions returns one worker per usable CPU and the default logger.
func DefaultOptions() Options {
	return Options{
		MaxConcurrency: runtime.GOMAXPROCS(0),
		Logger:         slog.Default(),
	}
}

// Option mutates Options.
type Option func(*Options)

// WithMaxConcurrency bounds the number of concurrent component solves.
func WithMaxConcurrency(n int) Option {
	return func(o *Options) { o.MaxConcurrency = n }
}

// WithLogger sets the logger; nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Plan is the outcome of Split.
type Plan struct {
	// Parts are the components that still need solving, each a private
	// induced subgraph carrying its original and promoted terminals.
	Parts []*core.Graph

	// Required are the bridges every Steiner tree contains.
	Required []core.Edge

	// Bridges counts every bridge of the input graph.
	Bridges int

	// Dropped counts the vertices left out of every part.
	Dropped int
}

// Result is the outcome of Solve.
type Result struct {
	Tree core.Tree
	Plan Plan
}
