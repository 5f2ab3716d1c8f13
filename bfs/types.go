package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. A non-nil error aborts the walk.
	OnVisit func(v, depth int) error

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor int) bool
}

// DefaultOptions returns a background context, no filter and a no-op
// visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices in visit sequence.
//   - Depth: hop distance from the start.
//   - Parent: predecessor in the BFS tree (the start has none).
type Result struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// PathTo returns the start→dest vertex sequence, or nil if dest was not visited.
func (r *Result) PathTo(dest int) []int {
	if _, ok := r.Depth[dest]; !ok {
		return nil
	}
	path := []int{dest}
	for v := dest; ; {
		p, ok := r.Parent[v]
		if !ok {
			break
		}
		path = append(path, p)
		v = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
