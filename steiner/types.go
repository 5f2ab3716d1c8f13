package steiner

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/pq"
)

// MaxTerminals is the largest terminal count Solve accepts: the non-root
// terminals must fit a 63-bit subset id.
const MaxTerminals = 64

// Sentinel errors returned by Solve.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("steiner: graph is nil")

	// ErrNoTerminals indicates a graph without terminals.
	ErrNoTerminals = errors.New("steiner: graph has no terminals")

	// ErrBadRoot indicates a root that is not a terminal.
	ErrBadRoot = errors.New("steiner: root is not a terminal")

	// ErrTooManyTerminals indicates more than MaxTerminals terminals.
	ErrTooManyTerminals = errors.New("steiner: too many terminals")

	// ErrDisconnected indicates terminals in different components.
	ErrDisconnected = errors.New("steiner: terminals are disconnected")

	// ErrInvariant indicates a broken internal invariant; the solve is aborted.
	ErrInvariant = errors.New("steiner: invariant violated")

	// ErrTimeout indicates that a solve did not finish within its context.
	ErrTimeout = errors.New("steiner: no result within the time budget")
)

// Options configures Solve.
//
//	Root                – terminal used as the search root; -1 picks the smallest.
//	Queue               – priority queue selection, see pq.New.
//	MSTHeuristic        – order the queue by cost + 1-tree bound; prune with the MST bound.
//	DualAscentHeuristic – prune with the per-subset dual-ascent bound.
//	LabelStore          – enumerate merge partners through a labelstore.Store.
//	SubsetBound         – prune labels costlier than their subset's upper bound.
//	Logger              – destination for debug logs.
type Options struct {
	Root                int
	Queue               pq.Options
	MSTHeuristic        bool
	DualAscentHeuristic bool
	LabelStore          bool
	SubsetBound         bool
	Logger              *slog.Logger
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// DefaultOptions returns the smallest-terminal root, default queues, the MST
// bound, the label store and subset-bound pruning. The dual-ascent bound
// runs one ascent per reached subset and is off by default.
func DefaultOptions() Options {
	return Options{
		Root:         -1,
		Queue:        pq.DefaultOptions(),
		MSTHeuristic: true,
		LabelStore:   true,
		SubsetBound:  true,
		Logger:       slog.Default(),
	}
}

// WithRoot fixes the root terminal.
func WithRoot(v int) Option {
	return func(o *Options) { o.Root = v }
}

// WithQueue sets the priority queue selection for the search.
func WithQueue(q pq.Options) Option {
	return func(o *Options) { o.Queue = q }
}

// WithMSTHeuristic switches the 1-tree and MST bounds.
func WithMSTHeuristic(on bool) Option {
	return func(o *Options) { o.MSTHeuristic = on }
}

// WithDualAscentHeuristic switches the dual-ascent bound.
func WithDualAscentHeuristic(on bool) Option {
	return func(o *Options) { o.DualAscentHeuristic = on }
}

// WithLabelStore switches between the trie and a linear scan for merge partners.
func WithLabelStore(on bool) Option {
	return func(o *Options) { o.LabelStore = on }
}

// WithSubsetBound switches subset-bound pruning.
func WithSubsetBound(on bool) Option {
	return func(o *Options) { o.SubsetBound = on }
}

// WithLogger sets the logger; nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Stats describes one search.
type Stats struct {
	Terminals    int
	Labels       int   // labels created
	Settled      int   // labels settled
	Merges       int   // merge candidates accepted into the queue
	PrunedBound  int   // candidates dropped by cost + bound > upper bound
	PrunedSubset int   // candidates dropped by the subset bound
	UpperBound   int64 // cost of the starting approximation
	Elapsed      time.Duration
}

// Result is a solved instance.
type Result struct {
	Tree  core.Tree
	Stats Stats
}
