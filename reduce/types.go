package reduce

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvsteiner/core"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("reduce: graph is nil")

	// ErrNotRun indicates Restore on a pipeline that never ran.
	ErrNotRun = errors.New("reduce: pipeline has not run")

	// ErrRestore indicates a restored tree that does not fit the original graph.
	ErrRestore = errors.New("reduce: restored tree is invalid")

	// ErrUnknownRule indicates a rule name RuleByName does not know.
	ErrUnknownRule = errors.New("reduce: unknown rule")
)

// Rule is one reduction.
//
// Reduce changes g and returns the number of eliminated elements. changes is
// what earlier rules eliminated in the current pass; lastPass is set on the
// final pass. When ctx ends, Reduce stops at a point where g is consistent
// and returns its partial count with the context error.
//
// PostProcess maps a solution of the reduced graph one step back towards the
// original and reports whether it changed the tree.
type Rule interface {
	Name() string
	Reduce(ctx context.Context, g *core.Graph, changes int, lastPass bool) (int, error)
	PostProcess(tree core.Tree) (core.Tree, bool, error)
}

// Default pipeline knobs.
const (
	DefaultMaxPasses   = 8
	DefaultThreshold   = 0.01
	DefaultRuleTimeout = 10 * time.Second
)

// Pipeline runs rules over one instance.
//
//	Rules       – applied in order on every pass.
//	MaxPasses   – upper limit on passes.
//	Threshold   – a pass continues the loop only if it eliminated more than
//	              Threshold × (nodes + edges) elements.
//	RuleTimeout – budget of one rule call; zero means none.
//	Logger      – destination for run logs.
type Pipeline struct {
	Rules       []Rule
	MaxPasses   int
	Threshold   float64
	RuleTimeout time.Duration
	Logger      *slog.Logger

	original *core.Graph
	changes  int
}

// RuleRun describes one rule call.
type RuleRun struct {
	Pass     int
	Rule     string
	Count    int
	TimedOut bool
	Elapsed  time.Duration
}

// Report summarizes Run.
type Report struct {
	Passes      int
	Runs        []RuleRun
	Eliminated  int
	NodesBefore int
	EdgesBefore int
	NodesAfter  int
	EdgesAfter  int
}

// DefaultRules returns fresh instances of every rule, cheapest first.
func DefaultRules() []Rule {
	return []Rule{&DegreeOne{}, &DegreeTwo{}, &TerminalLeaf{}, &LongEdge{}, &DualAscent{}}
}

// RuleByName returns a fresh rule for one of the names reported by Name.
func RuleByName(name string) (Rule, error) {
	for _, r := range DefaultRules() {
		if r.Name() == name {
			return r, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
}

// NewPipeline returns a pipeline over rules (DefaultRules when none are
// given) with the default knobs.
func NewPipeline(rules ...Rule) *Pipeline {
	if len(rules) == 0 {
		rules = DefaultRules()
	}

	return &Pipeline{
		Rules:       rules,
		MaxPasses:   DefaultMaxPasses,
		Threshold:   DefaultThreshold,
		RuleTimeout: DefaultRuleTimeout,
		Logger:      slog.Default(),
	}
}
