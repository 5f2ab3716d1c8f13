// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// api.go - the public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves
//     cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate their parameters before touching g
// and return sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partial graph is discarded.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph, resolving bopts once.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}
