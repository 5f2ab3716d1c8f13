// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// helpers.go - shared vertex/edge emission with uniform error context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

// addVertices inserts the vertices of indices 0..n-1.
// Re-adding an existing vertex is a no-op in core.Graph.
//
// Complexity: O(n).
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddNode(id); err != nil {
			return fmt.Errorf("%s: AddNode(%d): %w: %w", method, id, ErrConstructFailed, err)
		}
	}

	return nil
}

// addEdge connects indices i and j with the next configured weight.
func addEdge(g *core.Graph, cfg builderConfig, method string, i, j int) error {
	u, v, w := cfg.idFn(i), cfg.idFn(j), cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d, w=%d): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}

// tooFew reports a size parameter below its minimum.
func tooFew(method, name string, got, min int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
}
