// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// impl_terminals.go - terminal selection.
//
// Contract:
//   - Terminals(idx...): marks cfg.idFn(i) for each index; every vertex
//     must already exist (ErrConstructFailed otherwise).
//   - RandomTerminals(k): 1 ≤ k ≤ NodeCount, rng required; draws k distinct
//     vertices from the sorted vertex list with a partial Fisher-Yates
//     shuffle, so the choice depends only on the seed and the vertex set.
//
// Complexity: O(k) for Terminals, O(V) for RandomTerminals.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

const (
	methodTerminals       = "Terminals"
	methodRandomTerminals = "RandomTerminals"
)

// Terminals returns a Constructor that marks the vertices of the given
// indices as terminals.
func Terminals(idx ...int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, i := range idx {
			v := cfg.idFn(i)
			if !g.HasNode(v) {
				return fmt.Errorf("%s: vertex %d (index %d) not in graph: %w", methodTerminals, v, i, ErrConstructFailed)
			}
			if err := g.AddTerminal(v); err != nil {
				return fmt.Errorf("%s: AddTerminal(%d): %w: %w", methodTerminals, v, ErrConstructFailed, err)
			}
		}

		return nil
	}
}

// RandomTerminals returns a Constructor that marks k distinct random
// vertices of the graph as terminals. Vertices that already are terminals
// may be drawn again, so the terminal count grows by at most k.
func RandomTerminals(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < 1 {
			return tooFew(methodRandomTerminals, "k", k, 1)
		}
		nodes := g.Nodes()
		if k > len(nodes) {
			return fmt.Errorf("%s: k=%d > %d vertices: %w", methodRandomTerminals, k, len(nodes), ErrTooManyTerminals)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomTerminals, ErrNeedRandSource)
		}
		for i := 0; i < k; i++ {
			j := i + cfg.rng.Intn(len(nodes)-i)
			nodes[i], nodes[j] = nodes[j], nodes[i]
			if err := g.AddTerminal(nodes[i]); err != nil {
				return fmt.Errorf("%s: AddTerminal(%d): %w: %w", methodRandomTerminals, nodes[i], ErrConstructFailed, err)
			}
		}

		return nil
	}
}
