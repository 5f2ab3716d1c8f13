// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// impl_star.go - Star(n) and Wheel(n).
//
// Contract:
//   - Star: n ≥ 2; center index 0, spokes 0-i for i=1..n-1.
//   - Wheel: n ≥ 4; the star plus the rim 1-2-...-(n-1)-1.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import "github.com/katalvlaran/lvsteiner/core"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor that builds a star with center index 0.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		return spokes(g, cfg, methodStar, n)
	}
}

// Wheel returns a Constructor that builds the wheel W_n: a hub at index 0
// joined to every vertex of the rim cycle over indices 1..n-1.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, "n", n, minWheelNodes)
		}
		if err := spokes(g, cfg, methodWheel, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			next := i + 1
			if next == n {
				next = 1
			}
			if err := addEdge(g, cfg, methodWheel, i, next); err != nil {
				return err
			}
		}

		return nil
	}
}

func spokes(g *core.Graph, cfg builderConfig, method string, n int) error {
	if err := addVertices(g, cfg, method, n); err != nil {
		return err
	}
	for i := 1; i < n; i++ {
		if err := addEdge(g, cfg, method, 0, i); err != nil {
			return err
		}
	}

	return nil
}
