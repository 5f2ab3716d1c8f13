// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2; edges (i-1)-i for i=1..n-1 in increasing order.
//   - Cycle: n ≥ 3; the path edges plus the closing edge (n-1)-0.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import "github.com/katalvlaran/lvsteiner/core"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		return chain(g, cfg, methodPath, n, false)
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		return chain(g, cfg, methodCycle, n, true)
	}
}

// chain emits 0-1-...-(n-1), closed into a ring when closed is set.
func chain(g *core.Graph, cfg builderConfig, method string, n int, closed bool) error {
	if err := addVertices(g, cfg, method, n); err != nil {
		return err
	}
	for i := 1; i < n; i++ {
		if err := addEdge(g, cfg, method, i-1, i); err != nil {
			return err
		}
	}
	if closed {
		return addEdge(g, cfg, method, n-1, 0)
	}

	return nil
}
