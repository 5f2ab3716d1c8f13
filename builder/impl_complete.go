// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// impl_complete.go - Complete(n) and Grid(rows, cols).
//
// Contract:
//   - Complete: n ≥ 1; edges i-j for i<j in lexicographic order.
//   - Grid: rows, cols ≥ 1; index r*cols+c; right neighbor first, then the
//     one below, row-major.
//
// Complexity:
//   - Complete: O(n) vertices + O(n²) edges.
//   - Grid: O(R*C) vertices + O(R*C) edges.

package builder

import "github.com/katalvlaran/lvsteiner/core"

const (
	methodComplete   = "Complete"
	methodGrid       = "Grid"
	minCompleteNodes = 1
	minGridDim       = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, "n", n, minCompleteNodes)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim {
			return tooFew(methodGrid, "rows", rows, minGridDim)
		}
		if cols < minGridDim {
			return tooFew(methodGrid, "cols", cols, minGridDim)
		}
		if err := addVertices(g, cfg, methodGrid, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, i, i+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, i, i+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
