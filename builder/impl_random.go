// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// impl_random.go - RandomConnected(n, p).
//
// Contract:
//   - n ≥ 1, 0 ≤ p ≤ 1, rng required (ErrNeedRandSource).
//   - First a random recursive tree: index i attaches to a uniform j < i,
//     for i = 1..n-1. Then every other pair {i,j}, i<j in lexicographic
//     order, is added with probability p.
//   - The result is always connected.
//
// Complexity: O(n) vertices + O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

const (
	methodRandomConnected = "RandomConnected"
	minRandomNodes        = 1
)

// RandomConnected returns a Constructor that samples a connected graph on n
// vertices: a random spanning tree plus independent extra edges.
func RandomConnected(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return tooFew(methodRandomConnected, "n", n, minRandomNodes)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomConnected, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, methodRandomConnected, n); err != nil {
			return err
		}

		parent := make([]int, n)
		for i := 1; i < n; i++ {
			parent[i] = cfg.rng.Intn(i)
			if err := addEdge(g, cfg, methodRandomConnected, parent[i], i); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if parent[j] == i {
					continue
				}
				if cfg.rng.Float64() < p {
					if err := addEdge(g, cfg, methodRandomConnected, i, j); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
