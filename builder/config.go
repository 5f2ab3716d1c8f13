// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn     = identity           (index i is vertex i)
//   - rng      = nil                (pure/deterministic unless seeded)
//   - weightFn = DefaultWeightFn    (constant DefaultEdgeWeight)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Vertex id strategy: index -> id.
	idFn func(int) int
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     identityID,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// identityID maps index i to vertex i.
func identityID(i int) int { return i }

// weight draws the next edge weight.
func (c builderConfig) weight() int64 { return c.weightFn(c.rng) }
