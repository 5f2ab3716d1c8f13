// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex id generator: index -> id. The generator
// must be injective and return non-negative ids. Panics on nil.
func WithIDScheme(fn func(int) int) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithOffset shifts every vertex id by k, so index i becomes i+k. Use it to
// place several constructors side by side in one graph, or WithOffset(1)
// for the 1-based ids of STP files. Panics on negative k.
func WithOffset(k int) BuilderOption {
	if k < 0 {
		panic(fmt.Sprintf("builder: WithOffset(%d): offset must be ≥ 0", k))
	}
	return WithIDScheme(func(i int) int { return i + k })
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U{min..max} via UniformWeightFn.
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
