// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// weight_fn.go - edge-weight distributions.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 { return value }
}

// UniformWeightFn returns a WeightFn sampling uniformly from the integers
// in [min, max]. Panics if min < 0 or max < min. With a nil RNG it yields
// min.
//
// Complexity: O(1).
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		if span := max - min; span < math.MaxInt64 {
			return min + rng.Int63n(span+1)
		}
		return rng.Int63()
	}
}
