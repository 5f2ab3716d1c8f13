// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach the method name and parameters with %w.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
	// below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor without an RNG
	// (set WithSeed or WithRand).
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrTooManyTerminals indicates a terminal request larger than the graph.
	ErrTooManyTerminals = errors.New("builder: more terminals than vertices")

	// ErrConstructFailed indicates a constructor that could not complete,
	// including nil constructors and core errors (e.g. a negative id from a
	// custom scheme).
	ErrConstructFailed = errors.New("builder: construction failed")
)
