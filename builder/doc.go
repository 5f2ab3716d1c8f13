// Package builder assembles deterministic Steiner instances for tests,
// benchmarks, examples and the "generate" command.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor:      a function that mutates a core.Graph using the
//     resolved builderConfig.
//     – BuildGraph:       creates a graph and applies constructors in order.
//   - Configuration primitives:
//     – BuilderOption:    a function that mutates builderConfig before use.
//     – WithIDScheme / WithOffset: index → vertex id mapping.
//     – WithSeed / WithRand: randomness for stochastic constructors.
//     – WithWeightFn, WithConstantWeight, WithUniformWeight: edge weights.
//   - Topologies: Path, Cycle, Star, Wheel, Complete, Grid, RandomConnected.
//   - Terminal selection: Terminals (fixed indices), RandomTerminals (k
//     distinct vertices drawn with the configured RNG).
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical
//     graphs.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     method name. Option constructors panic on meaningless input.
//   - RandomConnected always yields a connected graph, so every terminal
//     selection on it is solvable.
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 9)},
//		builder.Grid(4, 4),
//		builder.RandomTerminals(5),
//	)
package builder
