// Package decompose splits a Steiner instance at its bridges and solves the
// pieces independently.
//
// A bridge is an edge whose removal disconnects its component. Removing all
// bridges leaves the 2-edge-connected components, and the bridges connect
// those components in a forest. Cutting one bridge splits the terminals in
// two groups:
//
//   - if one side holds no terminal, no optimal tree enters it, so the whole
//     side is dropped;
//   - otherwise every Steiner tree uses the bridge. The bridge is required
//     and its endpoints become terminals of their components.
//
// Each remaining component is then an independent instance. Solve runs them
// concurrently through an errgroup bounded by Options.MaxConcurrency and
// joins the component trees with the required bridges. The optimum of the
// whole instance is the sum of the component optima plus the bridge
// weights.
//
// Split exposes the decomposition without solving, for inspection and for
// callers that schedule components themselves.
//
// Complexity:
//
//   - Split: O(V + E).
//   - Solve: Split plus the component solves, at most MaxConcurrency at a
//     time.
package decompose
