// Package dualascent computes Wong's dual-ascent lower bound for the Steiner
// tree problem and exposes the resulting reduced-cost digraph.
//
// The undirected instance is turned into a digraph with both arc directions.
// For every non-root terminal t an open cut is kept: the set of vertices
// that reach t through arcs whose residual (reduced) cost is zero. Cuts are
// processed smallest first. On each pop:
//
//   - the cut is dropped if it contains the root or another open terminal;
//   - otherwise delta = the minimum residual over arcs entering the cut is
//     added to the bound and subtracted from every entering arc, which
//     saturates at least one arc and grows the cut on its next pop.
//
// Every raised cut separates the root from a terminal, so the bound never
// exceeds the cost of any Steiner tree. When the loop ends every terminal is
// reachable from the root through zero-residual arcs.
//
// Residual distances (Digraph.DistancesFrom and Digraph.DistancesToTerminals)
// drive reduced-cost reductions: a non-terminal v cannot be in any tree
// cheaper than UB when LowerBound + d̄(root, v) + d̄(v, terminals) > UB.
//
// Complexity: O(T · V · (V + E)) in the worst case, far less in practice
// because cuts grow by whole zero-residual components.
package dualascent
