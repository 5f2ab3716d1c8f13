// Package prim_kruskal computes minimum spanning trees on the two input
// shapes the Steiner tools need.
//
//   - Prim(dist) runs the dense O(n²) variant on a square metric matrix.
//     The solver uses it on terminal-distance matrices, where every pair
//     is connected and a heap would only add overhead.
//
//   - Kruskal(edges) sorts an explicit edge list and merges components with
//     a union-find (DSU). It is used to normalize edge sets into trees and
//     to span the vertex set of an approximation.
//
// Determinism: Kruskal sorts stably by weight, so equal-weight edges are
// taken in input order; Prim breaks ties toward the smaller index.
//
// Complexity:
//
//   - Prim:    Time O(n²), Space O(n).
//   - Kruskal: Time O(E log E + α(V)·E), Space O(V + E).
//
// Errors: ErrInvalidMatrix, ErrInvalidEdge, ErrDisconnected.
package prim_kruskal
