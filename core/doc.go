// Package core provides the mutable Steiner instance shared by every other
// package: an undirected graph over non-negative integer vertex ids with
// non-negative int64 edge weights, a terminal set, and lazily recomputed
// derived views (shortest-path rows, nearest terminals, Voronoi regions,
// bottleneck Steiner distances, a greedy approximation).
//
// Model:
//
//   - At most one edge per vertex pair. Adding a cheaper parallel edge
//     replaces the dearer one; a dearer one is ignored.
//   - No self-loops (ErrSelfLoop), no negative weights (ErrNegativeWeight),
//     no negative ids (ErrBadVertex).
//   - Edges are reported normalized (U < V). Nodes(), Edges(), Neighbors()
//     and Terminals() are sorted, and ForEachNeighbor visits neighbors in
//     ascending id order, so every algorithm on top of core is deterministic.
//   - MaxID is a running maximum of every id ever added; dense per-vertex
//     arrays elsewhere are sized MaxID()+1.
//
// Derived views and their validity:
//
// Each view carries a CacheState. Mutations are classified as shrink events
// (an edge appears or gets cheaper, so distances can only decrease) or grow
// events (an edge disappears, so distances can only increase):
//
//	Valid      --shrink--> DirtyShrink      Valid       --grow--> DirtyGrow
//	DirtyGrow  --shrink--> Unknown          DirtyShrink --grow--> Unknown
//
// Unknown is sticky until the next read, and any read of a view that is not
// Valid recomputes it. The distance-row view is finer grained: on a
// single-direction event only the rows the changed edge can affect are
// evicted (rows where it improves a distance on shrink, rows where it is
// tight on grow); once the direction is ambiguous all rows are dropped.
// Terminal-set changes put every terminal-derived view into Unknown, and
// removing a vertex purges it from every view that mentions it.
//
// Contraction:
//
// ContractEdge(u, v) merges v into u and returns one EdgePair per edge that
// disappeared or changed. Undoing a contraction means removing every
// distinct New edge and adding every Old edge back; reduce.TerminalLeaf
// relies on this.
//
// Concurrency: a Graph is not safe for concurrent use; even reads update
// the caches. Callers that fan out (decompose) work on Clone or Subgraph
// copies.
package core
