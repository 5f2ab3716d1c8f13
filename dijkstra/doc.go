// Package dijkstra implements Dijkstra's shortest-path algorithm on graphs
// with integer vertex ids and non-negative int64 edge weights.
//
// Overview:
//
//   - The graph is any value satisfying Graph: a maximum id bound, a
//     membership test and a neighbor iterator. core.Graph, the residual
//     digraph of dualascent and test fixtures all implement it.
//   - One or more sources may be given. With several sources every vertex is
//     labelled with the source that reaches it first (its Origin), which
//     yields Voronoi regions and nearest-terminal queries in one run.
//   - The frontier is a keyed pq.Queue with true decrease-key: a d-ary heap by
//     default, or a bucket queue when MaxDistance bounds the priorities and
//     the graph is small (see pq.New).
//
// Key features:
//
//   - ReturnPath: record predecessors so that Result.Path can rebuild routes.
//   - MaxDistance: stop exploring beyond a given distance.
//   - InfEdgeThreshold: treat edges with weight ≥ threshold as impassable.
//
// Ties between sources at equal distance go to the smaller source id, so the
// Origin labelling is deterministic whenever the neighbor iteration is.
//
// Complexity:
//
//   - Time:  O((V + E) · log_d V) with the heap; O(V + E + D) with the bucket
//     queue, D being the distance bound.
//   - Space: O(V) dense arrays sized by Graph.MaxID.
//
// Errors (sentinel):
//
//   - ErrNilGraph, ErrNoSource, ErrVertexNotFound, ErrNegativeWeight.
//   - ErrBadMaxDistance, ErrBadInfThreshold are raised by panics in the
//     corresponding option constructors.
package dijkstra
