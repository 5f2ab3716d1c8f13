// Package steiner solves the Steiner tree problem exactly with a best-first
// label-setting search over (vertex, terminal subset) states, a
// Dreyfus–Wagner recurrence evaluated in Dijkstra order.
//
// One terminal is the root (the smallest terminal unless WithRoot says
// otherwise); the other T-1 terminals get bits 0..T-2 in ascending id order.
// A label (v, S) is the cheapest known tree that contains v and the
// terminals of S. The search:
//
//  1. seeds (t, {t}) at cost 0 for every non-root terminal t;
//  2. pops the open label with the smallest priority cost + h(v, S) and
//     settles it;
//  3. extends it across every edge (w, S) at cost + w(v, w);
//  4. merges it with every label (v, S') already settled at v whose subset
//     is disjoint from S, giving (v, S ∪ S') at the summed cost;
//  5. stops when (root, all) settles and rebuilds the tree from the
//     backtrack of each label: a leaf, an edge step from a neighbor, or a
//     merge of two subsets.
//
// Disjoint partners at a vertex are enumerated through a labelstore.Store
// (or a plain scan when WithLabelStore(false)).
//
// Lower bounds:
//
//   - 1-tree bound: ½(MST(R) + d(v, t) + d(v, t')) where R is the
//     complement of S with the root and t, t' are the two terminals of R
//     nearest to v, all in the terminal distance metric. It drops by at most
//     w(u, v) across an edge and never drops across a merge, so it orders
//     the queue and priorities never go below the last settled one.
//   - MST bound: floor(MST(R ∪ {v}) / 2). It is admissible but not
//     monotone along edges and is only used for pruning.
//   - Dual-ascent bound: LB(complement) + d̄(root, v) from a dual-ascent run
//     rooted at the root over the complement terminals, cached per subset.
//     It is admissible but not consistent and is only used for pruning.
//
// Pruning drops a label when cost + max(bounds) exceeds the best known
// solution (the shortest-path approximation, tightened by settled full
// labels). With WithSubsetBound(true) it also drops (v, S) when its cost
// exceeds the cheapest known tree joining S to one terminal outside S; an
// optimal tree never contains such a subtree, because swapping it for that
// tree would keep every terminal connected for less.
//
// The search is single-threaded and is not cancelled midway; SolveWithin
// bounds a whole solve by a context instead.
//
// Complexity: O(3^T · V + 2^T · (V + E) log V) labels and relaxations in
// the worst case; the bounds usually cut this by orders of magnitude.
package steiner
