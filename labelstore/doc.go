// Package labelstore records subset ids (bitmasks over at most 64 terminals)
// and enumerates the stored ids that are disjoint from a query mask.
//
// The exact Steiner search keeps one Store per vertex holding the subsets
// already settled there; when a new label (v, S) settles, every stored
// subset S' with S ∩ S' = ∅ is a merge partner. A flat list would test every
// entry; the store instead skips whole groups of ids that share a
// conflicting bit.
//
// Structure:
//
//	A path-compressed binary radix tree over the id bits, least-significant
//	bit first, all ids of the same fixed width W. Every node carries the run
//	of bits it compresses as an absolute-position (mask, bits) pair; its two
//	children are selected by the bit just after the run (the branch bit).
//	A node whose run reaches bit W is a stored id.
//
// Disjoint(q) walks the tree depth-first and drops a subtree as soon as its
// run, or the branch bit leading to it, shares a set bit with q.
//
// Complexity:
//
//   - Insert, Contains: O(W).
//   - Disjoint: O(W · (k + 1)) for k yielded ids in the worst case, usually
//     far less because conflicting subtrees are cut at their root.
//   - Memory: at most 2n-1 nodes for n ids.
//
// A Store is not safe for concurrent use.
package labelstore
