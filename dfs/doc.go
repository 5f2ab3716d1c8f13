// Package dfs implements iterative depth-first search utilities on core.Graph.
//
// Bridges finds every edge whose removal disconnects its component, using
// Tarjan's lowlink numbering:
//
//	disc[v] – discovery time of v in the DFS forest;
//	low[v]  – smallest discovery time reachable from v's subtree using at
//	          most one back edge;
//	tree edge p–v is a bridge  ⇔  low[v] > disc[p].
//
// The walk keeps an explicit stack of (vertex, next-neighbor index) frames,
// so graphs with very long paths do not grow the goroutine stack. Parallel
// edges do not exist in core.Graph, so skipping the parent vertex once is
// exact.
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V).
//
// Errors:
//
//   - ErrGraphNil if g is nil.
//   - context errors when the supplied context is done.
package dfs
