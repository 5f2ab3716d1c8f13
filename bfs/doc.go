// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus connected components.
//
// What
//
//   - BFS explores vertices in non-decreasing hop count from a start vertex
//     and returns a Result (Order, Depth, Parent).
//   - OnVisit may abort the walk with an error; FilterNeighbor skips arcs;
//     a context cancels long walks. Result.PathTo reads a hop-shortest path
//     off the parent links.
//   - Components partitions the vertex set, optionally under a neighbor
//     filter; Connected tests whether a vertex set lies in one component and
//     stops once all of it is reached. The Steiner solver uses Connected to reject
//     instances with unreachable terminals before searching. decompose uses
//     Components with a filter that cuts bridges, then walks the bridge
//     forest with BFS and PathTo to find the bridges every tree needs.
//
// Determinism
//
//	core.Graph.ForEachNeighbor visits neighbors in ascending id order and
//	Components starts from vertices in ascending order, so every result is
//	reproducible.
//
// Complexity
//
//	Time O(V + E), memory O(V).
package bfs
