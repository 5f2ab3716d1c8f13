// Package lvsteiner is an exact solver for the Steiner tree problem in
// graphs: given an undirected graph with non-negative integer edge weights
// and a set of terminal vertices, find a minimum-weight tree that connects
// every terminal.
//
// 🚀 What is inside?
//
//	A label-setting (Dijkstra-style) search over (vertex, terminal subset)
//	labels, with a toolbox of bounds and reductions around it:
//		• Graph model: vertices, weighted edges, terminals, contraction
//		• Exact search: lazy label expansion, 1-tree, MST/2 and dual-ascent bounds
//		• Reductions: degree, terminal-leaf, long-edge and dual-ascent tests
//		• Decomposition: bridge splitting with parallel per-part solves
//		• I/O: the SteinLib STP instance format and solution output
//
// Under the hood the work is split across focused packages:
//
//	core/         Graph, Edge, Tree, contraction and the 2-approximation
//	pq/           priority queues (d-ary heap, bucket queue)
//	labelstore/   compressed trie of subset ids with disjoint-subset queries
//	dijkstra/     single and multi-source shortest paths
//	prim_kruskal/ minimum spanning trees (graph and dense metric)
//	bfs/, dfs/    connectivity, components and bridges
//	dualascent/   Wong's dual ascent lower bound
//	steiner/      the exact solver (Solve, SolveWithin)
//	reduce/       the reduction pipeline with solution restore
//	decompose/    bridge decomposition and concurrent part solving
//	stpio/        STP reader/writer
//	builder/      deterministic instance generators
//	config/       YAML/JSON/env configuration
//	cmd/steiner/  the command-line front end
//
// Quick ASCII example:
//
//	1──1──2──2──3
//	│           │ 3
//	└─────10────4      terminals {1, 4}
//
// has the optimal tree 1-2, 2-3, 3-4 of weight 6.
//
//	go install github.com/katalvlaran/lvsteiner/cmd/steiner@latest
package lvsteiner
