// Package reduce shrinks a Steiner instance before it is solved and maps
// the solution of the reduced instance back onto the original graph.
//
// A Rule removes or merges graph elements without raising the optimum and
// records what it needs to undo its changes on a solution:
//
//   - DegreeOne drops non-terminal vertices of degree at most one.
//   - DegreeTwo replaces a non-terminal vertex of degree two by one edge
//     joining its neighbors.
//   - TerminalLeaf contracts the cheapest edge of a terminal when it leads
//     to a terminal or is the only edge of that terminal.
//   - LongEdge drops edges longer than the shortest path between their
//     endpoints, and edges between terminals longer than their bottleneck
//     Steiner distance.
//   - DualAscent drops vertices and edges whose reduced-cost lower bound
//     exceeds the cost of the shortest-path approximation.
//
// Pipeline.Run applies the rules in order, pass after pass, while a pass
// changes more than Threshold of the instance size, for at most MaxPasses
// passes. Each rule gets a context with RuleTimeout; rules check it at their
// own safe points and return what they changed so far, and the pipeline
// records the timeout and moves on. Any other rule error aborts the run.
//
// Pipeline.Restore runs PostProcess over the rules in reverse order until no
// rule changes the tree, then checks the tree against the original graph.
// Every undo record is applied at most once per Restore.
//
// Rules keep undo records, so a rule value serves a single instance.
package reduce
