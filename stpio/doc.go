// Package stpio reads and writes Steiner instances in the SteinLib STP
// format.
//
// An STP file starts with the magic header "33D32945" and is a sequence of
// sections:
//
//	33D32945 STP File, STP Format Version 1.0
//	SECTION Comment
//	Name "example"
//	END
//	SECTION Graph
//	Nodes 4
//	Edges 3
//	E 1 2 1
//	E 2 3 2
//	E 3 4 3
//	END
//	SECTION Terminals
//	Terminals 2
//	T 1
//	T 4
//	END
//	EOF
//
// Read understands the Comment, Graph and Terminals sections; any other
// section is skipped up to its END. Keywords are case-insensitive, "#"
// starts a comment line, and arcs ("A u v w") are read as undirected edges.
// Declared Nodes are added even when no edge touches them. A malformed
// numeric field is fatal and reported with its line number, and so is a
// node count or vertex id above MaxNodes or a weight above MaxWeight.
//
// WriteSolution prints a tree as
//
//	VALUE 6
//	1 2
//	2 3
//	3 4
//
// and WriteInstance prints a graph back in STP form.
package stpio
