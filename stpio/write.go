package stpio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/lvsteiner/core"
)

// WriteSolution writes "VALUE <cost>" followed by one "<u> <v>" line per
// edge of tree.
func WriteSolution(w io.Writer, tree core.Tree) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "VALUE %d\n", tree.Cost)
	for _, e := range tree.Edges {
		fmt.Fprintf(bw, "%d %d\n", e.U, e.V)
	}

	return bw.Flush()
}

// WriteInstance writes g in STP form. Every vertex of g is listed through
// the Nodes count, so ids should be 1..MaxID for a faithful round trip.
func WriteInstance(w io.Writer, name string, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s STP File, STP Format Version 1.0\n\n", Magic)
	if name != "" {
		fmt.Fprintf(bw, "SECTION Comment\nName %q\nEND\n\n", name)
	}
	fmt.Fprintf(bw, "SECTION Graph\nNodes %d\nEdges %d\n", max(g.MaxID(), 0), g.EdgeCount())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "E %d %d %d\n", e.U, e.V, e.Weight)
	}
	fmt.Fprintf(bw, "END\n\nSECTION Terminals\nTerminals %d\n", g.TerminalCount())
	for _, t := range g.Terminals() {
		fmt.Fprintf(bw, "T %d\n", t)
	}
	fmt.Fprint(bw, "END\n\nEOF\n")

	return bw.Flush()
}
