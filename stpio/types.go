package stpio

import (
	"errors"

	"github.com/katalvlaran/lvsteiner/core"
)

// Magic is the first token of every STP file.
const Magic = "33D32945"

// Input limits. Vertex ids index dense per-vertex arrays in the solver, and
// MaxNodes edges of MaxWeight sum to less than 1<<62.
const (
	MaxNodes  = 1 << 24
	MaxWeight = 1 << 36
)

var (
	// ErrBadHeader indicates input that does not start with Magic.
	ErrBadHeader = errors.New("stpio: missing STP header")

	// ErrMalformed indicates an unreadable line; the wrapping error names
	// the line number.
	ErrMalformed = errors.New("stpio: malformed input")
)

// Instance is a parsed STP file.
type Instance struct {
	// Name is the Comment section's Name, if any.
	Name string

	// Declared counts from the Graph and Terminals sections; zero when
	// absent.
	Nodes, Edges, Terminals int

	Graph *core.Graph
}
