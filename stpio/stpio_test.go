package stpio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/stpio"
)

const sample = `33D32945 STP File, STP Format Version 1.0

SECTION Comment
Name    "path4"
Creator "test"
END

# a comment line
SECTION Graph
Nodes 5
Edges 3
E 1 2 1
E 2 3 2
e 3 4 3
END

SECTION Coordinates
DD 1 0 0
END

SECTION Terminals
Terminals 2
T 1
T 4
END

EOF
`

func TestRead(t *testing.T) {
	inst, err := stpio.Read(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, "path4", inst.Name)
	assert.Equal(t, 5, inst.Nodes)
	assert.Equal(t, 3, inst.Edges)
	assert.Equal(t, 2, inst.Terminals)

	g := inst.Graph
	assert.Equal(t, []int{1, 2, 3, 4, 5}, g.Nodes())
	assert.Equal(t, []core.Edge{core.NewEdge(1, 2, 1), core.NewEdge(2, 3, 2), core.NewEdge(3, 4, 3)}, g.Edges())
	assert.Equal(t, []int{1, 4}, g.Terminals())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
		line  string
	}{
		{"empty", "", stpio.ErrBadHeader, ""},
		{"wrong magic", "STP\nSECTION Graph\nEND\n", stpio.ErrBadHeader, "line 1"},
		{"bad weight", "33D32945\nSECTION Graph\nE 1 2 x\nEND\n", stpio.ErrMalformed, "line 3"},
		{"short edge", "33D32945\nSECTION Graph\nE 1 2\nEND\n", stpio.ErrMalformed, "line 3"},
		{"bad terminal", "33D32945\nSECTION Terminals\nT one\nEND\n", stpio.ErrMalformed, "line 3"},
		{"no end", "33D32945\nSECTION Graph\nE 1 2 3\n", stpio.ErrMalformed, "graph"},
		{"stray line", "33D32945\nE 1 2 3\n", stpio.ErrMalformed, "line 2"},
		{"self-loop", "33D32945\nSECTION Graph\n\nE 2 2 1\nEND\n", core.ErrSelfLoop, "line 4"},
		{"negative weight", "33D32945\nSECTION Graph\nE 1 2 -1\nEND\n", core.ErrNegativeWeight, "line 3"},
		{"huge node count", "33D32945\nSECTION Graph\nNodes 9223372036854775807\nEND\n", stpio.ErrMalformed, "line 3"},
		{"negative node count", "33D32945\nSECTION Graph\nNodes -3\nEND\n", stpio.ErrMalformed, "line 3"},
		{"negative edge count", "33D32945\nSECTION Graph\nEdges -1\nEND\n", stpio.ErrMalformed, "line 3"},
		{"huge vertex", "33D32945\nSECTION Graph\nE 1 4294967297 1\nEND\n", stpio.ErrMalformed, "line 3"},
		{"negative vertex", "33D32945\nSECTION Graph\nE -1 2 1\nEND\n", stpio.ErrMalformed, "line 3"},
		{"huge weight", "33D32945\nSECTION Graph\nE 1 2 9223372036854775807\nEND\n", stpio.ErrMalformed, "line 3"},
		{"huge terminal", "33D32945\nSECTION Terminals\nT 99999999999\nEND\n", stpio.ErrMalformed, "line 3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := stpio.Parse(strings.NewReader(tc.input))
			assert.Nil(t, g)
			require.ErrorIs(t, err, tc.err)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestWriteSolution(t *testing.T) {
	var buf bytes.Buffer
	tree := core.Tree{
		Edges: []core.Edge{core.NewEdge(1, 2, 1), core.NewEdge(2, 3, 2)},
		Cost:  3,
	}
	require.NoError(t, stpio.WriteSolution(&buf, tree))
	assert.Equal(t, "VALUE 3\n1 2\n2 3\n", buf.String())

	buf.Reset()
	require.NoError(t, stpio.WriteSolution(&buf, core.Tree{Node: 7}))
	assert.Equal(t, "VALUE 0\n", buf.String())
}

func TestWriteInstance_RoundTrip(t *testing.T) {
	g, err := stpio.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, stpio.WriteInstance(&buf, "copy", g))
	inst, err := stpio.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, "copy", inst.Name)
	assert.Equal(t, g.Nodes(), inst.Graph.Nodes())
	assert.Equal(t, g.Edges(), inst.Graph.Edges())
	assert.Equal(t, g.Terminals(), inst.Graph.Terminals())
}
