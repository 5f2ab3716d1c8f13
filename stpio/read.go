package stpio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsteiner/core"
)

// parser holds the state of one Read call.
type parser struct {
	inst    Instance
	line    int
	section string // lower-case section name, "" between sections
}

// Parse reads an STP instance and returns its graph.
func Parse(r io.Reader) (*core.Graph, error) {
	inst, err := Read(r)
	if err != nil {
		return nil, err
	}

	return inst.Graph, nil
}

// ParseFile opens path and parses it.
func ParseFile(path string) (Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return Instance{}, fmt.Errorf("stpio: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read reads an STP instance with its metadata.
//
// Errors: ErrBadHeader, ErrMalformed, core.ErrSelfLoop or
// core.ErrNegativeWeight (each wrapped with the line number), or a read
// error.
func Read(r io.Reader) (Instance, error) {
	p := &parser{inst: Instance{Graph: core.NewGraph()}}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	header := false
	for sc.Scan() {
		p.line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if !header {
			if !strings.EqualFold(fields[0], Magic) {
				return Instance{}, fmt.Errorf("%w: line %d starts with %q", ErrBadHeader, p.line, fields[0])
			}
			header = true
			continue
		}
		done, err := p.feed(fields)
		if err != nil {
			return Instance{}, err
		}
		if done {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return Instance{}, fmt.Errorf("stpio: line %d: %w", p.line+1, err)
	}
	if !header {
		return Instance{}, ErrBadHeader
	}
	if p.section != "" {
		return Instance{}, fmt.Errorf("%w: section %q has no END", ErrMalformed, p.section)
	}

	return p.inst, nil
}

// feed handles one non-empty line; done reports the EOF keyword.
func (p *parser) feed(fields []string) (done bool, err error) {
	key := strings.ToLower(fields[0])
	if p.section == "" {
		switch key {
		case "section":
			if len(fields) < 2 {
				return false, p.malformed("SECTION without a name")
			}
			p.section = strings.ToLower(fields[1])
		case "eof":
			return true, nil
		default:
			return false, p.malformed("%q outside a section", fields[0])
		}
		return false, nil
	}
	if key == "end" {
		p.section = ""
		return false, nil
	}

	switch p.section {
	case "comment":
		if key == "name" {
			p.inst.Name = strings.Trim(strings.Join(fields[1:], " "), `"`)
		}
	case "graph":
		return false, p.graph(key, fields[1:])
	case "terminals":
		return false, p.terminals(key, fields[1:])
	}

	return false, nil
}

func (p *parser) graph(key string, args []string) error {
	g := p.inst.Graph
	switch key {
	case "nodes":
		n, err := p.ints(args, 1)
		if err != nil {
			return err
		}
		if n[0] < 0 || n[0] > MaxNodes {
			return p.malformed("node count %d out of range [0, %d]", n[0], MaxNodes)
		}
		p.inst.Nodes = int(n[0])
		for v := 1; v <= p.inst.Nodes; v++ {
			if err := g.AddNode(v); err != nil {
				return p.wrap(err)
			}
		}
	case "edges", "arcs":
		n, err := p.ints(args, 1)
		if err != nil {
			return err
		}
		if n[0] < 0 {
			return p.malformed("negative edge count %d", n[0])
		}
		p.inst.Edges = int(n[0])
	case "e", "a":
		n, err := p.ints(args, 3)
		if err != nil {
			return err
		}
		u, err := p.vertex(n[0])
		if err != nil {
			return err
		}
		v, err := p.vertex(n[1])
		if err != nil {
			return err
		}
		if n[2] > MaxWeight {
			return p.malformed("weight %d above %d", n[2], int64(MaxWeight))
		}
		if err := g.AddEdge(u, v, n[2]); err != nil {
			return p.wrap(err)
		}
	}

	return nil
}

func (p *parser) terminals(key string, args []string) error {
	switch key {
	case "terminals":
		n, err := p.ints(args, 1)
		if err != nil {
			return err
		}
		if n[0] < 0 {
			return p.malformed("negative terminal count %d", n[0])
		}
		p.inst.Terminals = int(n[0])
	case "t", "root":
		n, err := p.ints(args, 1)
		if err != nil {
			return err
		}
		v, err := p.vertex(n[0])
		if err != nil {
			return err
		}
		if err := p.inst.Graph.AddTerminal(v); err != nil {
			return p.wrap(err)
		}
	}

	return nil
}

// ints parses the first n fields of args as integers.
func (p *parser) ints(args []string, n int) ([]int64, error) {
	if len(args) < n {
		return nil, p.malformed("want %d numbers, got %d", n, len(args))
	}
	out := make([]int64, n)
	for i := range out {
		x, err := strconv.ParseInt(args[i], 10, 64)
		if err != nil {
			return nil, p.malformed("bad number %q", args[i])
		}
		out[i] = x
	}

	return out, nil
}

// vertex checks a vertex id against MaxNodes.
func (p *parser) vertex(x int64) (int, error) {
	if x < 0 || x > MaxNodes {
		return 0, p.malformed("vertex %d out of range [0, %d]", x, MaxNodes)
	}

	return int(x), nil
}

func (p *parser) malformed(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, p.line, fmt.Sprintf(format, args...))
}

func (p *parser) wrap(err error) error {
	return fmt.Errorf("stpio: line %d: %w", p.line, err)
}
