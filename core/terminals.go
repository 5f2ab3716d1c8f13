// SPDX-License-Identifier: MIT
//
// File: terminals.go
// Role: Terminal set membership. Every change invalidates the
//       terminal-derived views.

package core

import "fmt"

// AddTerminal marks v as a terminal, adding the vertex if needed.
func (g *Graph) AddTerminal(v int) error {
	if err := g.AddNode(v); err != nil {
		return err
	}
	if _, ok := g.terminals[v]; ok {
		return nil
	}
	g.terminals[v] = struct{}{}
	g.onTerminalsChanged()

	return nil
}

// RemoveTerminal clears the terminal mark of v; the vertex stays.
func (g *Graph) RemoveTerminal(v int) error {
	if _, ok := g.terminals[v]; !ok {
		return fmt.Errorf("%w: %d", ErrNotTerminal, v)
	}
	delete(g.terminals, v)
	g.onTerminalsChanged()

	return nil
}

// IsTerminal reports whether v is a terminal.
func (g *Graph) IsTerminal(v int) bool {
	_, ok := g.terminals[v]
	return ok
}

// Terminals returns the terminals in ascending order.
func (g *Graph) Terminals() []int { return sortedKeys(g.terminals) }

// TerminalCount returns the number of terminals.
func (g *Graph) TerminalCount() int { return len(g.terminals) }
