// SPDX-License-Identifier: MIT
//
// File: cache.go
// Role: Validity state machine for the derived views and the event hooks
//       that mutations call (shrink, grow, terminal change, vertex purge).

package core

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheState is the validity of one derived view.
type CacheState int

const (
	// CacheValid means the stored view matches the graph.
	CacheValid CacheState = iota
	// CacheDirtyShrink means only shrink events happened since the last read.
	CacheDirtyShrink
	// CacheDirtyGrow means only grow events happened since the last read.
	CacheDirtyGrow
	// CacheUnknown means both kinds happened, the terminals changed, or the
	// view was never computed.
	CacheUnknown
)

func (s CacheState) String() string {
	switch s {
	case CacheValid:
		return "valid"
	case CacheDirtyShrink:
		return "dirty-shrink"
	case CacheDirtyGrow:
		return "dirty-grow"
	case CacheUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("cache-state(%d)", int(s))
	}
}

func (s CacheState) shrink() CacheState {
	switch s {
	case CacheValid:
		return CacheDirtyShrink
	case CacheDirtyGrow:
		return CacheUnknown
	default:
		return s
	}
}

func (s CacheState) grow() CacheState {
	switch s {
	case CacheValid:
		return CacheDirtyGrow
	case CacheDirtyShrink:
		return CacheUnknown
	default:
		return s
	}
}

// steinerTable holds bottleneck distances between terminals.
type steinerTable struct {
	index map[int]int
	dist  [][]int64
}

type cache struct {
	state      [viewCount]CacheState
	rows       *lru.Cache[int, []int64] // source → distance row; every stored row is exact
	closest    map[int][]TerminalDistance
	voronoi    map[int][]int
	steiner    steinerTable
	approx     Tree
	approxErr  error
	recomputes [viewCount]int
}

func (c *cache) reset(maxRows int) {
	for i := range c.state {
		c.state[i] = CacheUnknown
	}
	c.rows, _ = lru.New[int, []int64](max(maxRows, 1))
	c.closest = nil
	c.voronoi = nil
	c.steiner = steinerTable{}
	c.approx = Tree{Node: -1}
	c.approxErr = nil
}

// rowAt reads a distance row, treating ids past its end as unreachable.
func rowAt(row []int64, v int) int64 {
	if v < 0 || v >= len(row) {
		return Inf
	}

	return row[v]
}

// Validity returns the current state of view.
func (g *Graph) Validity(view View) CacheState {
	if view < 0 || view >= viewCount {
		return CacheUnknown
	}

	return g.cache.state[view]
}

// Recomputations returns how many times view has been rebuilt. For
// ViewDistances it counts single rows.
func (g *Graph) Recomputations(view View) int {
	if view < 0 || view >= viewCount {
		return 0
	}

	return g.cache.recomputes[view]
}

// onShrink records that e appeared or got cheaper.
func (g *Graph) onShrink(e Edge) {
	c := &g.cache
	for v := range c.state {
		c.state[v] = c.state[v].shrink()
	}
	if c.state[ViewDistances] == CacheUnknown {
		c.rows.Purge()
		return
	}
	for _, s := range c.rows.Keys() {
		row, _ := c.rows.Peek(s)
		du, dv := rowAt(row, e.U), rowAt(row, e.V)
		if (du != Inf && du+e.Weight < dv) || (dv != Inf && dv+e.Weight < du) {
			c.rows.Remove(s)
		}
	}
}

// onGrow records that e (with its weight before the change) disappeared.
func (g *Graph) onGrow(e Edge) {
	c := &g.cache
	for v := range c.state {
		c.state[v] = c.state[v].grow()
	}
	if c.state[ViewDistances] == CacheUnknown {
		c.rows.Purge()
		return
	}
	for _, s := range c.rows.Keys() {
		row, _ := c.rows.Peek(s)
		du, dv := rowAt(row, e.U), rowAt(row, e.V)
		if (du != Inf && du+e.Weight == dv) || (dv != Inf && dv+e.Weight == du) {
			c.rows.Remove(s)
		}
	}
}

// onTerminalsChanged invalidates every view that depends on the terminal set.
func (g *Graph) onTerminalsChanged() {
	for v := ViewClosest; v < viewCount; v++ {
		g.cache.state[v] = CacheUnknown
	}
}

// purge drops every cached mention of v.
func (g *Graph) purge(v int) {
	c := &g.cache
	c.rows.Remove(v)
	delete(c.closest, v)
	for t, region := range c.voronoi {
		for i, x := range region {
			if x == v {
				c.voronoi[t] = append(region[:i:i], region[i+1:]...)
				break
			}
		}
	}
}
