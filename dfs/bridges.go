package dfs

import (
	"context"

	"github.com/katalvlaran/lvsteiner/core"
)

type frame struct {
	v      int
	parent int
	next   int // index into the sorted neighbor list of v
}

// Bridges returns every bridge of g, normalized and sorted by (U, V).
// The context is checked once per discovered vertex.
func Bridges(ctx context.Context, g *core.Graph) ([]core.Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	disc := make(map[int]int, g.NodeCount())
	low := make(map[int]int, g.NodeCount())
	nbrs := make(map[int][]int, g.NodeCount())
	var bridges []core.Edge
	timer := 0

	for _, root := range g.Nodes() {
		if _, seen := disc[root]; seen {
			continue
		}
		disc[root], low[root] = timer, timer
		timer++
		nbrs[root] = g.Neighbors(root)
		stack := []frame{{v: root, parent: -1}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(nbrs[top.v]) {
				w := nbrs[top.v][top.next]
				top.next++
				if w == top.parent {
					continue
				}
				if d, seen := disc[w]; seen {
					low[top.v] = min(low[top.v], d)
					continue
				}
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				disc[w], low[w] = timer, timer
				timer++
				nbrs[w] = g.Neighbors(w)
				stack = append(stack, frame{v: w, parent: top.v})
				continue
			}

			// v is finished: fold its low value into the parent.
			v, p := top.v, top.parent
			stack = stack[:len(stack)-1]
			delete(nbrs, v)
			if p == -1 {
				continue
			}
			low[p] = min(low[p], low[v])
			if low[v] > disc[p] {
				w, _ := g.Weight(p, v)
				bridges = append(bridges, core.NewEdge(p, v, w))
			}
		}
	}
	core.SortEdges(bridges)

	return bridges, nil
}
