package prim_kruskal

import "fmt"

// Prim computes an MST of the complete graph given by the square matrix
// dist, rooted at index 0.
//
// parent[i] is the tree neighbour of i on the path to 0 (parent[0] == -1).
// Entries equal to Inf are missing edges; if some index cannot be reached
// the result is ErrDisconnected. An empty matrix yields an empty tree.
//
// Complexity: O(n²) time, O(n) space.
func Prim(dist [][]int64) ([]int, int64, error) {
	n := len(dist)
	for i, row := range dist {
		if len(row) != n {
			return nil, 0, fmt.Errorf("%w: row %d has %d entries, want %d", ErrInvalidMatrix, i, len(row), n)
		}
	}
	for i, row := range dist {
		for j, w := range row {
			if w < 0 || dist[j][i] != w {
				return nil, 0, fmt.Errorf("%w: entry (%d,%d)", ErrInvalidMatrix, i, j)
			}
		}
	}
	if n == 0 {
		return nil, 0, nil
	}

	parent := make([]int, n)
	best := make([]int64, n)
	in := make([]bool, n)
	for i := range best {
		best[i] = Inf
		parent[i] = -1
	}
	best[0] = 0

	var total int64
	for step := 0; step < n; step++ {
		u := -1
		for i := 0; i < n; i++ {
			if !in[i] && (u == -1 || best[i] < best[u]) {
				u = i
			}
		}
		if best[u] == Inf {
			return nil, 0, fmt.Errorf("%w: index %d unreachable", ErrDisconnected, u)
		}
		in[u] = true
		total += best[u]
		for v := 0; v < n; v++ {
			if !in[v] && dist[u][v] < best[v] {
				best[v] = dist[u][v]
				parent[v] = u
			}
		}
	}

	return parent, total, nil
}

// PrimWeight returns only the MST weight of dist; see Prim.
func PrimWeight(dist [][]int64) (int64, error) {
	_, total, err := Prim(dist)

	return total, err
}
