package pq

import "fmt"

type heapEntry[K comparable] struct {
	key  K
	prio int64
}

// DaryHeap is an array-backed d-ary min-heap with decrease-key.
type DaryHeap[K comparable] struct {
	d     int
	items []heapEntry[K]
	index map[K]int // key → position in items
}

// NewDaryHeap returns an empty heap with branching factor d.
// Returns ErrBadArity if d < 2.
func NewDaryHeap[K comparable](d int) (*DaryHeap[K], error) {
	if d < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadArity, d)
	}

	return &DaryHeap[K]{d: d, index: make(map[K]int)}, nil
}

// Len returns the number of queued keys.
func (h *DaryHeap[K]) Len() int { return len(h.items) }

// Contains reports whether key is queued.
func (h *DaryHeap[K]) Contains(key K) bool {
	_, ok := h.index[key]
	return ok
}

// Priority returns the stored priority of a queued key.
func (h *DaryHeap[K]) Priority(key K) (int64, bool) {
	i, ok := h.index[key]
	if !ok {
		return 0, false
	}

	return h.items[i].prio, true
}

// InsertOrDecrease inserts key, or lowers its stored priority if that is strictly higher.
// Never fails; the error return satisfies Queue.
//
// Complexity: O(log_d n).
func (h *DaryHeap[K]) InsertOrDecrease(priority int64, key K) error {
	if i, ok := h.index[key]; ok {
		if h.items[i].prio <= priority {
			return nil
		}
		h.items[i].prio = priority
		h.up(i)

		return nil
	}
	h.items = append(h.items, heapEntry[K]{key: key, prio: priority})
	h.up(len(h.items) - 1)

	return nil
}

// ExtractMin removes and returns the minimum-priority key.
//
// The root slot becomes a hole that is pulled down to a leaf through the
// smallest child at every level; the former last element is placed in the
// hole and bubbled up from there.
//
// Complexity: O(d·log_d n).
func (h *DaryHeap[K]) ExtractMin() (K, int64, error) {
	n := len(h.items)
	if n == 0 {
		var zero K
		return zero, 0, ErrEmpty
	}
	top := h.items[0]
	delete(h.index, top.key)

	last := h.items[n-1]
	h.items = h.items[:n-1]
	m := n - 1
	if m == 0 {
		return top.key, top.prio, nil
	}

	hole := 0
	for {
		first := hole*h.d + 1
		if first >= m {
			break
		}
		end := first + h.d
		if end > m {
			end = m
		}
		best := first
		for c := first + 1; c < end; c++ {
			if h.items[c].prio < h.items[best].prio {
				best = c
			}
		}
		h.items[hole] = h.items[best]
		h.index[h.items[hole].key] = hole
		hole = best
	}
	h.items[hole] = last
	h.up(hole)

	return top.key, top.prio, nil
}

// up moves items[i] towards the root until its parent is not larger.
func (h *DaryHeap[K]) up(i int) {
	e := h.items[i]
	for i > 0 {
		p := (i - 1) / h.d
		if h.items[p].prio <= e.prio {
			break
		}
		h.items[i] = h.items[p]
		h.index[h.items[i].key] = i
		i = p
	}
	h.items[i] = e
	h.index[e.key] = i
}
