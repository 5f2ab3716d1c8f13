package labelstore

import (
	"fmt"
	"iter"
	"math/bits"
)

// node compresses the bits [start, end) of every id below it.
// mask covers exactly those positions; bits holds their values.
type node struct {
	mask  uint64
	bits  uint64
	end   int
	child [2]*node
}

// Store is a set of fixed-width ids.
type Store struct {
	width int
	root  *node
	n     int
}

// New returns an empty Store for ids of the given bit width (1..64).
func New(width int) (*Store, error) {
	if width < 1 || width > MaxWidth {
		return nil, fmt.Errorf("%w: %d", ErrWidth, width)
	}

	return &Store{width: width}, nil
}

// span returns the mask of bit positions [lo, hi).
func span(lo, hi int) uint64 {
	if hi <= lo {
		return 0
	}

	return ((uint64(1) << uint(hi-lo)) - 1) << uint(lo)
}

func (s *Store) check() error {
	if s == nil || s.width == 0 {
		return ErrUninitialized
	}

	return nil
}

// Width returns the id width in bits.
func (s *Store) Width() int {
	if s == nil {
		return 0
	}

	return s.width
}

// Len returns the number of stored ids.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}

	return s.n
}

// leaf builds a node holding the remainder of id from bit start on.
func (s *Store) leaf(id uint64, start int) *node {
	m := span(start, s.width)

	return &node{mask: m, bits: id & m, end: s.width}
}

// Insert adds id and reports whether it was absent.
func (s *Store) Insert(id uint64) (bool, error) {
	if err := s.check(); err != nil {
		return false, err
	}
	if s.width < MaxWidth && id>>uint(s.width) != 0 {
		return false, fmt.Errorf("%w: id %#x exceeds %d bits", ErrWidth, id, s.width)
	}

	slot := &s.root
	start := 0
	for {
		n := *slot
		if n == nil {
			*slot = s.leaf(id, start)
			s.n++

			return true, nil
		}
		diff := (id ^ n.bits) & n.mask
		if diff != 0 {
			// Split n at the lowest differing bit p: a new inner node keeps
			// [start, p), the old node keeps (p, end) and the new id gets a leaf.
			p := bits.TrailingZeros64(diff)
			head := &node{mask: span(start, p), end: p}
			head.bits = n.bits & head.mask
			oldBit := (n.bits >> uint(p)) & 1
			n.mask &= span(p+1, n.end)
			n.bits &= n.mask
			head.child[oldBit] = n
			head.child[oldBit^1] = s.leaf(id, p+1)
			*slot = head
			s.n++

			return true, nil
		}
		if n.end == s.width {
			return false, nil
		}
		b := (id >> uint(n.end)) & 1
		slot = &n.child[b]
		start = n.end + 1
	}
}

// Contains reports whether id is stored.
func (s *Store) Contains(id uint64) bool {
	if s.check() != nil {
		return false
	}
	n := s.root
	for n != nil {
		if (id^n.bits)&n.mask != 0 {
			return false
		}
		if n.end == s.width {
			return s.width == MaxWidth || id>>uint(s.width) == 0
		}
		n = n.child[(id>>uint(n.end))&1]
	}

	return false
}

// Disjoint returns a sequence over every stored id with id&query == 0.
// Each call returns a fresh sequence; the store must not be modified while
// one is being ranged over.
func (s *Store) Disjoint(query uint64) (iter.Seq[uint64], error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	root := s.root
	width := s.width

	return func(yield func(uint64) bool) {
		if root != nil {
			walk(root, 0, query, width, yield)
		}
	}, nil
}

// walk yields the ids below n; acc holds the bits fixed by the ancestors.
// It returns false once yield asked to stop.
func walk(n *node, acc, query uint64, width int, yield func(uint64) bool) bool {
	if n.bits&query != 0 {
		return true
	}
	acc |= n.bits
	if n.end == width {
		return yield(acc)
	}
	if c := n.child[0]; c != nil {
		if !walk(c, acc, query, width, yield) {
			return false
		}
	}
	if c := n.child[1]; c != nil && (query>>uint(n.end))&1 == 0 {
		return walk(c, acc|uint64(1)<<uint(n.end), query, width, yield)
	}

	return true
}
