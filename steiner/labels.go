package steiner

import (
	"iter"

	"github.com/katalvlaran/lvsteiner/labelstore"
)

// backtrack records how a label got its cost. It has exactly three
// implementations: leafStep, edgeStep and mergeStep.
type backtrack interface{ isBacktrack() }

// leafStep marks a seeded terminal singleton.
type leafStep struct{}

// edgeStep extends the label of the same subset at pred across one edge.
type edgeStep struct{ pred int }

// mergeStep joins two settled labels with disjoint subsets at the same vertex.
type mergeStep struct{ left, right uint64 }

func (leafStep) isBacktrack()  {}
func (edgeStep) isBacktrack()  {}
func (mergeStep) isBacktrack() {}

// label is one (vertex, subset) state of the search.
type label struct {
	v       int
	set     uint64
	cost    int64
	h       int64 // queue bound, fixed at creation
	lb      int64 // pruning bound, at least h
	back    backtrack
	settled bool
}

// partners holds the settled subsets of one vertex.
type partners interface {
	insert(id uint64) error
	disjoint(query uint64) (iter.Seq[uint64], error)
}

// trieSet enumerates partners through the radix trie.
type trieSet struct{ s *labelstore.Store }

func (t trieSet) insert(id uint64) error {
	_, err := t.s.Insert(id)
	return err
}

func (t trieSet) disjoint(query uint64) (iter.Seq[uint64], error) { return t.s.Disjoint(query) }

// scanSet checks every settled subset.
type scanSet struct{ ids []uint64 }

func (s *scanSet) insert(id uint64) error {
	s.ids = append(s.ids, id)
	return nil
}

func (s *scanSet) disjoint(query uint64) (iter.Seq[uint64], error) {
	ids := s.ids
	return func(yield func(uint64) bool) {
		for _, id := range ids {
			if id&query == 0 && !yield(id) {
				return
			}
		}
	}, nil
}
