package steiner

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/labelstore"
	"github.com/katalvlaran/lvsteiner/pq"
)

// search is the mutable state of one label-setting run.
type search struct {
	g     *core.Graph
	o     Options
	b     *bounds
	root  int
	width int
	full  uint64
	ub    int64 // best known solution cost

	labels []label
	index  []map[uint64]int32 // vertex → subset → label id
	parts  []partners         // vertex → settled subsets
	queue  pq.Queue[int32]
	stats  *Stats
}

func newSearch(g *core.Graph, o Options, b *bounds, ub int64, stats *Stats) (*search, error) {
	q, err := pq.New[int32](o.Queue, g.NodeCount(), ub)
	if err != nil {
		return nil, fmt.Errorf("steiner: queue: %w", err)
	}
	n := g.MaxID() + 1

	return &search{
		g:     g,
		o:     o,
		b:     b,
		root:  b.terms[b.width],
		width: b.width,
		full:  b.full,
		ub:    ub,
		index: make([]map[uint64]int32, n),
		parts: make([]partners, n),
		queue: q,
		stats: stats,
	}, nil
}

// run seeds the terminal singletons and settles labels until the full
// label at the root settles. It returns that label's id.
func (s *search) run() (int32, error) {
	for i := 0; i < s.width; i++ {
		if _, err := s.offer(s.b.terms[i], 1<<i, 0, leafStep{}); err != nil {
			return -1, err
		}
	}
	for s.queue.Len() > 0 {
		id, _, err := s.queue.ExtractMin()
		if err != nil {
			return -1, fmt.Errorf("%w: %v", ErrInvariant, err)
		}
		l := &s.labels[id]
		if l.settled {
			return -1, fmt.Errorf("%w: label (%d, %b) settled twice", ErrInvariant, l.v, l.set)
		}
		l.settled = true
		s.stats.Settled++
		if l.v == s.root && l.set == s.full {
			return id, nil
		}
		if err = s.settle(l.v, l.set, l.cost); err != nil {
			return -1, err
		}
	}

	return -1, fmt.Errorf("%w: queue exhausted before the full label settled", ErrInvariant)
}

// settle expands a freshly settled label across its edges and merges it
// with the disjoint labels already settled at the same vertex.
func (s *search) settle(v int, set uint64, cost int64) error {
	if s.o.SubsetBound {
		if err := s.b.tighten(v, set, cost); err != nil {
			return err
		}
	}
	if set == s.full {
		s.ub = min(s.ub, add(cost, s.b.dist(s.width, v)))
	}

	var err error
	s.g.ForEachNeighbor(v, func(w int, weight int64) {
		if err == nil {
			_, err = s.offer(w, set, add(cost, weight), edgeStep{pred: v})
		}
	})
	if err != nil {
		return err
	}

	p, err := s.partnersAt(v)
	if err != nil {
		return err
	}
	seq, err := p.disjoint(set)
	if err != nil {
		return fmt.Errorf("%w: partners at %d: %v", ErrInvariant, v, err)
	}
	for other := range seq {
		partner := s.labels[s.index[v][other]]
		ok, err := s.offer(v, set|other, add(cost, partner.cost), mergeStep{left: set, right: other})
		if err != nil {
			return err
		}
		if ok {
			s.stats.Merges++
		}
	}
	if err = p.insert(set); err != nil {
		return fmt.Errorf("%w: record (%d, %b): %v", ErrInvariant, v, set, err)
	}

	return nil
}

func (s *search) partnersAt(v int) (partners, error) {
	if s.parts[v] == nil {
		if s.o.LabelStore {
			st, err := labelstore.New(max(s.width, 1))
			if err != nil {
				return nil, fmt.Errorf("%w: label store at %d: %v", ErrInvariant, v, err)
			}
			s.parts[v] = trieSet{s: st}
		} else {
			s.parts[v] = &scanSet{}
		}
	}

	return s.parts[v], nil
}

// offer proposes cost for (v, set). It reports whether the label was
// created or lowered.
func (s *search) offer(v int, set uint64, cost int64, back backtrack) (bool, error) {
	if s.index[v] == nil {
		s.index[v] = make(map[uint64]int32)
	}
	id, known := s.index[v][set]
	var h, lb int64
	if known {
		l := &s.labels[id]
		if l.settled || l.cost <= cost {
			return false, nil
		}
		h, lb = l.h, l.lb
	} else if s.o.MSTHeuristic {
		var err error
		if h, err = s.b.oneTree(v, set); err != nil {
			return false, err
		}
		if lb, err = s.b.mstBound(v, set); err != nil {
			return false, err
		}
		lb = max(lb, h)
	}

	drop, err := s.pruned(v, set, cost, lb)
	if err != nil || drop {
		return false, err
	}
	if known {
		s.labels[id].cost, s.labels[id].back = cost, back
	} else {
		id = int32(len(s.labels))
		s.labels = append(s.labels, label{v: v, set: set, cost: cost, h: h, lb: lb, back: back})
		s.index[v][set] = id
		s.stats.Labels++
	}
	if err = s.queue.InsertOrDecrease(add(cost, h), id); err != nil {
		return false, fmt.Errorf("%w: enqueue (%d, %b): %v", ErrInvariant, v, set, err)
	}

	return true, nil
}

// pruned applies the subset bound and the lower bounds against the best
// known solution.
func (s *search) pruned(v int, set uint64, cost, h int64) (bool, error) {
	if s.o.SubsetBound {
		ub, err := s.b.subsetBound(set)
		if err != nil {
			return false, err
		}
		if cost > ub {
			s.stats.PrunedSubset++
			return true, nil
		}
	}
	if add(cost, h) > s.ub {
		s.stats.PrunedBound++
		return true, nil
	}
	if s.o.DualAscentHeuristic {
		hd, err := s.b.daBoundAt(v, set)
		if err != nil {
			return false, err
		}
		if add(cost, hd) > s.ub {
			s.stats.PrunedBound++
			return true, nil
		}
	}

	return false, nil
}

// rebuild walks the backtracks from label id and returns the edges used.
func (s *search) rebuild(id int32) ([]core.Edge, error) {
	var edges []core.Edge
	stack := []int32{id}
	for len(stack) > 0 {
		l := s.labels[stack[len(stack)-1]]
		stack = stack[:len(stack)-1]
		switch b := l.back.(type) {
		case leafStep:
		case edgeStep:
			w, ok := s.g.Weight(b.pred, l.v)
			if !ok {
				return nil, fmt.Errorf("%w: missing edge %d-%d", ErrInvariant, b.pred, l.v)
			}
			edges = append(edges, core.NewEdge(b.pred, l.v, w))
			pred, ok := s.index[b.pred][l.set]
			if !ok {
				return nil, fmt.Errorf("%w: missing label (%d, %b)", ErrInvariant, b.pred, l.set)
			}
			stack = append(stack, pred)
		case mergeStep:
			for _, part := range [2]uint64{b.left, b.right} {
				child, ok := s.index[l.v][part]
				if !ok {
					return nil, fmt.Errorf("%w: missing label (%d, %b)", ErrInvariant, l.v, part)
				}
				stack = append(stack, child)
			}
		default:
			return nil, fmt.Errorf("%w: unknown backtrack %T", ErrInvariant, b)
		}
	}

	return edges, nil
}
