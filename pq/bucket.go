package pq

import "fmt"

// BucketQueue is a monotone bucket queue for integer priorities in [0, max].
//
// Decreasing a key appends it to its new bucket and leaves the old entry in
// place; stale entries are recognised on extraction because the key's stored
// priority no longer matches the bucket they sit in.
type BucketQueue[K comparable] struct {
	buckets [][]K
	prio    map[K]int64
	cursor  int64 // lowest bucket that may hold a live entry; never decreases
	max     int64
}

// NewBucketQueue returns an empty queue accepting priorities 0..maxPriority.
func NewBucketQueue[K comparable](maxPriority int64) (*BucketQueue[K], error) {
	if maxPriority < 0 {
		return nil, fmt.Errorf("%w: negative range %d", ErrPriorityRange, maxPriority)
	}

	return &BucketQueue[K]{
		buckets: make([][]K, maxPriority+1),
		prio:    make(map[K]int64),
		max:     maxPriority,
	}, nil
}

// Len returns the number of queued keys.
func (q *BucketQueue[K]) Len() int { return len(q.prio) }

// Contains reports whether key is queued.
func (q *BucketQueue[K]) Contains(key K) bool {
	_, ok := q.prio[key]
	return ok
}

// InsertOrDecrease inserts key or lowers its priority.
// Priorities above the range, or below the cursor, yield ErrPriorityRange.
func (q *BucketQueue[K]) InsertOrDecrease(priority int64, key K) error {
	if priority < q.cursor || priority > q.max {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrPriorityRange, priority, q.cursor, q.max)
	}
	if old, ok := q.prio[key]; ok && old <= priority {
		return nil
	}
	q.prio[key] = priority
	q.buckets[priority] = append(q.buckets[priority], key)

	return nil
}

// ExtractMin removes and returns a key of minimum priority.
func (q *BucketQueue[K]) ExtractMin() (K, int64, error) {
	var zero K
	if len(q.prio) == 0 {
		return zero, 0, ErrEmpty
	}
	for ; q.cursor <= q.max; q.cursor++ {
		b := q.buckets[q.cursor]
		for len(b) > 0 {
			k := b[len(b)-1]
			b = b[:len(b)-1]
			if p, ok := q.prio[k]; ok && p == q.cursor {
				q.buckets[q.cursor] = b
				delete(q.prio, k)

				return k, p, nil
			}
		}
		q.buckets[q.cursor] = b[:0]
	}

	// Live keys exist but no bucket holds them: the stale-entry bookkeeping is broken.
	return zero, 0, fmt.Errorf("%w: %d keys unreachable from cursor", ErrEmpty, len(q.prio))
}
