package pq

import "errors"

// Sentinel errors returned by the queues.
var (
	// ErrEmpty is returned by ExtractMin on an empty queue.
	ErrEmpty = errors.New("pq: extract from empty queue")

	// ErrBadArity is returned when a heap is requested with fewer than two children per node.
	ErrBadArity = errors.New("pq: heap arity must be at least 2")

	// ErrPriorityRange is returned when a bucket queue receives a priority outside
	// [cursor, maxPriority] or is constructed with a negative range.
	ErrPriorityRange = errors.New("pq: priority outside bucket range")
)

// Queue is the keyed min-priority contract shared by DaryHeap and BucketQueue.
type Queue[K comparable] interface {
	// InsertOrDecrease inserts key with the given priority, or lowers the
	// priority of a queued key if the stored one is strictly higher.
	InsertOrDecrease(priority int64, key K) error

	// ExtractMin removes and returns the key with minimum priority.
	ExtractMin() (K, int64, error)

	// Contains reports whether key is currently queued.
	Contains(key K) bool

	// Len returns the number of queued keys.
	Len() int
}

// Default knobs for New.
const (
	DefaultArity           = 16
	DefaultBucketThreshold = 5000
	DefaultMaxBucketRange  = 1 << 16
)

// Options selects and parametrizes a queue implementation.
//
//	Arity           – heap branching factor (≥ 2).
//	BucketThreshold – instances with fewer nodes than this use a bucket queue
//	                  when their priority bound is known and small enough.
//	MaxBucketRange  – the largest priority bound a bucket queue is allocated for.
type Options struct {
	Arity           int
	BucketThreshold int
	MaxBucketRange  int64
}

// DefaultOptions returns Arity 16, BucketThreshold 5000 and MaxBucketRange 65536.
func DefaultOptions() Options {
	return Options{
		Arity:           DefaultArity,
		BucketThreshold: DefaultBucketThreshold,
		MaxBucketRange:  DefaultMaxBucketRange,
	}
}

// New returns a bucket queue when nodes < opts.BucketThreshold and
// 0 ≤ maxPriority ≤ opts.MaxBucketRange, and a d-ary heap otherwise.
// Pass maxPriority < 0 when no bound is known.
func New[K comparable](opts Options, nodes int, maxPriority int64) (Queue[K], error) {
	if nodes < opts.BucketThreshold && maxPriority >= 0 && maxPriority <= opts.MaxBucketRange {
		return NewBucketQueue[K](maxPriority)
	}

	return NewDaryHeap[K](opts.Arity)
}
