// Package pq provides the keyed min-priority queues used by every
// shortest-path style computation in lvsteiner.
//
// Two implementations share the Queue contract:
//
//   - DaryHeap: array-backed d-ary min-heap with a key → index side table.
//     InsertOrDecrease bubbles an element up its d-ary ancestor chain;
//     ExtractMin walks the hole left by the root down to a leaf through the
//     minimum child of each level, drops the displaced last element there and
//     bubbles it back up. This saves roughly half the comparisons of a naive
//     sift-down on wide heaps.
//
//   - BucketQueue: valid only for integer priorities in a small known range
//     [0, B]. Backed by B+1 buckets and a monotone cursor that never moves
//     backwards, giving amortized O(1) operations.
//
// Contract (both implementations):
//
//	InsertOrDecrease(priority, key): insert an unseen key; lower the stored
//	    priority if it is strictly higher; otherwise no-op.
//	ExtractMin() (key, priority, error): remove and return the minimum;
//	    ErrEmpty on an empty queue.
//
// A key that has been extracted is unseen again and may be re-inserted.
//
// Complexity:
//
//   - DaryHeap:    InsertOrDecrease O(log_d n), ExtractMin O(d·log_d n).
//   - BucketQueue: InsertOrDecrease O(1), ExtractMin amortized O(1 + B/n).
//
// Neither queue is safe for concurrent use.
package pq
