// Package frontier provides the priority frontier used by the search engine:
// a binary min-heap of keys ordered by a priority assigned at enqueue time.
//
// What
//
//   - Enqueue / Dequeue in O(log n), Contains and Priority in O(1).
//   - Update repositions a key already in the queue (decrease-key) with heap.Fix,
//     so a key is inserted at most once yet always dequeued at its best priority.
//   - Items returns a sorted copy of the contents for observation; the heap
//     itself is never reordered by it.
//
// Determinism
//
//	Ties on priority are broken by insertion sequence: among equal priorities
//	the earliest enqueued key is dequeued first. A queue fed with a monotonic
//	priority therefore behaves exactly like a FIFO.
//
// Errors
//
//   - ErrEmptyFrontier if Dequeue is called on an empty queue.
package frontier
