package frontier

import (
	"container/heap"
	"errors"
	"sort"
)

// ErrEmptyFrontier is returned by Dequeue when the queue holds nothing.
var ErrEmptyFrontier = errors.New("frontier: dequeue from empty frontier")

// Entry is a read-only view of one queued key.
type Entry[K comparable] struct {
	Key      K
	Priority float64
}

// item is a heap slot; index is maintained by Swap for heap.Fix.
type item[K comparable] struct {
	key      K
	priority float64
	seq      uint64
	index    int
}

// itemHeap is a min-heap of *item ordered by (priority, seq).
type itemHeap[K comparable] []*item[K]

func (h itemHeap[K]) Len() int { return len(h) }

func (h itemHeap[K]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h itemHeap[K]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *itemHeap[K]) Push(x any) {
	it := x.(*item[K])
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *itemHeap[K]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]
	return it
}

// Queue is a priority frontier of unique keys. The zero value is not usable;
// call New. A Queue is not safe for concurrent use.
type Queue[K comparable] struct {
	h   itemHeap[K]
	pos map[K]*item[K]
	seq uint64
}

// New returns an empty Queue with room for capacity keys.
func New[K comparable](capacity int) *Queue[K] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[K]{
		h:   make(itemHeap[K], 0, capacity),
		pos: make(map[K]*item[K], capacity),
	}
}

// Enqueue inserts key with the given priority. A key already present is left
// untouched and Enqueue returns false.
// Complexity: O(log n).
func (q *Queue[K]) Enqueue(key K, priority float64) bool {
	if _, ok := q.pos[key]; ok {
		return false
	}
	it := &item[K]{key: key, priority: priority, seq: q.seq}
	q.seq++
	heap.Push(&q.h, it)
	q.pos[key] = it
	return true
}

// Dequeue removes and returns the key with the minimum priority.
// Returns ErrEmptyFrontier if the queue is empty.
// Complexity: O(log n).
func (q *Queue[K]) Dequeue() (K, float64, error) {
	var zero K
	if len(q.h) == 0 {
		return zero, 0, ErrEmptyFrontier
	}
	it := heap.Pop(&q.h).(*item[K])
	delete(q.pos, it.key)
	return it.key, it.priority, nil
}

// Update changes the priority of a key already in the queue and restores heap
// order. Returns false if key is not queued.
// Complexity: O(log n).
func (q *Queue[K]) Update(key K, priority float64) bool {
	it, ok := q.pos[key]
	if !ok {
		return false
	}
	if it.priority == priority {
		return true
	}
	it.priority = priority
	heap.Fix(&q.h, it.index)
	return true
}

// Contains reports whether key is currently queued.
// Complexity: O(1).
func (q *Queue[K]) Contains(key K) bool {
	_, ok := q.pos[key]
	return ok
}

// Priority returns the current priority of a queued key.
func (q *Queue[K]) Priority(key K) (float64, bool) {
	it, ok := q.pos[key]
	if !ok {
		return 0, false
	}
	return it.priority, true
}

// Len returns the number of queued keys.
func (q *Queue[K]) Len() int { return len(q.h) }

// Items returns the queued keys in dequeue order. It copies; the heap is not
// modified.
// Complexity: O(n log n).
func (q *Queue[K]) Items() []Entry[K] {
	snapshot := make([]*item[K], len(q.h))
	copy(snapshot, q.h)
	sort.Slice(snapshot, func(i, j int) bool {
		return itemHeap[K](snapshot).Less(i, j)
	})
	out := make([]Entry[K], len(snapshot))
	for i, it := range snapshot {
		out[i] = Entry[K]{Key: it.key, Priority: it.priority}
	}
	return out
}

// Keys returns just the keys of Items.
func (q *Queue[K]) Keys() []K {
	items := q.Items()
	out := make([]K, len(items))
	for i, e := range items {
		out[i] = e.Key
	}
	return out
}
