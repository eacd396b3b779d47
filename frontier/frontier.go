// Package frontier provides the min-priority queue shared by the search
// packages of optpath.
//
// A Queue holds (item, priority) pairs and always yields the pair with the
// smallest priority. Pairs with equal priority come out in the order they were
// pushed, which keeps every search deterministic for identical inputs.
//
// The queue does not support decrease-key. Searches use the "lazy" strategy:
// when a better priority is found for an item, the item is pushed again and
// the outdated entry is recognized and discarded by the caller when popped.
//
// Complexity:
//
//   - Push: O(log N)
//   - Pop:  O(log N)
//   - Peek, Len: O(1)
package frontier

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// entry is a single frontier element.
type entry[T any, C constraints.Integer] struct {
	item     T
	priority C
	seq      uint64 // insertion order, used as tie-breaker
}

// entries implements heap.Interface ordered by (priority, seq) ascending.
type entries[T any, C constraints.Integer] []entry[T, C]

func (e entries[T, C]) Len() int { return len(e) }

func (e entries[T, C]) Less(i, j int) bool {
	if e[i].priority != e[j].priority {
		return e[i].priority < e[j].priority
	}

	return e[i].seq < e[j].seq
}

func (e entries[T, C]) Swap(i, j int) { e[i], e[j] = e[j], e[i] }

func (e *entries[T, C]) Push(x any) { *e = append(*e, x.(entry[T, C])) }

func (e *entries[T, C]) Pop() any {
	old := *e
	n := len(old)
	it := old[n-1]
	var zero entry[T, C]
	old[n-1] = zero // drop reference held by the backing array
	*e = old[:n-1]

	return it
}

// Queue is a min-priority queue of items of type T keyed by an integer
// priority of type C. The zero value is not usable; call New.
//
// A Queue is not safe for concurrent use.
type Queue[T any, C constraints.Integer] struct {
	heap entries[T, C]
	seq  uint64
}

// New returns an empty Queue with room for capacity entries before growing.
// A negative capacity is treated as zero.
func New[T any, C constraints.Integer](capacity int) *Queue[T, C] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[T, C]{heap: make(entries[T, C], 0, capacity)}
}

// Push inserts item with the given priority.
func (q *Queue[T, C]) Push(item T, priority C) {
	heap.Push(&q.heap, entry[T, C]{item: item, priority: priority, seq: q.seq})
	q.seq++
}

// Pop removes and returns the item with the smallest priority.
// ok is false if the queue is empty.
func (q *Queue[T, C]) Pop() (item T, priority C, ok bool) {
	if len(q.heap) == 0 {
		return item, priority, false
	}
	e := heap.Pop(&q.heap).(entry[T, C])

	return e.item, e.priority, true
}

// Peek returns the item with the smallest priority without removing it.
func (q *Queue[T, C]) Peek() (item T, priority C, ok bool) {
	if len(q.heap) == 0 {
		return item, priority, false
	}

	return q.heap[0].item, q.heap[0].priority, true
}

// Len returns the number of entries, stale ones included.
func (q *Queue[T, C]) Len() int { return len(q.heap) }
