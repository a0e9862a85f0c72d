// Package pathqueue provides the binary min-heap priority queue driving the
// pathfinding engine's open set.
package pathqueue

// Queue is a binary min-heap over unique items with a caller-supplied
// ordering. Items are deduplicated by identity (== on T), so enqueueing the
// same search node twice is a no-op. UpdatePriority repositions an item
// after its ordering fields were mutated in place; it is implemented as
// remove-then-reenqueue, which is fine for bounded grid searches but is the
// known scalability ceiling if maps ever get large.
//
// Queue is not safe for concurrent use; search state is per-query anyway.
type Queue[T comparable] struct {
	less  func(a, b T) bool
	items []T
	index map[T]int
}

// New creates an empty queue ordered by less
func New[T comparable](less func(a, b T) bool) *Queue[T] {
	return &Queue[T]{
		less:  less,
		index: make(map[T]int),
	}
}

// Len returns the number of queued items
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Contains reports whether item is currently queued
func (q *Queue[T]) Contains(item T) bool {
	_, ok := q.index[item]
	return ok
}

// Enqueue adds item to the queue. Returns false without modifying the queue
// when the item is already present.
func (q *Queue[T]) Enqueue(item T) bool {
	if _, ok := q.index[item]; ok {
		return false
	}
	q.items = append(q.items, item)
	q.index[item] = len(q.items) - 1
	q.siftUp(len(q.items) - 1)
	return true
}

// Dequeue removes and returns the minimum item. Returns false when the
// queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}

	top := q.items[0]
	last := len(q.items) - 1
	q.swap(0, last)
	q.items = q.items[:last]
	delete(q.index, top)
	if last > 0 {
		q.siftDown(0)
	}
	return top, true
}

// Peek returns the minimum item without removing it. Returns false when the
// queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0], true
}

// UpdatePriority repositions item after its ordering fields changed.
// Returns false when the item is not queued.
func (q *Queue[T]) UpdatePriority(item T) bool {
	i, ok := q.index[item]
	if !ok {
		return false
	}

	// Remove, then reenqueue with the new ordering.
	last := len(q.items) - 1
	q.swap(i, last)
	q.items = q.items[:last]
	delete(q.index, item)
	if i < last {
		q.siftDown(i)
		q.siftUp(i)
	}
	q.Enqueue(item)
	return true
}

// Clear empties the queue for reuse
func (q *Queue[T]) Clear() {
	q.items = q.items[:0]
	q.index = make(map[T]int)
}

func (q *Queue[T]) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.index[q.items[i]] = i
	q.index[q.items[j]] = j
}

func (q *Queue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(q.items[i], q.items[parent]) {
			return
		}
		q.swap(i, parent)
		i = parent
	}
}

func (q *Queue[T]) siftDown(i int) {
	n := len(q.items)
	for {
		smallest := i
		if left := 2*i + 1; left < n && q.less(q.items[left], q.items[smallest]) {
			smallest = left
		}
		if right := 2*i + 2; right < n && q.less(q.items[right], q.items[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		q.swap(i, smallest)
		i = smallest
	}
}
