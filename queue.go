package priorityqueue

import (
	"cmp"
	"iter"
)

// Queue is a single-ended priority queue over the same storage engine as
// DoubleQueue. Pop returns the entry that orders first under the less
// function supplied at construction; use FromQueue to upgrade an existing
// Queue to double-ended access in O(n).
//
// Queue is not safe for concurrent mutation.
type Queue[I comparable, P any] struct {
	s store[I, P]
}

// NewQueue creates an empty Queue ordered by less: less(a, b) reports
// whether a should be popped before b.
func NewQueue[I comparable, P any](less func(a, b P) bool) *Queue[I, P] {
	return NewQueueWithCapacity[I](0, less)
}

// NewQueueWithCapacity creates an empty Queue with room for capacity entries
// before reallocating.
func NewQueueWithCapacity[I comparable, P any](capacity int, less func(a, b P) bool) *Queue[I, P] {
	return &Queue[I, P]{s: newStore[I, P](capacity, less)}
}

// NewOrderedQueue creates an empty min-first Queue over a naturally ordered
// priority type.
func NewOrderedQueue[I comparable, P cmp.Ordered]() *Queue[I, P] {
	return NewQueue[I](cmp.Less[P])
}

// FromQueue converts a single-ended queue into a DoubleQueue, reusing its
// storage directly and rebuilding the heap shape once in O(n). The donor is
// left empty.
func FromQueue[I comparable, P any](q *Queue[I, P]) *DoubleQueue[I, P] {
	d := &DoubleQueue[I, P]{s: q.s}
	q.s = newStore[I, P](0, q.s.less)
	d.heapBuild()
	return d
}

// FromDoubleQueue converts a DoubleQueue into a single-ended Queue, reusing
// its storage directly and rebuilding the heap shape once in O(n). The donor
// is left empty.
func FromDoubleQueue[I comparable, P any](q *DoubleQueue[I, P]) *Queue[I, P] {
	sq := &Queue[I, P]{s: q.s}
	q.s = newStore[I, P](0, q.s.less)
	sq.build()
	return sq
}

// Len returns the number of entries in the queue.
func (q *Queue[I, P]) Len() int {
	return q.s.len()
}

// IsEmpty reports whether the queue contains no entries.
func (q *Queue[I, P]) IsEmpty() bool {
	return q.s.len() == 0
}

// Cap returns the number of entries the queue can hold without reallocating.
func (q *Queue[I, P]) Cap() int {
	return q.s.capacity()
}

// Reserve grows the queue so that at least additional more entries can be
// inserted without reallocating. Panics if additional is negative.
func (q *Queue[I, P]) Reserve(additional int) {
	q.s.reserve(additional)
}

// ShrinkToFit drops the spare capacity of the backing arrays.
func (q *Queue[I, P]) ShrinkToFit() {
	q.s.shrinkToFit()
}

// Clear drops all entries, keeping the allocated capacity.
func (q *Queue[I, P]) Clear() {
	q.s.clear()
}

// Push inserts the item with the given priority, or replaces the priority of
// an existing item. It returns the previous priority and true when the item
// was already present. O(log n).
func (q *Queue[I, P]) Push(item I, priority P) (P, bool) {
	slot, old, existed := q.s.insertOrUpdate(item, priority)
	if existed {
		pos := q.s.posOf(slot)
		if q.s.less(priority, old) {
			q.up(pos)
		} else {
			q.down(pos)
		}
		return old, true
	}
	q.s.appendCell(slot)
	q.up(q.s.len() - 1)
	var zero P
	return zero, false
}

// Peek returns the first entry without removing it. O(1).
func (q *Queue[I, P]) Peek() (I, P, bool) {
	if q.s.len() == 0 {
		var item I
		var priority P
		return item, priority, false
	}
	item, priority := q.s.entryAt(0)
	return item, priority, true
}

// Pop removes and returns the first entry. O(log n).
func (q *Queue[I, P]) Pop() (I, P, bool) {
	item, priority, ok := q.s.swapRemove(0)
	if !ok {
		return item, priority, false
	}
	if q.s.len() > 0 {
		q.down(0)
	}
	return item, priority, true
}

// GetPriority returns the priority of item, or false if absent.
func (q *Queue[I, P]) GetPriority(item I) (P, bool) {
	return q.s.getPriority(item)
}

// ChangePriority sets the item's priority and returns the old one, or false
// if the item is not in the queue. O(log n).
func (q *Queue[I, P]) ChangePriority(item I, priority P) (P, bool) {
	old, pos, ok := q.s.changePriority(item, priority)
	if !ok {
		var zero P
		return zero, false
	}
	if q.s.less(priority, old) {
		q.up(pos)
	} else {
		q.down(pos)
	}
	return old, true
}

// Remove removes an arbitrary item from the queue and returns its pair, or
// false if the item is not present. O(log n).
func (q *Queue[I, P]) Remove(item I) (I, P, bool) {
	it, priority, pos, ok := q.s.removeKey(item)
	if !ok {
		return it, priority, false
	}
	if pos < q.s.len() {
		q.down(pos)
		q.up(pos)
	}
	return it, priority, true
}

// All returns an iterator over the (item, priority) pairs in arbitrary
// order. The queue must not be mutated during the iteration.
func (q *Queue[I, P]) All() iter.Seq2[I, P] {
	return q.s.all()
}

// build restores the heap property over arbitrary shape-array contents.
func (q *Queue[I, P]) build() {
	n := q.s.len()
	if n == 0 {
		return
	}
	for i := parent(n); i >= 0; i-- {
		q.down(i)
	}
}

// up moves the entry at position i toward the root until its parent orders
// before it.
func (q *Queue[I, P]) up(i int) {
	for i > 0 && q.s.less(q.s.priorityAt(i), q.s.priorityAt(parent(i))) {
		q.s.swap(i, parent(i))
		i = parent(i)
	}
}

// down sinks the entry at position i below any child that orders before it.
func (q *Queue[I, P]) down(i int) {
	n := q.s.len()
	for {
		first := i
		if l := left(i); l < n && q.s.less(q.s.priorityAt(l), q.s.priorityAt(first)) {
			first = l
		}
		if r := right(i); r < n && q.s.less(q.s.priorityAt(r), q.s.priorityAt(first)) {
			first = r
		}
		if first == i {
			return
		}
		q.s.swap(i, first)
		i = first
	}
}
