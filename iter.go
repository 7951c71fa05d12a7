package priorityqueue

import "iter"

// All returns an iterator over the (item, priority) pairs in arbitrary
// order. The queue must not be mutated during the iteration.
func (q *DoubleQueue[I, P]) All() iter.Seq2[I, P] {
	return q.s.all()
}

// AllMut returns an iterator over the pairs in arbitrary order that yields a
// mutable reference to each priority. Heap repair is deferred: whenever the
// traversal ends, whether it runs to completion, breaks early or unwinds in
// a panic, the heap is rebuilt once in O(n), even if no priority changed.
//
// Mutating an item is not possible through AllMut; mutating a yielded
// priority after the traversal has ended is a contract violation.
func (q *DoubleQueue[I, P]) AllMut() iter.Seq2[I, *P] {
	return func(yield func(I, *P) bool) {
		defer q.heapBuild()
		for slot := range q.s.items {
			if !yield(q.s.items[slot], &q.s.prios[slot]) {
				return
			}
		}
	}
}

// Ascending returns an iterator that drains the queue from the lowest
// priority to the highest. Entries are removed as they are yielded; an early
// break leaves the remaining entries in the queue.
func (q *DoubleQueue[I, P]) Ascending() iter.Seq2[I, P] {
	return func(yield func(I, P) bool) {
		for {
			item, priority, ok := q.PopMin()
			if !ok || !yield(item, priority) {
				return
			}
		}
	}
}

// Descending returns an iterator that drains the queue from the greatest
// priority to the lowest. Entries are removed as they are yielded; an early
// break leaves the remaining entries in the queue.
func (q *DoubleQueue[I, P]) Descending() iter.Seq2[I, P] {
	return func(yield func(I, P) bool) {
		for {
			item, priority, ok := q.PopMax()
			if !ok || !yield(item, priority) {
				return
			}
		}
	}
}

// SortedAscending drains the queue and returns the items sorted from the
// lowest priority to the highest. O(n log n).
func (q *DoubleQueue[I, P]) SortedAscending() []I {
	res := make([]I, 0, q.Len())
	for item := range q.Ascending() {
		res = append(res, item)
	}
	return res
}

// SortedDescending drains the queue and returns the items sorted from the
// greatest priority to the lowest. O(n log n).
func (q *DoubleQueue[I, P]) SortedDescending() []I {
	res := make([]I, 0, q.Len())
	for item := range q.Descending() {
		res = append(res, item)
	}
	return res
}

// Items returns a copy of the items in arbitrary order.
func (q *DoubleQueue[I, P]) Items() []I {
	res := make([]I, len(q.s.items))
	copy(res, q.s.items)
	return res
}
