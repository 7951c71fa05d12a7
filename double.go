package priorityqueue

import (
	"cmp"
	"iter"
)

// Pair couples an item with its priority, for bulk construction and
// extension.
type Pair[I comparable, P any] struct {
	Item     I
	Priority P
}

// DoubleQueue is a double-ended priority queue: it stores unique
// (item, priority) pairs and retrieves both the minimum- and the
// maximum-priority entry in O(1), with O(log n) insertion, removal and
// priority changes.
//
// It is implemented as a min-max heap of slot numbers over an
// order-preserving map, so an item can be located and repositioned without
// scanning the heap. Items must be comparable; the ordering of priorities
// is defined by the less function supplied at construction, which must be a
// strict total order.
//
// DoubleQueue is not safe for concurrent mutation.
type DoubleQueue[I comparable, P any] struct {
	s store[I, P]
}

// New creates an empty DoubleQueue ordered by less.
func New[I comparable, P any](less func(a, b P) bool) *DoubleQueue[I, P] {
	return NewWithCapacity[I](0, less)
}

// NewWithCapacity creates an empty DoubleQueue with room for capacity
// entries before reallocating.
func NewWithCapacity[I comparable, P any](capacity int, less func(a, b P) bool) *DoubleQueue[I, P] {
	return &DoubleQueue[I, P]{s: newStore[I, P](capacity, less)}
}

// NewOrdered creates an empty DoubleQueue over a naturally ordered priority
// type.
func NewOrdered[I comparable, P cmp.Ordered]() *DoubleQueue[I, P] {
	return New[I](cmp.Less[P])
}

// FromPairs builds a DoubleQueue from pairs in O(n): entries are loaded
// first and the heap is built once at the end. Duplicate items collapse to
// the last occurrence's priority.
func FromPairs[I comparable, P any](pairs []Pair[I, P], less func(a, b P) bool) *DoubleQueue[I, P] {
	q := NewWithCapacity[I](len(pairs), less)
	q.load(pairs)
	q.heapBuild()
	return q
}

// Collect builds a DoubleQueue from an iterator of (item, priority) pairs,
// heapifying once at the end. Duplicate items collapse to the last
// occurrence's priority.
func Collect[I comparable, P any](seq iter.Seq2[I, P], less func(a, b P) bool) *DoubleQueue[I, P] {
	q := New[I](less)
	for item, priority := range seq {
		slot, _, existed := q.s.insertOrUpdate(item, priority)
		if !existed {
			q.s.appendCell(slot)
		}
	}
	q.heapBuild()
	return q
}

// load inserts pairs without maintaining heap order.
func (q *DoubleQueue[I, P]) load(pairs []Pair[I, P]) {
	for _, p := range pairs {
		slot, _, existed := q.s.insertOrUpdate(p.Item, p.Priority)
		if !existed {
			q.s.appendCell(slot)
		}
	}
}

// Len returns the number of entries in the queue.
func (q *DoubleQueue[I, P]) Len() int {
	return q.s.len()
}

// IsEmpty reports whether the queue contains no entries.
func (q *DoubleQueue[I, P]) IsEmpty() bool {
	return q.s.len() == 0
}

// Cap returns the number of entries the queue can hold without reallocating.
func (q *DoubleQueue[I, P]) Cap() int {
	return q.s.capacity()
}

// Reserve grows the queue so that at least additional more entries can be
// inserted without reallocating. Panics if additional is negative.
func (q *DoubleQueue[I, P]) Reserve(additional int) {
	q.s.reserve(additional)
}

// ShrinkToFit drops the spare capacity of the backing arrays.
func (q *DoubleQueue[I, P]) ShrinkToFit() {
	q.s.shrinkToFit()
}

// Clear drops all entries, keeping the allocated capacity.
func (q *DoubleQueue[I, P]) Clear() {
	q.s.clear()
}

// Push inserts the item with the given priority, or replaces the priority of
// an existing item. It returns the previous priority and true when the item
// was already present. O(log n).
func (q *DoubleQueue[I, P]) Push(item I, priority P) (P, bool) {
	slot, old, existed := q.s.insertOrUpdate(item, priority)
	if existed {
		// The new priority may have to move in either direction.
		q.upHeapify(q.s.posOf(slot))
		return old, true
	}
	q.s.appendCell(slot)
	q.bubbleUp(q.s.len()-1, slot)
	var zero P
	return zero, false
}

// PushIncrease inserts the item, or raises its priority if the incoming one
// is strictly greater than the stored one. When the incoming priority is
// rejected it is returned unchanged with true; otherwise PushIncrease
// behaves like Push.
func (q *DoubleQueue[I, P]) PushIncrease(item I, priority P) (P, bool) {
	if current, ok := q.s.getPriority(item); ok && !q.s.less(current, priority) {
		return priority, true
	}
	return q.Push(item, priority)
}

// PushDecrease inserts the item, or lowers its priority if the incoming one
// is strictly less than the stored one. When the incoming priority is
// rejected it is returned unchanged with true; otherwise PushDecrease
// behaves like Push.
func (q *DoubleQueue[I, P]) PushDecrease(item I, priority P) (P, bool) {
	if current, ok := q.s.getPriority(item); ok && !q.s.less(priority, current) {
		return priority, true
	}
	return q.Push(item, priority)
}

// ChangePriority sets the item's priority and returns the old one, or false
// if the item is not in the queue. The item is found in O(1); the
// reposition costs O(log n).
func (q *DoubleQueue[I, P]) ChangePriority(item I, priority P) (P, bool) {
	old, pos, ok := q.s.changePriority(item, priority)
	if !ok {
		var zero P
		return zero, false
	}
	q.upHeapify(pos)
	return old, true
}

// ChangePriorityBy mutates the item's priority in place through fn and
// repositions the entry. It reports whether the item was found.
func (q *DoubleQueue[I, P]) ChangePriorityBy(item I, fn func(*P)) bool {
	pos, ok := q.s.changePriorityBy(item, fn)
	if !ok {
		return false
	}
	q.upHeapify(pos)
	return true
}

// GetPriority returns the priority of item, or false if absent.
func (q *DoubleQueue[I, P]) GetPriority(item I) (P, bool) {
	return q.s.getPriority(item)
}

// Get returns the stored (item, priority) pair for item, or false if absent.
func (q *DoubleQueue[I, P]) Get(item I) (I, P, bool) {
	slot, ok := q.s.getSlot(item)
	if !ok {
		var it I
		var priority P
		return it, priority, false
	}
	return q.s.items[slot], q.s.prios[slot], true
}

// GetMut returns a mutable reference to the stored item together with its
// priority. Mutating the item in a way that changes its equality is a
// contract violation: the queue's behavior is undefined afterwards. The
// priority cannot be changed through GetMut; use Push, ChangePriority or
// ChangePriorityBy.
func (q *DoubleQueue[I, P]) GetMut(item I) (*I, P, bool) {
	slot, ok := q.s.getSlot(item)
	if !ok {
		var priority P
		return nil, priority, false
	}
	return &q.s.items[slot], q.s.prios[slot], true
}

// PeekMin returns the entry with the lowest priority without removing it.
// O(1).
func (q *DoubleQueue[I, P]) PeekMin() (I, P, bool) {
	return q.peek(q.findMin())
}

// PeekMax returns the entry with the greatest priority without removing it.
// O(1).
func (q *DoubleQueue[I, P]) PeekMax() (I, P, bool) {
	return q.peek(q.findMax())
}

func (q *DoubleQueue[I, P]) peek(position int) (I, P, bool) {
	if position < 0 {
		var item I
		var priority P
		return item, priority, false
	}
	item, priority := q.s.entryAt(position)
	return item, priority, true
}

// PeekMinMut is PeekMin with a mutable item reference, under the same
// contract as GetMut.
func (q *DoubleQueue[I, P]) PeekMinMut() (*I, P, bool) {
	return q.peekMut(q.findMin())
}

// PeekMaxMut is PeekMax with a mutable item reference, under the same
// contract as GetMut.
func (q *DoubleQueue[I, P]) PeekMaxMut() (*I, P, bool) {
	return q.peekMut(q.findMax())
}

func (q *DoubleQueue[I, P]) peekMut(position int) (*I, P, bool) {
	if position < 0 {
		var priority P
		return nil, priority, false
	}
	slot := q.s.slotAt(position)
	return &q.s.items[slot], q.s.prios[slot], true
}

// PopMin removes and returns the entry with the lowest priority. O(log n).
func (q *DoubleQueue[I, P]) PopMin() (I, P, bool) {
	return q.pop(q.findMin())
}

// PopMax removes and returns the entry with the greatest priority. O(log n).
func (q *DoubleQueue[I, P]) PopMax() (I, P, bool) {
	return q.pop(q.findMax())
}

func (q *DoubleQueue[I, P]) pop(position int) (I, P, bool) {
	if position < 0 {
		var item I
		var priority P
		return item, priority, false
	}
	item, priority, _ := q.s.swapRemove(position)
	q.heapify(position)
	return item, priority, true
}

// Remove removes an arbitrary item from the queue and returns its pair, or
// false if the item is not present. O(log n).
func (q *DoubleQueue[I, P]) Remove(item I) (I, P, bool) {
	it, priority, pos, ok := q.s.removeKey(item)
	if !ok {
		return it, priority, false
	}
	if pos < q.s.len() {
		q.upHeapify(pos)
	}
	return it, priority, true
}

// Extend inserts all pairs, replacing the priorities of items already
// present. When the incoming batch is large relative to the queue it loads
// the entries raw and rebuilds the heap once in O(n+m) instead of pushing
// them individually in O(m log n); the two strategies are observably
// identical.
func (q *DoubleQueue[I, P]) Extend(pairs []Pair[I, P]) {
	q.Reserve(len(pairs))
	if betterToRebuild(q.s.len(), len(pairs)) {
		q.load(pairs)
		q.heapBuild()
		return
	}
	for _, p := range pairs {
		q.Push(p.Item, p.Priority)
	}
}

// ExtendSeq pushes every pair of the iterator individually; without a size
// hint the rebuild strategy cannot be costed.
func (q *DoubleQueue[I, P]) ExtendSeq(seq iter.Seq2[I, P]) {
	for item, priority := range seq {
		q.Push(item, priority)
	}
}

// Append moves all entries of other into q and leaves other empty. Items
// already present in q are dropped from other; which side's priority
// survives a duplicate is implementation-defined and depends on the relative
// sizes of the two queues. O(n).
func (q *DoubleQueue[I, P]) Append(other *DoubleQueue[I, P]) {
	q.s.appendStore(&other.s)
	q.heapBuild()
}
