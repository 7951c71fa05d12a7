package priorityqueue

import "math/bits"

// The shape array is interpreted as a complete binary tree laid out in the
// usual way: children of i at 2i+1 and 2i+2, parent at (i-1)/2. Levels
// alternate polarity: the root level and every even level order their
// subtrees minimum-first, odd levels maximum-first.

func left(i int) int { return 2*i + 1 }

func right(i int) int { return 2*i + 2 }

func parent(i int) int { return (i - 1) / 2 }

func grandparent(i int) int { return parent(parent(i)) }

// level returns the depth of a heap position; the root is level 0.
func level(i int) int { return log2(i + 1) }

func onMinLevel(i int) bool { return level(i)%2 == 0 }

func log2(x int) int { return bits.Len(uint(x)) - 1 }

// betterToRebuild reports whether merging m incoming entries into a heap of
// n entries is cheaper as one O(n+m) full rebuild than as m individual
// O(log n) pushes. Rebuilding costs about 2*(n+m) comparisons in the worst
// case, pushing about m*log2(n).
func betterToRebuild(n, m int) bool {
	if n <= 1 {
		return false
	}
	return 2*(n+m) < m*log2(n)
}

// heapify repairs the heap downward from position i after the entry there
// was removed or overwritten, dispatching on the polarity of i's level.
func (q *DoubleQueue[I, P]) heapify(i int) {
	if q.s.len() <= 1 {
		return
	}
	if onMinLevel(i) {
		q.sink(i, q.s.less)
	} else {
		q.sink(i, q.greater)
	}
}

func (q *DoubleQueue[I, P]) greater(a, b P) bool { return q.s.less(b, a) }

// sink moves the entry at position i down until the local order holds.
// before reports whether its first argument belongs above its second on this
// polarity, so before is less on min levels and greater on max levels.
//
// Each round selects the best of i's up to six children and grandchildren.
// If that candidate beats the current entry they swap; when the candidate
// was a grandchild the displaced entry may now violate the opposite-polarity
// order against its new parent, in which case one more swap settles it a
// level further down. A single pass therefore covers both the descent and
// the second-level correction in O(log n) swaps.
func (q *DoubleQueue[I, P]) sink(i int, before func(a, b P) bool) {
	n := q.s.len()
	for i <= parent(n-1) {
		m := i
		candidates := [6]int{
			left(i), right(i),
			left(left(i)), right(left(i)),
			left(right(i)), right(right(i)),
		}
		best := -1
		for _, c := range candidates {
			if c >= n {
				continue
			}
			if best < 0 || before(q.s.priorityAt(c), q.s.priorityAt(best)) {
				best = c
			}
		}
		if !before(q.s.priorityAt(best), q.s.priorityAt(m)) {
			break
		}
		q.s.swap(best, m)
		if best > right(m) && before(q.s.priorityAt(parent(best)), q.s.priorityAt(best)) {
			q.s.swap(best, parent(best))
		}
		i = best
	}
}

// bubbleUp inserts slot's priority starting at position and walks upward,
// returning the position where the slot settled. The walk has two phases:
// a single opposite-polarity comparison against the parent decides which
// side of the alternating order the value belongs to, then climb raises it
// two levels at a time against grandparents only. Cells are moved hole-style;
// the slot itself is written once at the end.
func (q *DoubleQueue[I, P]) bubbleUp(position, slot int) int {
	if position > 0 {
		par := parent(position)
		incoming := q.s.prioOfSlot(slot)
		if onMinLevel(position) {
			if q.s.less(q.s.priorityAt(par), incoming) {
				// Greater than its min-level parent: it belongs on
				// the max side, starting from the parent's old spot.
				q.s.move(position, par)
				position = q.climb(par, slot, q.greater)
			} else {
				position = q.climb(position, slot, q.s.less)
			}
		} else if q.s.less(incoming, q.s.priorityAt(par)) {
			q.s.move(position, par)
			position = q.climb(par, slot, q.s.less)
		} else {
			position = q.climb(position, slot, q.greater)
		}
	}
	q.s.place(position, slot)
	return position
}

// climb raises slot's priority from position two levels at a time, comparing
// against grandparents only, while the grandparent comes after it under
// before. The parent relationship was already settled at the polarity
// boundary and is never re-tested mid-climb.
func (q *DoubleQueue[I, P]) climb(position, slot int, before func(a, b P) bool) int {
	incoming := q.s.prioOfSlot(slot)
	for position > 0 && parent(position) > 0 && before(incoming, q.s.priorityAt(grandparent(position))) {
		q.s.move(position, grandparent(position))
		position = grandparent(position)
	}
	return position
}

// upHeapify repositions the entry currently at position i after its priority
// changed in either direction: bubble up first, then repair downward from
// wherever the entry settled.
func (q *DoubleQueue[I, P]) upHeapify(i int) {
	slot := q.s.slotAt(i)
	pos := q.bubbleUp(i, slot)
	q.heapify(pos)
}

// heapBuild restores the min-max property over arbitrary shape-array
// contents by sinking every internal node, last parent first. O(n) total.
func (q *DoubleQueue[I, P]) heapBuild() {
	n := q.s.len()
	if n == 0 {
		return
	}
	for i := parent(n); i >= 0; i-- {
		q.heapify(i)
	}
}

// findMin returns the heap position of the minimum entry, or -1 if empty.
// The minimum is always at the root.
func (q *DoubleQueue[I, P]) findMin() int {
	if q.s.len() == 0 {
		return -1
	}
	return 0
}

// findMax returns the heap position of the maximum entry, or -1 if empty.
// With the root on a min level the maximum sits at one of the root's
// children, so only positions 1 and 2 compete.
func (q *DoubleQueue[I, P]) findMax() int {
	switch q.s.len() {
	case 0:
		return -1
	case 1:
		return 0
	case 2:
		return 1
	default:
		if q.s.less(q.s.priorityAt(1), q.s.priorityAt(2)) {
			return 2
		}
		return 1
	}
}
