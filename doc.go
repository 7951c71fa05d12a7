// Package priorityqueue implements a generic double-ended priority queue:
// a container of unique (item, priority) pairs that gives access to both the
// minimum- and the maximum-priority entry at the same time. It is a building
// block for algorithms that need simultaneous "best" and "worst" access,
// such as bounded-window scheduling, eviction by extremes or interval
// selection.
//
// The queue is implemented as a min-max heap of slot numbers over an
// order-preserving map: the map gives every entry a stable slot number, the
// shape array arranges the slots as a complete binary tree with alternating
// min and max levels, and a position table maps slots back to their tree
// positions. The double indirection is what makes keyed operations cheap:
// an item is located in O(1) and repositioned in O(log n) instead of being
// searched for in O(n).
//
// Key features:
//   - Generic implementation for any comparable item type and any priority
//     type under a caller-supplied total order
//   - O(1) peek of both the minimum and the maximum entry
//   - O(log n) push, pop at either end, keyed removal and priority updates
//   - O(n) bulk construction, merge and conversion from the single-ended
//     Queue sharing the same storage engine
//   - Iterators over the contents, including a mutable traversal that
//     defers heap repair until the iteration ends
//
// Basic usage:
//
//	pq := priorityqueue.NewOrdered[string, int]()
//
//	pq.Push("Apples", 5)
//	pq.Push("Bananas", 8)
//	pq.Push("Strawberries", 23)
//
//	item, priority, _ := pq.PeekMax() // "Strawberries", 23
//	item, priority, _ = pq.PeekMin()  // "Apples", 5
//
//	pq.ChangePriority("Bananas", 25)
//	item, priority, _ = pq.PeekMax() // "Bananas", 25
//
//	for item, priority := range pq.Ascending() {
//		fmt.Println(item, priority)
//	}
//
// All operations are synchronous and leave the heap in a valid state before
// returning; the types perform no internal locking and follow the same
// borrowing discipline as ordinary in-memory containers (any number of
// concurrent readers, or exactly one writer).
package priorityqueue
