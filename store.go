package priorityqueue

import (
	"iter"
	"slices"
)

// store is the storage engine shared by Queue and DoubleQueue. It keeps the
// (item, priority) pairs in an order-preserving map made of three parallel
// structures:
//
//   - items/prios: entries in insertion order; an entry's index in these
//     slices is its slot number, stable until the entry is removed.
//   - index: item -> slot, for O(1) keyed lookups.
//   - shape: heap position -> slot, the array the heap algorithms reorder.
//   - pos: slot -> heap position, the reverse of shape.
//
// The invariant shape[pos[s]] == s and pos[shape[p]] == p must hold after
// every mutation; removal compacts slot numbers by moving the last entry
// into the vacated slot.
type store[I comparable, P any] struct {
	items []I
	prios []P
	index map[I]int
	shape []int
	pos   []int
	less  func(a, b P) bool
}

func newStore[I comparable, P any](capacity int, less func(a, b P) bool) store[I, P] {
	return store[I, P]{
		items: make([]I, 0, capacity),
		prios: make([]P, 0, capacity),
		index: make(map[I]int, capacity),
		shape: make([]int, 0, capacity),
		pos:   make([]int, 0, capacity),
		less:  less,
	}
}

func (s *store[I, P]) len() int {
	return len(s.items)
}

// insertOrUpdate replaces the priority in place if the item already has a
// slot, otherwise it appends a new slot at the end of the map. The heap cell
// for a new slot is not created here; callers append it with appendCell.
func (s *store[I, P]) insertOrUpdate(item I, priority P) (int, P, bool) {
	if slot, ok := s.index[item]; ok {
		old := s.prios[slot]
		s.prios[slot] = priority
		return slot, old, true
	}
	slot := len(s.items)
	s.index[item] = slot
	s.items = append(s.items, item)
	s.prios = append(s.prios, priority)
	var zero P
	return slot, zero, false
}

// appendCell extends the shape array and position table for a freshly
// inserted slot, placing it at the last heap position.
func (s *store[I, P]) appendCell(slot int) {
	s.shape = append(s.shape, slot)
	s.pos = append(s.pos, len(s.shape)-1)
}

func (s *store[I, P]) getSlot(item I) (int, bool) {
	slot, ok := s.index[item]
	return slot, ok
}

func (s *store[I, P]) slotAt(position int) int {
	return s.shape[position]
}

func (s *store[I, P]) posOf(slot int) int {
	return s.pos[slot]
}

// priorityAt dereferences shape -> map in O(1).
func (s *store[I, P]) priorityAt(position int) P {
	return s.prios[s.shape[position]]
}

func (s *store[I, P]) prioOfSlot(slot int) P {
	return s.prios[slot]
}

func (s *store[I, P]) entryAt(position int) (I, P) {
	slot := s.shape[position]
	return s.items[slot], s.prios[slot]
}

// swap exchanges two cells of the shape array and updates the position
// table for both moved slots.
func (s *store[I, P]) swap(a, b int) {
	s.shape[a], s.shape[b] = s.shape[b], s.shape[a]
	s.pos[s.shape[a]] = a
	s.pos[s.shape[b]] = b
}

// move copies the slot in shape cell src into shape cell dst and fixes the
// moved slot's position table entry. The cell at src is left stale; callers
// finish the hole-move sequence with place.
func (s *store[I, P]) move(dst, src int) {
	s.shape[dst] = s.shape[src]
	s.pos[s.shape[dst]] = dst
}

// place writes slot into shape cell position and records the position.
func (s *store[I, P]) place(position, slot int) {
	s.shape[position] = slot
	s.pos[slot] = position
}

// swapRemove removes the entry whose current heap position is position and
// returns it. The last shape cell fills the vacated position and the last
// map slot fills the vacated slot; the position table is reconciled for both
// relocations. Callers repair the heap at the vacated position afterwards.
func (s *store[I, P]) swapRemove(position int) (I, P, bool) {
	n := len(s.shape)
	if position < 0 || position >= n {
		var item I
		var priority P
		return item, priority, false
	}
	slot := s.shape[position]
	last := n - 1

	s.shape[position] = s.shape[last]
	s.shape = s.shape[:last]
	if position < last {
		s.pos[s.shape[position]] = position
	}

	// Compact the position table: the entry for the last slot moves into
	// the index vacated by the removed slot.
	s.pos[slot] = s.pos[last]
	s.pos = s.pos[:last]

	item, priority := s.mapSwapRemove(slot)

	// The map entry formerly numbered last is now numbered slot; rewrite
	// the shape cell that still references the old number.
	if slot < last {
		s.shape[s.pos[slot]] = slot
	}
	return item, priority, true
}

// mapSwapRemove removes the map entry at slot, moving the last entry into
// its place, and returns the removed pair.
func (s *store[I, P]) mapSwapRemove(slot int) (I, P) {
	item := s.items[slot]
	priority := s.prios[slot]
	last := len(s.items) - 1
	delete(s.index, item)
	if slot != last {
		s.items[slot] = s.items[last]
		s.prios[slot] = s.prios[last]
		s.index[s.items[slot]] = slot
	}
	s.items = s.items[:last]
	s.prios = s.prios[:last]
	return item, priority
}

// removeKey removes an entry by item, independent of heap order, and returns
// the pair together with the heap position it vacated.
func (s *store[I, P]) removeKey(item I) (I, P, int, bool) {
	slot, ok := s.index[item]
	if !ok {
		var it I
		var priority P
		return it, priority, 0, false
	}
	position := s.pos[slot]
	it, priority, _ := s.swapRemove(position)
	return it, priority, position, true
}

func (s *store[I, P]) getPriority(item I) (P, bool) {
	if slot, ok := s.index[item]; ok {
		return s.prios[slot], true
	}
	var priority P
	return priority, false
}

// changePriority overwrites an item's priority in place and returns the old
// value with the item's current heap position.
func (s *store[I, P]) changePriority(item I, priority P) (P, int, bool) {
	slot, ok := s.index[item]
	if !ok {
		var old P
		return old, 0, false
	}
	old := s.prios[slot]
	s.prios[slot] = priority
	return old, s.pos[slot], true
}

// changePriorityBy mutates an item's priority through the supplied function
// and returns the item's current heap position.
func (s *store[I, P]) changePriorityBy(item I, fn func(*P)) (int, bool) {
	slot, ok := s.index[item]
	if !ok {
		return 0, false
	}
	fn(&s.prios[slot])
	return s.pos[slot], true
}

// appendStore merges other's entries into s, skipping items already present,
// and leaves other empty. When other holds more entries the underlying data
// is swapped first, so which side's priority survives a duplicate depends on
// the relative sizes of the two stores. The shape array and position table
// are reset to insertion order; callers must rebuild the heap.
func (s *store[I, P]) appendStore(other *store[I, P]) {
	if len(other.items) > len(s.items) {
		s.items, other.items = other.items, s.items
		s.prios, other.prios = other.prios, s.prios
		s.index, other.index = other.index, s.index
		s.shape, other.shape = other.shape, s.shape
		s.pos, other.pos = other.pos, s.pos
	}
	for i, item := range other.items {
		if _, ok := s.index[item]; ok {
			continue
		}
		slot := len(s.items)
		s.index[item] = slot
		s.items = append(s.items, item)
		s.prios = append(s.prios, other.prios[i])
	}
	other.clear()

	s.shape = s.shape[:0]
	s.pos = s.pos[:0]
	for slot := range s.items {
		s.shape = append(s.shape, slot)
		s.pos = append(s.pos, slot)
	}
}

func (s *store[I, P]) capacity() int {
	return cap(s.items)
}

// reserve grows the backing arrays so that at least additional more entries
// fit without reallocating. Panics if additional is negative.
func (s *store[I, P]) reserve(additional int) {
	s.items = slices.Grow(s.items, additional)
	s.prios = slices.Grow(s.prios, additional)
	s.shape = slices.Grow(s.shape, additional)
	s.pos = slices.Grow(s.pos, additional)
}

func (s *store[I, P]) shrinkToFit() {
	s.items = slices.Clip(s.items)
	s.prios = slices.Clip(s.prios)
	s.shape = slices.Clip(s.shape)
	s.pos = slices.Clip(s.pos)
}

func (s *store[I, P]) clear() {
	clear(s.index)
	s.items = s.items[:0]
	s.prios = s.prios[:0]
	s.shape = s.shape[:0]
	s.pos = s.pos[:0]
}

// all iterates the (item, priority) pairs in insertion order, which is
// arbitrary with respect to priorities.
func (s *store[I, P]) all() iter.Seq2[I, P] {
	return func(yield func(I, P) bool) {
		for i := range s.items {
			if !yield(s.items[i], s.prios[i]) {
				return
			}
		}
	}
}
