package priorityqueue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireIndirection asserts the dual-indirection invariant: shape and
// position table are inverse permutations and the index map agrees with the
// slot numbering.
func requireIndirection[I comparable, P any](t *testing.T, s *store[I, P]) {
	t.Helper()
	require.Len(t, s.prios, len(s.items))
	require.Len(t, s.shape, len(s.items))
	require.Len(t, s.pos, len(s.items))
	require.Len(t, s.index, len(s.items))
	for p, slot := range s.shape {
		require.Equal(t, p, s.pos[slot], "position table out of sync for slot %d", slot)
	}
	for slot, p := range s.pos {
		require.Equal(t, slot, s.shape[p], "shape array out of sync at position %d", p)
	}
	for slot, item := range s.items {
		require.Equal(t, slot, s.index[item], "index out of sync for item %v", item)
	}
}

// requireValidHeap asserts the full queue invariant: dual indirection plus
// the min-max property. Checking every position against its parent and
// grandparent covers all ancestor relations by induction.
func requireValidHeap[I comparable, P any](t *testing.T, q *DoubleQueue[I, P]) {
	t.Helper()
	requireIndirection(t, &q.s)
	for i := 1; i < q.s.len(); i++ {
		requireOrdered(t, &q.s, parent(i), i)
		if parent(i) > 0 {
			requireOrdered(t, &q.s, grandparent(i), i)
		}
	}
}

func requireOrdered[I comparable, P any](t *testing.T, s *store[I, P], above, below int) {
	t.Helper()
	if onMinLevel(above) {
		require.False(t, s.less(s.priorityAt(below), s.priorityAt(above)),
			"min-level position %d must not order after descendant %d", above, below)
	} else {
		require.False(t, s.less(s.priorityAt(above), s.priorityAt(below)),
			"max-level position %d must not order before descendant %d", above, below)
	}
}
