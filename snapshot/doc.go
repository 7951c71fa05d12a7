// Package snapshot serializes the logical contents of a priority queue to an
// io.Writer and reconstructs the queue from an io.Reader.
//
// Only the (item, priority) pairs cross the boundary: the heap shape and the
// position table are derived state and are rebuilt in O(n) when a snapshot
// is read back. The stream is a small magic-byte header, the entry count and
// a gob-encoded sequence of pairs.
//
// Basic usage:
//
//	var buf bytes.Buffer
//	if err := snapshot.Write(&buf, pq); err != nil {
//		return err
//	}
//	restored, err := snapshot.Read(&buf, func(a, b int) bool { return a < b })
package snapshot
