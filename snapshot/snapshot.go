package snapshot

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"
	"io"

	priorityqueue "github.com/cosmicexplorer/priority-queue"
)

var (
	// MagicBytes identify a valid queue snapshot stream (DPQ).
	MagicBytes = []byte{0x44, 0x50, 0x51}

	ErrInvalidMagicBytes = errors.New("invalid magic bytes - not a valid queue snapshot")
)

// entry is the wire form of one (item, priority) pair.
type entry[I comparable, P any] struct {
	Item     I
	Priority P
}

// Write serializes the logical contents of q: the (item, priority) pairs in
// arbitrary order, preceded by the magic bytes and the entry count. The heap
// shape is never written; Read rebuilds it.
func Write[I comparable, P any](w io.Writer, q *priorityqueue.DoubleQueue[I, P]) error {
	if _, err := w.Write(MagicBytes); err != nil {
		return fmt.Errorf("error writing magic bytes: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(q.Len())); err != nil {
		return fmt.Errorf("error writing entry count: %w", err)
	}
	enc := gob.NewEncoder(w)
	for item, priority := range q.All() {
		if err := enc.Encode(entry[I, P]{Item: item, Priority: priority}); err != nil {
			return fmt.Errorf("error encoding entry: %w", err)
		}
	}
	return nil
}

// Read reconstructs a queue written by Write, ordering it by less. The heap
// is built once from the decoded contents, in O(n).
func Read[I comparable, P any](r io.Reader, less func(a, b P) bool) (*priorityqueue.DoubleQueue[I, P], error) {
	magic := make([]byte, len(MagicBytes))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("error reading magic bytes: %w", err)
	}
	if !bytes.Equal(magic, MagicBytes) {
		return nil, ErrInvalidMagicBytes
	}
	var count uint64
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("error reading entry count: %w", err)
	}
	dec := gob.NewDecoder(r)
	pairs := make([]priorityqueue.Pair[I, P], 0, count)
	for i := uint64(0); i < count; i++ {
		var e entry[I, P]
		if err := dec.Decode(&e); err != nil {
			return nil, fmt.Errorf("error decoding entry %d: %w", i, err)
		}
		pairs = append(pairs, priorityqueue.Pair[I, P]{Item: e.Item, Priority: e.Priority})
	}
	return priorityqueue.FromPairs(pairs, less), nil
}
