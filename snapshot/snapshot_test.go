package snapshot_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	priorityqueue "github.com/cosmicexplorer/priority-queue"
	"github.com/cosmicexplorer/priority-queue/snapshot"
)

func intLess(a, b int) bool { return a < b }

func TestRoundTrip(t *testing.T) {
	pq := priorityqueue.NewOrdered[string, int]()
	pq.Push("Apples", 5)
	pq.Push("Bananas", 8)
	pq.Push("Strawberries", 23)

	var buf bytes.Buffer
	require.NoError(t, snapshot.Write(&buf, pq))

	restored, err := snapshot.Read[string](&buf, intLess)
	require.NoError(t, err)
	assert.Equal(t, 3, restored.Len())

	item, prio, ok := restored.PeekMin()
	require.True(t, ok)
	assert.Equal(t, "Apples", item)
	assert.Equal(t, 5, prio)

	item, prio, ok = restored.PeekMax()
	require.True(t, ok)
	assert.Equal(t, "Strawberries", item)
	assert.Equal(t, 23, prio)

	assert.Equal(t, []string{"Apples", "Bananas", "Strawberries"}, restored.SortedAscending())

	// The original queue is untouched by Write.
	assert.Equal(t, 3, pq.Len())
}

func TestRoundTripEmpty(t *testing.T) {
	pq := priorityqueue.NewOrdered[string, int]()

	var buf bytes.Buffer
	require.NoError(t, snapshot.Write(&buf, pq))

	restored, err := snapshot.Read[string](&buf, intLess)
	require.NoError(t, err)
	assert.True(t, restored.IsEmpty())
}

func TestReadInvalidMagicBytes(t *testing.T) {
	_, err := snapshot.Read[string](bytes.NewReader([]byte("not a snapshot")), intLess)
	assert.ErrorIs(t, err, snapshot.ErrInvalidMagicBytes)
}

func TestReadTruncatedStream(t *testing.T) {
	pq := priorityqueue.NewOrdered[string, int]()
	pq.Push("a", 1)
	pq.Push("b", 2)

	var buf bytes.Buffer
	require.NoError(t, snapshot.Write(&buf, pq))

	truncated := buf.Bytes()[:buf.Len()-4]
	_, err := snapshot.Read[string](bytes.NewReader(truncated), intLess)
	assert.Error(t, err)
}

func TestReadEmptyStream(t *testing.T) {
	_, err := snapshot.Read[string](bytes.NewReader(nil), intLess)
	assert.ErrorIs(t, err, io.EOF)
}
