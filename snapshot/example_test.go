package snapshot_test

import (
	"bytes"
	"fmt"

	priorityqueue "github.com/cosmicexplorer/priority-queue"
	"github.com/cosmicexplorer/priority-queue/snapshot"
)

// ExampleWrite round-trips a queue through a snapshot stream.
func ExampleWrite() {
	pq := priorityqueue.NewOrdered[string, int]()
	pq.Push("Apples", 5)
	pq.Push("Bananas", 8)
	pq.Push("Strawberries", 23)

	var buf bytes.Buffer
	if err := snapshot.Write(&buf, pq); err != nil {
		fmt.Println("write:", err)
		return
	}

	restored, err := snapshot.Read[string](&buf, func(a, b int) bool { return a < b })
	if err != nil {
		fmt.Println("read:", err)
		return
	}

	for item, priority := range restored.Ascending() {
		fmt.Printf("%s = %d\n", item, priority)
	}

	// Output:
	// Apples = 5
	// Bananas = 8
	// Strawberries = 23
}
