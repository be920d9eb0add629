// Package queue provides a generic FIFO queue backed by a single growable slice.
//
// Enqueue appends to the slice and Dequeue advances a logical head offset instead of
// shifting elements, so both operations run in amortized constant time. The dead prefix
// in front of the offset is reclaimed by compaction once it reaches half of the populated
// slice length, which bounds the wasted space to roughly the number of live elements.
//
// Key Features:
//   - Queue: the single-goroutine container. Its zero value is an empty queue ready to use.
//   - SyncQueue: a Queue guarded by a reader-biased mutex for use from multiple goroutines.
//   - FIFO: the interface implemented by both.
//   - Textual forms: String (comma-joined elements), GoString (debug rendering tagged with
//     the element type) and JSON marshaling as an array of the live elements.
//
// Reading from an empty queue is not an error: Dequeue and Peek return the zero value
// of T and false.
//
// Usage Example:
//
//	q := queue.New[string](queue.WithPrealloc(16))
//	q.Enqueue("a")
//	q.Enqueue("b")
//
//	for item, ok := q.Dequeue(); ok; item, ok = q.Dequeue() {
//	    fmt.Println(item)
//	}
package queue
