package queue

// FIFO defines the operation set shared by Queue and SyncQueue.
type FIFO[T any] interface {
	// Enqueue adds an item to the tail of the queue and returns the new length.
	Enqueue(item T) int
	// Dequeue removes and returns the item at the head of the queue.
	// It returns the zero value and false if the queue is empty.
	Dequeue() (T, bool)
	// Peek returns the item at the head of the queue without removing it.
	// It returns the zero value and false if the queue is empty.
	Peek() (T, bool)
	// Clear resets the queue to an empty state.
	Clear()
	// Len returns the number of items in the queue.
	Len() int
	// IsEmpty returns true if the queue is empty, false otherwise.
	IsEmpty() bool
	// ToSlice returns the items from head to tail in a newly allocated slice.
	ToSlice() []T
}

var (
	_ FIFO[int] = (*Queue[int])(nil)
	_ FIFO[int] = (*SyncQueue[int])(nil)
)
