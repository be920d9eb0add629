package queue

import (
	"iter"

	"github.com/arloliu/go-fifo/internal/util"
)

// Queue is a FIFO queue backed by a growable slice and a logical head offset.
//
// Slots before the offset are dead and hold the zero value. After every Dequeue the
// dead prefix is less than half of the populated slice length.
//
// Queue is not safe for concurrent use; see SyncQueue.
type Queue[T any] struct {
	items  []T
	offset int
	count  int
	cfg    config
}

// New creates an empty Queue configured by opts.
func New[T any](opts ...Option) *Queue[T] {
	q := &Queue[T]{cfg: newConfig(opts)}
	q.items = q.newBuffer()

	return q
}

// Clear resets the queue to an empty state, releasing the current buffer.
func (q *Queue[T]) Clear() {
	if q.count > 0 && q.cfg.logger != nil {
		q.cfg.logger.Debug("queue cleared", "dropped", q.count)
	}

	q.items = q.newBuffer()
	q.offset = 0
	q.count = 0
}

// Enqueue adds an item to the tail of the queue and returns the new length.
func (q *Queue[T]) Enqueue(item T) int {
	q.items = append(q.items, item)
	q.count++

	return q.count
}

// Dequeue removes and returns the item at the head of the queue.
// It returns the zero value and false if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}

	item := q.items[q.offset]
	q.items[q.offset] = zero
	q.offset++

	if q.offset*2 >= len(q.items) {
		q.compact()
	}

	q.count--

	return item, true
}

// Peek returns the item at the head of the queue without removing it.
// It returns the zero value and false if the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	if q.count == 0 {
		var zero T
		return zero, false
	}

	return q.items[q.offset], true
}

// Len returns the number of items in the queue.
func (q *Queue[T]) Len() int {
	return q.count
}

// IsEmpty returns true if the queue is empty, false otherwise.
func (q *Queue[T]) IsEmpty() bool {
	return q.count == 0
}

// ForEach calls fn for every item from head to tail. index is the position of the
// item in the queue, starting from 0 at the head.
//
// fn must not modify q.
func (q *Queue[T]) ForEach(fn func(item T, index int, q *Queue[T])) {
	for i, item := range q.items[q.offset:] {
		fn(item, i, q)
	}
}

// All returns an iterator over index-item pairs from head to tail.
//
// The queue must not be modified while iterating.
func (q *Queue[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range q.items[q.offset:] {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Values returns an iterator over the items from head to tail.
//
// The queue must not be modified while iterating.
func (q *Queue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range q.items[q.offset:] {
			if !yield(item) {
				return
			}
		}
	}
}

// Drain returns an iterator that dequeues items until the queue is empty.
// Items that are not consumed because the loop stopped early stay in the queue.
func (q *Queue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := q.Dequeue()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// ToSlice returns the items from head to tail in a newly allocated slice.
//
// The result never shares memory with the queue and is non-nil even if the queue is empty.
func (q *Queue[T]) ToSlice() []T {
	return util.CloneSlice(q.items[q.offset:], 0)
}

// compact moves the live items to the front of a new buffer and resets the offset.
func (q *Queue[T]) compact() {
	reclaimed := q.offset
	live := len(q.items) - q.offset

	if live == 0 {
		// dequeued slots are zeroed, so the emptied buffer holds no references
		q.items = q.items[:0]
	} else {
		q.items = util.CloneSlice(q.items[q.offset:], q.cfg.prealloc)
	}
	q.offset = 0

	if q.cfg.logger != nil {
		q.cfg.logger.Debug("queue compacted", "reclaimed", reclaimed, "live", live)
	}
}

func (q *Queue[T]) newBuffer() []T {
	if q.cfg.prealloc == 0 {
		return nil
	}

	return make([]T, 0, q.cfg.prealloc)
}
