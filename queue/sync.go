package queue

import (
	"iter"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
)

// SyncQueue is a Queue that is safe for concurrent use by multiple goroutines.
//
// Read-only operations share a reader-biased lock; mutations are exclusive.
// No operation waits for items to become available.
//
// The zero value is an empty queue with default options. A SyncQueue must not be
// copied after first use.
type SyncQueue[T any] struct {
	once sync.Once
	mu   *xsync.RBMutex
	q    *Queue[T]
}

// NewSync creates an empty SyncQueue configured by opts.
func NewSync[T any](opts ...Option) *SyncQueue[T] {
	return &SyncQueue[T]{
		mu: xsync.NewRBMutex(),
		q:  New[T](opts...),
	}
}

// lazyInit prepares a zero-value SyncQueue, such as one allocated by encoding/json.
func (s *SyncQueue[T]) lazyInit() {
	s.once.Do(func() {
		if s.mu == nil {
			s.mu = xsync.NewRBMutex()
		}
		if s.q == nil {
			s.q = New[T]()
		}
	})
}

// Clear resets the queue to an empty state.
func (s *SyncQueue[T]) Clear() {
	s.lazyInit()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.q.Clear()
}

// Enqueue adds an item to the tail of the queue and returns the new length.
func (s *SyncQueue[T]) Enqueue(item T) int {
	s.lazyInit()
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.q.Enqueue(item)
}

// Dequeue removes and returns the item at the head of the queue.
// It returns the zero value and false if the queue is empty.
func (s *SyncQueue[T]) Dequeue() (T, bool) {
	s.lazyInit()
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.q.Dequeue()
}

// Peek returns the item at the head of the queue without removing it.
func (s *SyncQueue[T]) Peek() (T, bool) {
	s.lazyInit()
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.q.Peek()
}

// Len returns the number of items in the queue.
func (s *SyncQueue[T]) Len() int {
	s.lazyInit()
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.q.Len()
}

// IsEmpty returns true if the queue is empty, false otherwise.
func (s *SyncQueue[T]) IsEmpty() bool {
	s.lazyInit()
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.q.IsEmpty()
}

// ForEach calls fn for every item from head to tail while holding the read lock.
//
// Unlike Queue.ForEach, fn does not receive the queue: calling a mutating method of s
// from fn would deadlock on the held lock. Use Do for compound operations.
func (s *SyncQueue[T]) ForEach(fn func(item T, index int)) {
	s.lazyInit()
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	for i, item := range s.q.All() {
		fn(item, i)
	}
}

// ToSlice returns the items from head to tail in a newly allocated slice.
func (s *SyncQueue[T]) ToSlice() []T {
	s.lazyInit()
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.q.ToSlice()
}

// Drain returns an iterator that dequeues items until the queue is empty. Each item
// is dequeued under its own lock acquisition, so other goroutines may interleave.
func (s *SyncQueue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := s.Dequeue()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Do runs fn with exclusive access to the underlying queue, allowing compound
// operations such as a conditional dequeue to be atomic.
//
// fn must not retain q after it returns.
func (s *SyncQueue[T]) Do(fn func(q *Queue[T])) {
	s.lazyInit()
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.q)
}

// String returns the items joined by commas.
func (s *SyncQueue[T]) String() string {
	s.lazyInit()
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.q.String()
}

// GoString returns a debug representation tagged with the element type.
func (s *SyncQueue[T]) GoString() string {
	s.lazyInit()
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return "Sync" + s.q.GoString()
}

// MarshalJSON encodes the queue as a JSON array of its items from head to tail.
func (s *SyncQueue[T]) MarshalJSON() ([]byte, error) {
	s.lazyInit()
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.q.MarshalJSON()
}

// UnmarshalJSON replaces the contents of the queue with the items of a JSON array.
func (s *SyncQueue[T]) UnmarshalJSON(data []byte) error {
	s.lazyInit()
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.q.UnmarshalJSON(data)
}
