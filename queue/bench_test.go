package queue

import (
	"testing"
)

// shiftQueue dequeues by reslicing from the front, for comparison.
type shiftQueue[T any] struct {
	items []T
}

func (q *shiftQueue[T]) Enqueue(item T) int {
	q.items = append(q.items, item)
	return len(q.items)
}

func (q *shiftQueue[T]) Dequeue() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	item := q.items[0]
	q.items = q.items[1:]
	return item, true
}

func BenchmarkQueue_100(b *testing.B) {
	benchQueue(b, New[int](), 100)
}

func BenchmarkQueue_10000(b *testing.B) {
	benchQueue(b, New[int](), 10000)
}

func BenchmarkSyncQueue_100(b *testing.B) {
	benchQueue(b, NewSync[int](), 100)
}

func BenchmarkShiftQueue_100(b *testing.B) {
	benchQueue(b, &shiftQueue[int]{}, 100)
}

func BenchmarkShiftQueue_10000(b *testing.B) {
	benchQueue(b, &shiftQueue[int]{}, 10000)
}

type benchFIFO interface {
	Enqueue(item int) int
	Dequeue() (int, bool)
}

func benchQueue(b *testing.B, q benchFIFO, depth int) {
	// keep a steady depth so compaction runs during the loop
	for i := 0; i < depth; i++ {
		q.Enqueue(i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
		if _, ok := q.Dequeue(); !ok {
			b.Fatal("queue unexpectedly empty")
		}
	}
}

func BenchmarkQueueBurst(b *testing.B) {
	q := New[int]()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < 1000; j++ {
			q.Enqueue(j)
		}
		for range q.Drain() {
		}
	}
}
