package queue

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// String returns the items from head to tail joined by commas, each formatted with
// fmt.Sprint. An empty queue yields an empty string.
func (q *Queue[T]) String() string {
	var sb strings.Builder
	for i, item := range q.items[q.offset:] {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(fmt.Sprint(item))
	}

	return sb.String()
}

// GoString returns a debug representation tagged with the element type, for example
// Queue[int]{1, 2, 3}. It is used by the %#v verb.
func (q *Queue[T]) GoString() string {
	var sb strings.Builder
	sb.WriteString("Queue[")
	sb.WriteString(reflect.TypeFor[T]().String())
	sb.WriteString("]{")
	for i, item := range q.items[q.offset:] {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%#v", item)
	}
	sb.WriteByte('}')

	return sb.String()
}

// MarshalJSON encodes the queue as a JSON array of its items from head to tail.
func (q *Queue[T]) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(q.ToSlice())
	if err != nil {
		return nil, fmt.Errorf("queue: marshal: %w", err)
	}

	return data, nil
}

// UnmarshalJSON replaces the contents of the queue with the items of a JSON array.
// A JSON null yields an empty queue. On error the queue is left unchanged.
func (q *Queue[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("queue: unmarshal: %w", err)
	}

	q.Clear()
	for _, item := range items {
		q.Enqueue(item)
	}

	return nil
}
