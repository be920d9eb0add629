package queue_test

import (
	"encoding/json"
	"fmt"

	"github.com/arloliu/go-fifo/queue"
)

func ExampleQueue() {
	q := queue.New[int]()

	fmt.Println(q.Enqueue(1))
	fmt.Println(q.Enqueue(2))

	item, _ := q.Dequeue()
	fmt.Println(item, q.Len())

	head, _ := q.Peek()
	fmt.Println(head)

	fmt.Println(q.Enqueue(3))
	item, _ = q.Dequeue()
	fmt.Println(item)
	item, _ = q.Dequeue()
	fmt.Println(item)

	_, ok := q.Dequeue()
	fmt.Println(ok)
	// Output:
	// 1
	// 2
	// 1 1
	// 2
	// 2
	// 2
	// 3
	// false
}

func ExampleQueue_ForEach() {
	q := queue.New[string]()
	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")

	q.ForEach(func(item string, index int, _ *queue.Queue[string]) {
		fmt.Println(index, item)
	})
	// Output:
	// 0 a
	// 1 b
	// 2 c
}

func ExampleQueue_String() {
	q := queue.New[int]()
	for i := 1; i <= 3; i++ {
		q.Enqueue(i)
	}

	data, _ := json.Marshal(q)
	fmt.Println(q)
	fmt.Println(string(data))
	fmt.Printf("%#v\n", q)
	// Output:
	// 1,2,3
	// [1,2,3]
	// Queue[int]{1, 2, 3}
}
