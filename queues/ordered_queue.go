package queues

import (
	"container/heap"
)

type orderedHeap[T any] struct {
	data []T
	less func(a, b T) bool
}

func (oh *orderedHeap[T]) Len() int {
	return len(oh.data)
}

func (oh *orderedHeap[T]) Less(i, j int) bool {
	return oh.less(oh.data[i], oh.data[j])
}

func (oh *orderedHeap[T]) Swap(i, j int) {
	oh.data[i], oh.data[j] = oh.data[j], oh.data[i]
}

func (oh *orderedHeap[T]) Push(x any) {
	oh.data = append(oh.data, x.(T))
}

func (oh *orderedHeap[T]) Pop() any {
	old := oh.data
	n := len(old)
	value := old[n-1]

	// avoid memory leak
	var zero T
	old[n-1] = zero

	// shrink slice
	oh.data = old[0 : n-1]
	return value
}

// OrderedQueue is a min-priority queue ordered by a caller-supplied less
// function. Dequeue always returns the smallest buffered element under
// that ordering.
type OrderedQueue[T any] struct {
	heap *orderedHeap[T]
}

// NewOrderedQueue creates an OrderedQueue with the specified initial capacity.
// less reports whether a should be dequeued before b.
func NewOrderedQueue[T any](initCapacity int, less func(a, b T) bool) *OrderedQueue[T] {
	if initCapacity < 0 {
		initCapacity = 0
	}
	if less == nil {
		panic("brook.OrderedQueue: less function cannot be nil")
	}
	innerHeap := orderedHeap[T]{
		data: make([]T, 0, initCapacity),
		less: less,
	}
	heap.Init(&innerHeap)

	return &OrderedQueue[T]{
		heap: &innerHeap,
	}
}

func (oq *OrderedQueue[T]) Enqueue(value T) {
	heap.Push(oq.heap, value)
}

func (oq *OrderedQueue[T]) Dequeue() (value T, ok bool) {
	if oq.heap.Len() == 0 {
		return value, false
	}
	return heap.Pop(oq.heap).(T), true
}

func (oq *OrderedQueue[T]) Peek() (value T, ok bool) {
	if oq.heap.Len() == 0 {
		return value, false
	}
	return oq.heap.data[0], true
}

func (oq *OrderedQueue[T]) Size() int {
	return oq.heap.Len()
}

func (oq *OrderedQueue[T]) IsEmpty() bool {
	return oq.heap.Len() == 0
}
