package util

import "sync"

// Queue is an unbounded FIFO safe for concurrent use. Push never blocks,
// consumers wait on Ready and then Drain everything queued so far.
type Queue[T any] struct {
	mu     sync.Mutex
	items  []T
	notify chan struct{}
}

// NewQueue returns an empty Queue
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		items:  []T{},
		notify: make(chan struct{}, 1),
	}
}

// Push appends an item to the tail of the queue
func (q *Queue[T]) Push(item T) {
	q.mu.Lock()
	q.items = append(q.items, item)
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Ready fires whenever items may be waiting to be drained
func (q *Queue[T]) Ready() <-chan struct{} {
	return q.notify
}

// Drain removes and returns all queued items in insertion order
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	items := q.items
	q.items = []T{}

	return items
}

// Len returns the number of queued items
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}
