// Package queue provides an unbounded FIFO shared by many producers and consumers.
package queue

import "sync"

// Queue is an unbounded, closable FIFO. Push never blocks; Pop blocks until an
// item is available or the queue is closed and drained.
type Queue[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []T
	closed bool
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	q := &Queue[T]{}
	q.cond = sync.NewCond(&q.mu)

	return q
}

// Push appends items to the tail of the queue.
// Pushing to a closed queue is a programming error and panics.
func (q *Queue[T]) Push(items ...T) {
	if len(items) == 0 {
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		panic("queue: push on closed queue")
	}

	q.items = append(q.items, items...)

	if len(items) == 1 {
		q.cond.Signal()
	} else {
		q.cond.Broadcast()
	}
}

// Pop removes and returns the head of the queue. The second result is false
// once the queue has been closed and every item has been handed out.
func (q *Queue[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 {
		if q.closed {
			var zero T

			return zero, false
		}

		q.cond.Wait()
	}

	item := q.items[0]

	var zero T
	q.items[0] = zero // release the reference for the GC
	q.items = q.items[1:]

	return item, true
}

// Close marks the queue as closed and wakes every blocked consumer.
// Items already queued are still returned by Pop. Close is idempotent.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.cond.Broadcast()
}

// Len reports the number of queued items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}
