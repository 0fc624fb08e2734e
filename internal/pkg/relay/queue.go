package relay

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// ErrDrained is returned by Take once the producer has closed the queue and
// every buffered item has been consumed.
var ErrDrained = errors.New("queue drained")

// ErrAbandoned is returned by Put once the consumer has abandoned the queue.
var ErrAbandoned = errors.New("queue abandoned")

// DefaultCapacity is the queue capacity used when none is configured.
const DefaultCapacity = 10

// Queue is a bounded FIFO hand-off between exactly one producer and exactly
// one consumer. A full queue blocks the producer until the consumer catches
// up, which is how backpressure propagates upstream. Closing the queue is the
// end-of-stream marker: Take drains any buffered items first and then reports
// ErrDrained.
type Queue[T any] struct {
	items     chan T
	abandoned chan struct{}

	closeOnce   sync.Once
	abandonOnce sync.Once
}

// New creates a Queue holding at most capacity items.
func New[T any](capacity int) *Queue[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue[T]{
		items:     make(chan T, capacity),
		abandoned: make(chan struct{}),
	}
}

// Put appends v to the tail of the queue, blocking while the queue is full.
// It fails with the context error if ctx ends first, or with ErrAbandoned if
// the consumer has walked away. Put must not be called after Close.
func (q *Queue[T]) Put(ctx context.Context, v T) error {
	select {
	case <-q.abandoned:
		return ErrAbandoned
	default:
	}
	select {
	case q.items <- v:
		return nil
	case <-q.abandoned:
		return ErrAbandoned
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "put failed")
	}
}

// Take removes and returns the head of the queue, blocking while the queue is
// empty. Once the producer has closed the queue and the buffer is empty it
// returns ErrDrained, or the context error if ctx ends first.
func (q *Queue[T]) Take(ctx context.Context) (T, error) {
	var zero T
	select {
	case v, ok := <-q.items:
		if !ok {
			return zero, ErrDrained
		}
		return v, nil
	case <-ctx.Done():
		return zero, errors.Wrap(ctx.Err(), "take failed")
	}
}

// Close marks the end of the stream. It is idempotent and must only be called
// by the producer side; items already buffered remain available to Take.
func (q *Queue[T]) Close() {
	q.closeOnce.Do(func() {
		close(q.items)
	})
}

// Abandon marks the consumer side as gone, unblocking any pending or future
// Put with ErrAbandoned so the producer can drop the item instead of wedging.
// It is idempotent and must only be called by the consumer side.
func (q *Queue[T]) Abandon() {
	q.abandonOnce.Do(func() {
		close(q.abandoned)
	})
}

// Len reports the number of items currently buffered.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Cap reports the configured capacity.
func (q *Queue[T]) Cap() int {
	return cap(q.items)
}
