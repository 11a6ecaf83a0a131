package streams

import (
	"context"
	"sync"
)

// Promise is a single asynchronous value: one completion or one failure,
// never a sequence. Settling is idempotent; later calls are ignored.
type Promise[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

// NewPromise returns an unsettled promise.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{done: make(chan struct{})}
}

// Resolved returns a promise already completed with value.
func Resolved[T any](value T) *Promise[T] {
	p := NewPromise[T]()
	p.Complete(value)
	return p
}

// Rejected returns a promise already failed with err.
func Rejected[T any](err error) *Promise[T] {
	p := NewPromise[T]()
	p.Fail(err)
	return p
}

// Complete settles the promise with a value.
func (p *Promise[T]) Complete(value T) {
	p.once.Do(func() {
		p.value = value
		close(p.done)
	})
}

// Fail settles the promise with an error.
func (p *Promise[T]) Fail(err error) {
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}

// Await blocks until the promise settles or ctx is cancelled.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
