// Package async runs blocking calls as futures so callers can join them
// with a context.
package async

import (
	"context"
	"fmt"
)

// Future is the pending result of a call started with Go.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go starts fn in its own goroutine. A panic in fn is recovered and
// reported as an error from Await.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.err = fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}()
		f.val, f.err = fn(ctx)
	}()
	return f
}

// Await blocks until the call completes or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done is closed once the call has completed.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}
