package pool

import (
	"context"
	"errors"
)

// ErrFutureAlreadyRead is returned by Future.Get and Future.Poll once the
// result has already been consumed by a previous call.
var ErrFutureAlreadyRead = errors.New("pool: future already read")

// Future is the read side of a one-shot result handle. Exactly one
// producer (the worker that runs the task) delivers a value; exactly one
// consumer reads it. Reading is destructive: a second read returns
// ErrFutureAlreadyRead instead of the original value.
type Future[R any] struct {
	ch   chan result[R]
	done bool
}

type result[R any] struct {
	value R
	err   error
}

// promise is the write side, held by the worker executing the task.
type promise[R any] struct {
	ch chan result[R]
}

// newFuture creates a linked promise/future pair. The channel is buffered
// with capacity one so that delivering a result never blocks the
// producer, even if the consumer never reads it (e.g. the pool was torn
// down and the future was simply dropped).
func newFuture[R any]() (*promise[R], *Future[R]) {
	ch := make(chan result[R], 1)
	return &promise[R]{ch: ch}, &Future[R]{ch: ch}
}

// deliver writes the task's outcome exactly once. Calling it twice is a
// contract violation by the caller (the pool itself never does this).
func (p *promise[R]) deliver(value R, err error) {
	p.ch <- result[R]{value: value, err: err}
}

// Get blocks until the result is ready or ctx is done, whichever comes
// first. A future that has already been read returns ErrFutureAlreadyRead.
func (f *Future[R]) Get(ctx context.Context) (R, error) {
	var zero R
	if f.done {
		return zero, ErrFutureAlreadyRead
	}
	select {
	case r := <-f.ch:
		f.done = true
		return r.value, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Poll is a non-blocking, non-destructive-on-failure check: it reports
// whether the result is ready yet without waiting. This is the primitive
// the pixel-sampling driver uses to implement help-while-waiting: poll,
// and if not ready, run a pending task on the pool instead of blocking.
func (f *Future[R]) Poll() (value R, err error, ready bool) {
	var zero R
	if f.done {
		return zero, ErrFutureAlreadyRead, true
	}
	select {
	case r := <-f.ch:
		f.done = true
		return r.value, r.err, true
	default:
		return zero, nil, false
	}
}
