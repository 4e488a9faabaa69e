// Package pool implements a fixed-size work-stealing goroutine pool.
//
// Each worker owns a private deque: the owner pushes and pops its own
// front (LIFO), while other workers may steal from the back (FIFO).
// Submissions from outside the pool land on a shared global queue.
// A caller that is waiting on a result can help drain the pool instead
// of blocking idly by calling RunPendingTask, or use Await to do both in
// one call.
//
// Go has no thread-local storage, so a task's worker identity (used to
// decide whether a nested Submit call should land on a local deque or
// the global queue) is threaded through explicitly via context.Context,
// the idiomatic Go substitute: every task a worker takes through its own
// probe loop receives that worker's context, and any task body that
// submits child tasks passes that same context along. Tasks run through
// RunPendingTask (and so through Await) receive context.Background()
// and carry no worker identity, even when the caller is itself a worker.
package pool

import "context"

// Func is the signature a caller's work must satisfy. When a worker's
// probe loop runs the task, the context carries that worker's identity,
// so that recursive Submit calls from inside f attach to its deque.
type Func[R any] func(ctx context.Context) (R, error)

// task is a type-erased, single-shot unit of work. It is constructed by
// Submit, which closes over the caller's function and its promise, so
// invoking the closure both runs the function and delivers the result.
// A task is consumed by execution; the pool never invokes one twice.
type task func(ctx context.Context)
