package pool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// ErrPoolClosed is returned by Submit once the pool's teardown has begun.
// The safe contract is: do not submit after calling Stop.
var ErrPoolClosed = errors.New("pool: submit after shutdown")

type workerCtxKey struct{}

// workerIdentity is attached to a context.Context by the worker that is
// about to run a task, so that any nested Submit call made from within
// that task's body can tell it is running on a worker and push directly
// onto that worker's own deque instead of the shared global queue.
type workerIdentity struct {
	index int
	deque *workStealingDeque
}

func workerFrom(ctx context.Context) (*workerIdentity, bool) {
	w, ok := ctx.Value(workerCtxKey{}).(*workerIdentity)
	return w, ok
}

// WorkerIndex reports the index of the worker currently running the
// task that owns ctx, if any. External collaborators such as the
// pixel-sampling driver use this to pick a worker-private resource
// (e.g. a PRNG) without the pool exposing its internal identity type.
func WorkerIndex(ctx context.Context) (int, bool) {
	w, ok := workerFrom(ctx)
	if !ok {
		return 0, false
	}
	return w.index, true
}

// Pool owns a fixed set of workers, one local deque per worker, and a
// shared global queue used by submissions from outside the pool.
type Pool struct {
	deques     []*workStealingDeque
	global     *globalQueue
	done       atomic.Bool
	wg         sync.WaitGroup
	log        *logrus.Entry
	workerCtxs []context.Context
}

// New constructs a pool with the given number of workers. If numWorkers
// is less than one, runtime.NumCPU() is used, which is the idiomatic Go
// reading of "one worker per hardware core by default": Go multiplexes
// goroutines over GOMAXPROCS OS threads, so this is the closest analogue
// to the spec's "parallel OS threads" model.
//
// All deques are allocated before any worker goroutine is spawned. This
// ordering matters: a worker started before its siblings' deques exist
// could attempt to steal from a not-yet-constructed neighbour.
func New(numWorkers int, log *logrus.Entry) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.NumCPU()
	}
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = logrus.NewEntry(discard)
	}

	p := &Pool{
		deques:     make([]*workStealingDeque, numWorkers),
		global:     newGlobalQueue(),
		log:        log,
		workerCtxs: make([]context.Context, numWorkers),
	}
	for i := range p.deques {
		p.deques[i] = newWorkStealingDeque(0)
	}
	for i := range p.workerCtxs {
		p.workerCtxs[i] = context.WithValue(context.Background(), workerCtxKey{},
			&workerIdentity{index: i, deque: p.deques[i]})
	}

	for i := 0; i < numWorkers; i++ {
		p.wg.Add(1)
		go p.runWorker(i)
	}
	return p
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int { return len(p.deques) }

// Stop signals every worker to finish its current task and exit, then
// waits for all of them to return. Tasks still sitting in queues at
// shutdown are dropped without running; their futures are simply never
// delivered, so callers must drain everything they care about before
// calling Stop.
func (p *Pool) Stop() {
	p.done.Store(true)
	p.wg.Wait()
}

// Submit enqueues f and returns a Future that will carry its result. If
// ctx carries the identity of one of this pool's own workers (i.e. f is
// being submitted from inside a task body that is itself running on this
// pool), the new task is pushed onto that worker's own local deque
// (LIFO); otherwise it lands on the shared global queue (FIFO).
// Submission never blocks: both queues are unbounded.
func Submit[R any](ctx context.Context, p *Pool, f Func[R]) (*Future[R], error) {
	if p.done.Load() {
		return nil, ErrPoolClosed
	}

	pr, fut := newFuture[R]()
	t := task(func(runCtx context.Context) {
		defer func() {
			if r := recover(); r != nil {
				var zero R
				pr.deliver(zero, fmt.Errorf("task panicked: %v", r))
			}
		}()
		value, err := f(runCtx)
		pr.deliver(value, err)
	})

	if w, ok := workerFrom(ctx); ok {
		w.deque.push(t)
	} else {
		p.global.push(t)
	}
	return fut, nil
}

// RunPendingTask attempts to obtain and run one task via the pool's
// three-tier probe, as if the caller were a worker: try the global
// queue, then steal from any worker's deque. Called from outside a
// worker goroutine, it has no local deque of its own to check first.
//
// This is the primitive behind help-while-waiting: a caller blocked on a
// future it cannot yet consume calls this between polls instead of
// idling, which keeps every core saturated even when the only thread
// submitting work is the one waiting on a result. With zero busy
// workers available, a caller that keeps calling RunPendingTask still
// drives the pool's own queues to completion on its own.
func (p *Pool) RunPendingTask() bool {
	ctx := context.Background()
	if t, ok := p.global.tryPop(); ok {
		t(ctx)
		return true
	}
	return p.stealAny(ctx)
}

// runOnce is the worker-side three-tier probe: local deque, global
// queue, then a steal sweep starting at (index+1) mod N. Returns false
// if nothing was found anywhere.
func (p *Pool) runOnce(index int, ctx context.Context) bool {
	if t, ok := p.deques[index].tryPop(); ok {
		t(ctx)
		return true
	}
	if t, ok := p.global.tryPop(); ok {
		t(ctx)
		return true
	}
	n := len(p.deques)
	for i := 0; i < n; i++ {
		victim := (index + i + 1) % n
		if victim == index {
			continue
		}
		if t, ok := p.deques[victim].trySteal(); ok {
			t(ctx)
			return true
		}
	}
	return false
}

// stealAny scans every deque in order, used by non-worker helpers that
// have no "self" index to skip.
func (p *Pool) stealAny(ctx context.Context) bool {
	for _, d := range p.deques {
		if t, ok := d.trySteal(); ok {
			t(ctx)
			return true
		}
	}
	return false
}

// Await blocks until fut is ready, helping the pool drain pending work
// between polls rather than idling. This is the pixel-sampling driver's
// core technique: the caller becomes a temporary worker for as long as
// it would otherwise be blocked.
func Await[R any](ctx context.Context, p *Pool, fut *Future[R]) (R, error) {
	for {
		if value, err, ready := fut.Poll(); ready {
			return value, err
		}
		if p.RunPendingTask() {
			continue
		}
		select {
		case <-ctx.Done():
			var zero R
			return zero, ctx.Err()
		default:
			runtime.Gosched()
		}
	}
}
