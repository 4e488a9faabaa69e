package pool

import "runtime"

// runWorker is a single worker's lifetime: record its identity via a
// context carried on every task it executes, then loop the three-tier
// probe (local -> global -> steal) until the pool is told to stop.
//
// Ported from original_source/src/threadpool.cpp's workerThread /
// runPendingTask; the probe order (popTaskFromLocalQueue,
// popTaskFromGlobalQueue, stealTaskFromOtherThread) and the
// sweep-from-(index+1) steal strategy are carried over unchanged.
func (p *Pool) runWorker(index int) {
	defer p.wg.Done()

	ctx := p.workerCtxs[index]
	for !p.done.Load() {
		if !p.runOnce(index, ctx) {
			// No task anywhere right now; yield the rest of this
			// goroutine's scheduling quantum and try again.
			runtime.Gosched()
		}
	}
}
