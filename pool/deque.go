package pool

import (
	"container/list"
	"sync"
)

// workStealingDeque is a double-ended sequence of tasks guarded by a
// single mutex. The owning worker pushes and pops at the front (LIFO),
// which keeps a worker's own recently-submitted sub-tasks cache-hot.
// Thieves take from the back (FIFO), which tends to steal the oldest,
// typically largest, piece of work and avoids fighting the owner for
// the same end of the sequence.
//
// A doubly-linked list gives push/pop/steal all O(1) under the single
// mutex, which is all the spec requires of this structure (it does not
// mandate the lock-free Chase-Lev ring buffer the teacher's
// WorkStealingDeque used for its own, differently-scoped, strategy).
type workStealingDeque struct {
	mu sync.Mutex
	l  *list.List
}

func newWorkStealingDeque(_ int) *workStealingDeque {
	return &workStealingDeque{l: list.New()}
}

// push inserts t at the front. Owner-only.
func (d *workStealingDeque) push(t task) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.l.PushFront(t)
}

// tryPop removes and returns the front task. Owner-only.
func (d *workStealingDeque) tryPop() (task, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	e := d.l.Front()
	if e == nil {
		return nil, false
	}
	d.l.Remove(e)
	return e.Value.(task), true
}

// trySteal removes and returns the back task. Any worker, including the
// owner, may call this, but a thief must never reenter the owner side of
// the same deque.
func (d *workStealingDeque) trySteal() (task, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	e := d.l.Back()
	if e == nil {
		return nil, false
	}
	d.l.Remove(e)
	return e.Value.(task), true
}

// empty is advisory; callers must still tolerate the deque being empty
// by the time a subsequent locked operation runs.
func (d *workStealingDeque) empty() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.l.Len() == 0
}
