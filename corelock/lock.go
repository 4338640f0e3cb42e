// Package corelock is the mutual-exclusion primitive the thread
// subsystem's donation engine is designed against, but does not itself
// implement (spec.md §6 lists lock/semaphore acquisition as an external
// collaborator). It drives core's exported donation hooks
// (Donate/EndWait/ReleaseLock) exactly the way lock_acquire/lock_release
// drive donate_priority/remove_with_lock/refresh_priority, and parks a
// contended waiter through core.Block/core.Unblock the way sema_down/
// sema_up sit on top of thread_block/thread_unblock.
package corelock

import (
	"sync"

	"corekernel/core"
	"corekernel/intr"
)

// Lock is a single-holder mutex whose acquisition queue feeds the priority
// donation engine. A contended waiter is parked with core.Block and woken
// by name with core.Unblock, rather than through a host blocking primitive
// such as golang.org/x/sync/semaphore: a host semaphore's own wait queue
// runs on real OS-scheduled goroutines, invisible to core's one-baton
// scheduler, so a thread parked there would never call schedule() to hand
// the simulated CPU back — no other kernel thread could ever run again.
// This deviation from the rest of the domain stack is recorded in
// DESIGN.md.
type Lock struct {
	mu      sync.Mutex
	holder  *core.Thread
	waiters []*core.Thread
}

// New returns a lock held by no one.
func New() *Lock { return &Lock{} }

// Holder implements core.LockHandle.
func (l *Lock) Holder() *core.Thread {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holder
}

// Acquire blocks the calling thread until the lock is free. If it is
// already held, the calling thread donates its priority to the holder
// (and transitively, the holder's holder) for as long as it waits.
func (l *Lock) Acquire() {
	cur := core.CurrentThread()

	l.mu.Lock()
	if l.holder == nil {
		l.holder = cur
		l.mu.Unlock()
		return
	}
	l.waiters = append(l.waiters, cur)
	l.mu.Unlock()

	core.Donate(l)

	old := intr.Disable()
	core.Block()
	intr.SetLevel(old)

	core.EndWait()

	l.mu.Lock()
	l.holder = cur
	l.mu.Unlock()
}

// Release gives up the lock, hands it directly to the longest-waiting
// thread (if any) and wakes it, drops any donations tied to this lock from
// the releasing thread's
// donation list, recomputes that thread's effective priority, and yields
// if the now-ready waiter outranks it.
func (l *Lock) Release() {
	l.mu.Lock()
	l.holder = nil
	var next *core.Thread
	if len(l.waiters) > 0 {
		next = l.waiters[0]
		l.waiters = l.waiters[1:]
		l.holder = next
	}
	l.mu.Unlock()

	if next != nil {
		core.Unblock(next)
	}
	core.ReleaseLock(l)
}
