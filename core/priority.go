package core

// donationDepthLimit bounds the donation chain walk, matching spec.md's
// 8-hop cap on how far a priority donation propagates through nested
// lock holders.
const donationDepthLimit = 8

// SetPriority sets the running thread's base priority, the Go analogue
// of thread_set_priority. A thread currently boosted by donation keeps
// its donated (higher) priority until the donation is released; lowering
// the base only ever takes effect once refreshPriority recomputes it.
func SetPriority(p int) {
	assertf(p >= PriMin && p <= PriMax, "core: SetPriority(%d) out of range [%d,%d]", p, PriMin, PriMax)
	cur := CurrentThread()
	cur.initPriority = p
	refreshPriority()
	testMaxPriority()
}

// GetPriority returns the running thread's current effective priority.
func GetPriority() int { return CurrentThread().priority }

// testMaxPriority yields the running thread if some ready thread now
// outranks it — called after any operation that can change who the
// highest-priority ready thread is (a thread created, a priority raised
// or lowered, a donation released).
func testMaxPriority() {
	cur := peekCurrent()
	if cur == nil || cur == k.idleThread {
		return
	}
	if readyLen() > 0 && cur.priority < readyFrontPriority() {
		Yield()
	}
}

// donatePriority walks the chain of lock holders the running thread is
// waiting on, raising each holder to the running thread's priority, up
// to donationDepthLimit hops — the Go analogue of donate_priority's
// nested-donation walk.
func donatePriority() {
	cur := CurrentThread()
	priority := cur.priority
	t := cur
	for depth := 0; depth < donationDepthLimit; depth++ {
		lock := t.waitOnLock
		if lock == nil {
			break
		}
		holder := lock.Holder()
		if holder == nil || holder.priority >= priority {
			break
		}
		holder.priority = priority
		if holder.status == StatusReady {
			readyRemove(holder)
			readyPush(holder)
		}
		t = holder
	}
}

// removeWithLock drops every donor in the running thread's donation list
// that was waiting specifically on lock, the Go analogue of
// remove_with_lock — called just before a lock is released, so a donor
// waiting on some other lock this thread still holds keeps its donation.
func removeWithLock(lock LockHandle) {
	cur := CurrentThread()
	kept := cur.donations[:0]
	for _, d := range cur.donations {
		if d.waitOnLock != lock {
			kept = append(kept, d)
		}
	}
	cur.donations = kept
}

// refreshPriority recomputes the running thread's effective priority as
// the maximum of its base priority and every remaining donation, the Go
// analogue of refresh_priority.
func refreshPriority() {
	cur := CurrentThread()
	max := cur.initPriority
	for _, d := range cur.donations {
		if d.priority > max {
			max = d.priority
		}
	}
	cur.priority = max
}

// Donate registers the running thread as waiting to acquire lock and
// propagates its priority to the holder chain. Lock implementations
// (package corelock) call this immediately before blocking on a held
// lock.
func Donate(lock LockHandle) {
	cur := CurrentThread()
	cur.waitOnLock = lock
	if holder := lock.Holder(); holder != nil {
		holder.donations = append(holder.donations, cur)
	}
	donatePriority()
}

// EndWait clears the running thread's wait-on-lock marker once it holds
// the lock it was waiting for.
func EndWait() { CurrentThread().waitOnLock = nil }

// ReleaseLock drops donations tied to lock from the running thread's
// donation list, recomputes its effective priority, and yields if some
// now-unblocked waiter outranks it. Lock implementations call this after
// releasing a lock and waking the next waiter.
func ReleaseLock(lock LockHandle) {
	removeWithLock(lock)
	refreshPriority()
	testMaxPriority()
}
