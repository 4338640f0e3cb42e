package core

import "corekernel/intr"

// Block transitions the running thread to BLOCKED and switches away. The
// caller must already hold interrupts disabled and must arrange for some
// other thread to Unblock it — exactly thread_block's contract.
func Block() {
	assertf(!intr.Context(), "core: Block called from interrupt context")
	assertf(intr.GetLevel() == intr.LevelOff, "core: Block called with interrupts enabled")
	t := CurrentThread()
	t.status = StatusBlocked
	schedule()
}

// Unblock moves a blocked thread to READY. It may be called from
// interrupt context (the tick handler waking a sleeper), and disables
// interrupts itself so ordinary callers need not.
func Unblock(t *Thread) {
	old := intr.Disable()
	defer intr.SetLevel(old)
	unblockLocked(t)
}

// unblockLocked is Unblock's body, callable with interrupts already
// disabled (the tick handler's Awake scan).
func unblockLocked(t *Thread) {
	t.checkMagic()
	assertf(t.status == StatusBlocked, "core: Unblock called on thread %q in state %s", t.name, t.status)
	readyPush(t)
	t.status = StatusReady
}

// Yield puts the running thread back on the ready list at its current
// priority and switches to the next runnable thread, without blocking it.
// Idle never appears on the ready list, matching thread_yield's special
// case for idle_thread.
func Yield() {
	assertf(!intr.Context(), "core: Yield called from interrupt context")
	t := CurrentThread()
	old := intr.Disable()
	if t != k.idleThread {
		readyPush(t)
	}
	t.status = StatusReady
	schedule()
	intr.SetLevel(old)
}

// Sleep blocks the running thread until the global tick counter reaches
// wakeupTick, the Go analogue of thread_sleep's timer-queue enrollment.
func Sleep(wakeupTick uint64) {
	assertf(!intr.Context(), "core: Sleep called from interrupt context")
	old := intr.Disable()
	t := CurrentThread()
	sleepPush(t, wakeupTick)
	t.status = StatusBlocked
	schedule()
	intr.SetLevel(old)
}
