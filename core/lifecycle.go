package core

import "corekernel/intr"

// Create allocates a page for the new thread's TCB, registers it BLOCKED,
// launches its goroutine parked at the architectural leaf, then unblocks
// it and tests whether it should immediately preempt the caller — the Go
// analogue of thread_create. It returns ErrNoTID if the page pool is
// exhausted, leaving no partial state behind.
func Create(name string, priority int, entry func(aux any), aux any) (*Thread, error) {
	assertf(entry != nil, "core: Create requires a non-nil entry function")

	page, ok := k.pages.Alloc(true)
	if !ok {
		return nil, ErrNoTID
	}

	t := newThread(name, priority, entry, aux, page)
	t.tid = allocateTID()
	t.baton.Launch(func() { runThread(t) })

	Unblock(t)
	testMaxPriority()
	return t, nil
}

// runThread is the trampoline every thread's goroutine runs once first
// scheduled — the Go analogue of kernel_thread. schedule() always hands
// off the baton with interrupts disabled, so the new thread's first act
// is to re-enable them for itself, exactly as kernel_thread does.
func runThread(t *Thread) {
	intr.Enable()
	t.entry(t.aux)
	Exit()
}

// Exit marks the running thread DYING and switches away for the last
// time. It never returns: the architectural switch calls runtime.Goexit
// on the dying side once the handoff completes.
func Exit() {
	assertf(!intr.Context(), "core: Exit called from interrupt context")
	t := CurrentThread()
	if t.ops != nil {
		t.ops.ProcessExit()
	}
	intr.Disable()
	t.status = StatusDying
	schedule()
	assertf(false, "core: schedule returned control to a dying thread")
}
