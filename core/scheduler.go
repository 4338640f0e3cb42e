package core

import (
	"corekernel/core/arch"
	"corekernel/intr"
)

// nextThreadToRun pops the highest-priority ready thread, falling back to
// idle when the ready list is empty — idle is never itself placed on the
// ready list.
func nextThreadToRun() *Thread {
	if t := readyPop(); t != nil {
		return t
	}
	assertf(k.idleThread != nil, "core: no ready thread and idle not yet started")
	return k.idleThread
}

// reapDestructionQueue frees the stack page of every thread that died on
// a previous schedule() call. pintos defers this one thread because the
// dying thread is still running on the very stack being freed;
// spec.md's unified scheduler entry instead reaps at the top of every
// schedule() call, which is the one merge documented in DESIGN.md against
// pintos's do_schedule/schedule split.
func reapDestructionQueue() {
	if len(k.destructionReq) == 0 {
		return
	}
	for _, t := range k.destructionReq {
		t.checkMagic()
		if t.page != nil {
			k.pages.Free(t.page)
		}
	}
	k.destructionReq = k.destructionReq[:0]
}

// schedule picks the next thread to run and performs the architectural
// switch. Callers must hold interrupts disabled and must have already
// moved the current thread out of RUNNING (to READY, BLOCKED, or DYING).
func schedule() {
	assertf(intr.GetLevel() == intr.LevelOff, "core: schedule called with interrupts enabled")
	cur := k.current
	assertf(cur.status != StatusRunning, "core: schedule called while current thread is still RUNNING")

	reapDestructionQueue()

	next := nextThreadToRun()
	next.checkMagic()

	if cur == next {
		cur.status = StatusRunning
		k.threadTicks = 0
		return
	}

	dying := cur.status == StatusDying
	if dying && cur != k.initialThread {
		k.destructionReq = append(k.destructionReq, cur)
	}

	k.current = next
	next.status = StatusRunning
	k.threadTicks = 0
	if next.ops != nil {
		next.ops.ProcessActivate(next)
	}
	arch.Switch(cur.baton, next.baton, dying)
}
