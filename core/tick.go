package core

import "corekernel/intr"

// Tick is driven by the interrupt controller collaborator (the hal.Time
// tick stream cmd/corekernel forwards) once per simulated timer tick. It
// accounts the tick to whichever category the running thread falls into,
// wakes any sleepers whose time has come, and arms a deferred yield once
// the running thread has used its full slice — the Go analogue of
// thread_tick.
func Tick(now uint64) {
	old := intr.Disable()
	intr.SetContext(true)
	defer func() {
		intr.SetContext(false)
		intr.SetLevel(old)
	}()

	k.tick = now
	t := peekCurrent()
	switch {
	case t == k.idleThread:
		k.idleTicks++
	case t.IsUser():
		k.userTicks++
	default:
		k.kernelTicks++
	}

	sleepAwake(now)

	k.threadTicks++
	if k.threadTicks >= TimeSlice {
		intr.YieldOnReturn()
	}
}
