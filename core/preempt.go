package core

import "corekernel/intr"

// CheckPreempt honors a deferred yield armed by the tick handler. Real
// hardware honors intr_yield_on_return the moment the interrupt handler
// returns; Go cannot interrupt arbitrary host code mid-instruction, so
// this port asks its callers to reach this safe point instead — the
// tinygo tick loop calls it immediately after every Tick, and a thread
// body running a long uninterrupted loop may call it directly.
func CheckPreempt() {
	if intr.ConsumeYieldOnReturn() {
		Yield()
	}
}
