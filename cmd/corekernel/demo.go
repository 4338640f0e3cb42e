//go:build !tinygo

package main

import (
	"corekernel/core"
	"corekernel/corelock"
	"corekernel/klog"
)

// demoSleepTicks is how long low holds lockA before releasing it, giving
// the real tick driver (wired up after this function returns) time to
// actually observe the donation chain before it unwinds.
const demoSleepTicks = 50

// runDonationDemo creates three threads that contend on two locks to
// exercise nested priority donation: low holds lockA, med blocks on lockA
// (donating up to low) while holding lockB, and high blocks on lockB
// (donating up to med, which propagates to low).
//
// Thread creation alone does not guarantee run order — a higher-priority
// thread created later would otherwise preempt and try to acquire its lock
// before the lower-priority thread ahead of it in the chain ever got to
// acquire its own. This demotes the calling thread below every demo thread
// first, so each Create below hands off immediately to the thread it just
// made, in the exact order the chain needs: low acquires lockA and goes to
// sleep holding it, med acquires lockB and blocks donating into low, high
// blocks on lockB donating into med.
func runDonationDemo(logger *klog.Logger) {
	lockA := corelock.New()
	lockB := corelock.New()

	callerPriority := core.GetPriority()
	core.SetPriority(core.PriMin)

	low, err := core.Create("low", 20, func(aux any) {
		lockA.Acquire()
		core.Sleep(core.ThreadStats().Tick + demoSleepTicks)
		lockA.Release()
	}, nil)
	mustNoErr(err)
	logger.ThreadCreated(low.TID(), low.Name(), low.Priority())

	med, err := core.Create("med", 30, func(aux any) {
		lockB.Acquire()
		lockA.Acquire() // blocks on low, donating priority 30 (then 40) into it
		lockA.Release()
		lockB.Release()
	}, nil)
	mustNoErr(err)
	logger.ThreadCreated(med.TID(), med.Name(), med.Priority())

	high, err := core.Create("high", 40, func(aux any) {
		lockB.Acquire() // blocks on med, donating priority 40 into it
		lockB.Release()
	}, nil)
	mustNoErr(err)
	logger.ThreadCreated(high.TID(), high.Name(), high.Priority())

	core.SetPriority(callerPriority)
}

// runBusyWorker creates a CPU-bound thread that never blocks on its own;
// it calls core.CheckPreempt in its loop so the scheduler's time-slice
// preemption (armed by core.Tick) still has a safe point to take effect
// at, exactly as spec.md's tick handler expects.
func runBusyWorker(logger *klog.Logger) {
	t, err := core.Create("worker", core.PriDefault, func(aux any) {
		for {
			core.CheckPreempt()
		}
	}, nil)
	mustNoErr(err)
	logger.ThreadCreated(t.TID(), t.Name(), t.Priority())
}

func mustNoErr(err error) {
	if err != nil {
		panic(err)
	}
}
