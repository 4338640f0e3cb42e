package core

import (
	"sync"

	"corekernel/intr"
	"corekernel/pagealloc"
)

// kernelState holds every process-wide singleton spec.md §9 calls out:
// the ready/sleep/destruction queues, the idle and initial threads, the
// tid allocator, and the per-category tick counters. It is initialized
// exactly once per call to Init, before interrupts are ever (re-)enabled.
type kernelState struct {
	readyList      []*Thread
	sleepList      []*Thread
	destructionReq []*Thread

	idleThread    *Thread
	initialThread *Thread
	current       *Thread

	tidMu  sync.Mutex
	nextTID int

	threadTicks uint64
	idleTicks   uint64
	kernelTicks uint64
	userTicks   uint64
	tick        uint64

	pages *pagealloc.Pool
}

var k = newKernelState()

func newKernelState() *kernelState {
	return &kernelState{pages: pagealloc.NewPool(0), nextTID: 1}
}

// Init (re-)boots the thread subsystem, turning the calling goroutine into
// the initial ("main") thread. Real hardware only ever calls thread_init
// once at boot; this port calls it once per test/process run for
// isolation, which is the one deliberate deviation from "exactly once"
// recorded in DESIGN.md.
func Init() {
	k = newKernelState()

	initial := newThread("main", PriDefault, nil, nil, nil)
	initial.status = StatusRunning
	initial.tid = allocateTID()
	k.initialThread = initial
	k.current = initial
}

// Start creates the idle thread and begins preemptive scheduling. Callers
// still own arming the tick driver (the interrupt controller is out of
// scope); Start only guarantees idleThread exists before any schedule().
//
// idle is always created at PriMin, strictly below any realistic caller,
// so a plain Yield here would just re-pick the caller itself and never
// actually switch to idle's goroutine. Mirroring thread_start, the caller
// instead blocks itself and waits for idleLoop to wake it once idle has
// recorded itself — with the caller off the ready list, idle is the only
// runnable thread and schedule() is forced to switch to it.
func Start() {
	caller := CurrentThread()
	_, err := Create("idle", PriMin, func(aux any) {
		idleLoop(aux.(*Thread))
	}, caller)
	assertf(err == nil, "core: failed to create idle thread")

	old := intr.Disable()
	Block()
	intr.SetLevel(old)
}

func allocateTID() int {
	k.tidMu.Lock()
	defer k.tidMu.Unlock()
	tid := k.nextTID
	k.nextTID++
	return tid
}

// peekCurrent returns the running thread without the liveness assertions
// CurrentThread performs, so the panic path itself never recurses into a
// second assertion failure.
func peekCurrent() *Thread { return k.current }

// CurrentThread returns the running thread, asserting it is actually
// alive — the Go analogue of thread_current()'s is_thread/status checks.
func CurrentThread() *Thread {
	t := k.current
	t.checkMagic()
	assertf(t.status == StatusRunning, "core: current thread %q is not RUNNING (%s)", t.name, t.status)
	return t
}

// IdleThread returns the singleton idle thread (nil before Start).
func IdleThread() *Thread { return k.idleThread }

// Stats is a read-only snapshot of the tick counters, for thread_print_stats
// and the monitor.
type Stats struct {
	IdleTicks, KernelTicks, UserTicks uint64
	Tick                              uint64
}

// ThreadStats returns the current tick accounting.
func ThreadStats() Stats {
	return Stats{IdleTicks: k.idleTicks, KernelTicks: k.kernelTicks, UserTicks: k.userTicks, Tick: k.tick}
}
