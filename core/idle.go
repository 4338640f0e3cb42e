package core

import "corekernel/intr"

// idleLoop is the body of the idle thread: it records itself as the
// process-wide idle thread, unblocks the thread that called Start so it
// becomes ready again, then blocks forever, re-entering Block every time
// it is scheduled — the Go analogue of pintos's idle(), minus the
// "sti; hlt" halt instruction, which has no portable Go equivalent and is
// simply elided: the goroutine parked on a channel receive already yields
// the OS thread.
func idleLoop(caller *Thread) {
	k.idleThread = peekCurrent()
	Unblock(caller)
	for {
		intr.Disable()
		Block()
	}
}
