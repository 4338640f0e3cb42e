// Package arch is the architectural leaf: the single place that performs
// the context switch spec.md §4.E calls thread_launch/do_iret.
//
// x86-64 pintos saves the full register file into the outgoing thread's
// interrupt frame and restores the incoming thread's frame via iretq. Go
// has no portable way to touch a goroutine's register file, but the
// runtime already does the equivalent job whenever a goroutine blocks on a
// channel: its entire stack, including every local and return address, is
// preserved untouched until something sends on that channel again. A Baton
// is exactly that channel, used as a strict single-token handoff so that,
// at any instant, at most one goroutine is past its own resume point.
//
// Do not use a Baton's channel for anything but the handoff in Switch —
// it is not a general-purpose queue and carries no payload.
package arch

import "runtime"

// Baton is the resume point for one kernel thread's goroutine.
type Baton struct {
	resume chan struct{}
}

// NewBaton allocates a parked baton. The owning thread's goroutine (if any)
// must block on the baton's channel before doing anything else, as the
// goroutine Launch starts does.
func NewBaton() *Baton {
	return &Baton{resume: make(chan struct{})}
}

// Launch starts body in a new goroutine, parked until the first Switch
// targets this baton. It is the trampoline-installation half of
// thread_create: the goroutine exists but does not run until scheduled.
func (b *Baton) Launch(body func()) {
	go func() {
		<-b.resume
		body()
	}()
}

// Switch hands the CPU from the caller's baton to next, then blocks the
// caller until it is itself resumed by some future Switch. If dying is
// true the caller never resumes: its goroutine exits in place, the exact
// analogue of thread_launch's "does not return" contract for an exiting
// thread — the TCB and its page are reclaimed later, by the next
// scheduler invocation, never by this one.
func Switch(from *Baton, next *Baton, dying bool) {
	next.resume <- struct{}{}
	if dying {
		runtime.Goexit()
	}
	<-from.resume
}
