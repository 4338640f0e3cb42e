package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"corekernel/intr"
)

func TestBlockPanicsIfInterruptsAreEnabled(t *testing.T) {
	Init()
	intr.SetLevel(intr.LevelOn) // tests run in-process and share this package's interrupt state
	require.Panics(t, func() { Block() }, "Block requires the caller to already hold interrupts disabled")
}

func TestUnblockPanicsOnNonBlockedThread(t *testing.T) {
	Init()
	ready := newThread("r", PriDefault, nil, nil, nil)
	ready.status = StatusReady
	require.Panics(t, func() { Unblock(ready) })
}

func TestYieldNeverPushesIdleOntoReadyList(t *testing.T) {
	Init()
	Start()

	// Force the idle thread to be "current" and yield from it directly,
	// the same path idleLoop takes every time it is scheduled back in.
	k.current = k.idleThread
	k.idleThread.status = StatusRunning

	Yield()

	require.Zero(t, readyLen(), "idle must never sit on the ready list")
}
