package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeLock is the minimal LockHandle a test can drive without pulling in
// package corelock (which itself depends on core).
type fakeLock struct{ holder *Thread }

func (l *fakeLock) Holder() *Thread { return l.holder }

func TestDonatePriorityRaisesSingleHolder(t *testing.T) {
	Init()

	low := k.current
	low.priority, low.initPriority = 10, 10

	med := newThread("med", 20, nil, nil, nil)
	med.status = StatusRunning
	k.current = med

	lockA := &fakeLock{holder: low}
	Donate(lockA)

	require.Equal(t, 20, low.priority)
	require.Same(t, lockA, med.waitOnLock)
	require.Contains(t, low.donations, med)
}

func TestDonatePriorityPropagatesThroughNestedLocks(t *testing.T) {
	Init()

	low := k.current
	low.priority, low.initPriority = 10, 10

	med := newThread("med", 20, nil, nil, nil)
	high := newThread("high", 30, nil, nil, nil)

	lockA := &fakeLock{holder: low}
	lockB := &fakeLock{holder: med}

	med.status = StatusRunning
	k.current = med
	Donate(lockA)
	require.Equal(t, 20, low.priority)

	high.status = StatusRunning
	k.current = high
	Donate(lockB)

	require.Equal(t, 30, med.priority, "med must inherit high's priority")
	require.Equal(t, 30, low.priority, "the donation must propagate through med to low")
}

func TestDonationChainStopsAfterDepthLimit(t *testing.T) {
	Init()

	const n = 10
	threads := make([]*Thread, n)
	for i := range threads {
		threads[i] = newThread(fmt.Sprintf("t%d", i), 10, nil, nil, nil)
	}
	locks := make([]*fakeLock, n-1)
	for i := 0; i < n-1; i++ {
		locks[i] = &fakeLock{holder: threads[i]}
	}
	// threads[i] waits on locks[i-1], held by threads[i-1], for i=1..n-1.
	for i := 1; i < n-1; i++ {
		threads[i].waitOnLock = locks[i-1]
	}

	threads[n-1].priority = 99
	threads[n-1].status = StatusRunning
	k.current = threads[n-1]
	Donate(locks[n-2])

	require.Equal(t, 99, threads[1].priority, "the 8th hop still gets boosted")
	require.Equal(t, 10, threads[0].priority, "the 9th hop is past the depth limit")
}

func TestReleaseLockDropsDonationAndRecomputesPriority(t *testing.T) {
	Init()

	low := k.current
	low.priority, low.initPriority = 10, 10

	med := newThread("med", 20, nil, nil, nil)
	lockA := &fakeLock{holder: low}

	med.status = StatusRunning
	k.current = med
	Donate(lockA)
	require.Equal(t, 20, low.priority)

	low.status = StatusRunning
	k.current = low
	ReleaseLock(lockA)

	require.Equal(t, 10, low.priority, "releasing the only lock med waited on drops the donation")
	require.Empty(t, low.donations)
}

func TestReleaseLockKeepsDonationsFromOtherLocks(t *testing.T) {
	Init()

	low := k.current
	low.priority, low.initPriority = 10, 10

	medA := newThread("medA", 20, nil, nil, nil)
	medB := newThread("medB", 25, nil, nil, nil)
	lockA := &fakeLock{holder: low}
	lockB := &fakeLock{holder: low}

	medA.status = StatusRunning
	k.current = medA
	Donate(lockA)

	medB.status = StatusRunning
	k.current = medB
	Donate(lockB)

	require.Equal(t, 25, low.priority)

	low.status = StatusRunning
	k.current = low
	ReleaseLock(lockA)

	require.Equal(t, 25, low.priority, "medB's donation via lockB survives releasing lockA")
	require.Len(t, low.donations, 1)
}
