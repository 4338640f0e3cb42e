package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTakeSnapshotReportsCurrentReadyAndSleeping(t *testing.T) {
	Init()

	ready := newThread("ready-one", 15, nil, nil, nil)
	readyPush(ready)

	sleeper := newThread("sleeper", PriDefault, nil, nil, nil)
	sleeper.status = StatusBlocked
	sleepPush(sleeper, 42)

	snap := TakeSnapshot()

	require.Equal(t, k.current.tid, snap.Current.TID)
	require.Equal(t, StatusRunning, snap.Current.Status)

	require.Len(t, snap.Ready, 1)
	require.Equal(t, "ready-one", snap.Ready[0].Name)
	require.Equal(t, 15, snap.Ready[0].Priority)

	require.Len(t, snap.Sleeping, 1)
	require.Equal(t, "sleeper", snap.Sleeping[0].Name)
	require.Equal(t, uint64(42), snap.Sleeping[0].WakeupTick)
}

func TestTakeSnapshotDescribesDonationAndWaitState(t *testing.T) {
	Init()

	holder := k.current
	waiter := newThread("waiter", 25, nil, nil, nil)
	waiter.status = StatusRunning
	k.current = waiter

	lockA := &fakeLock{holder: holder}
	Donate(lockA)

	snap := TakeSnapshot()
	require.Equal(t, holder.tid, snap.Current.WaitingOnTID)
}
