package core

import "corekernel/intr"

// ThreadInfo is a read-only description of one thread, safe to hold onto
// after the interrupt-disabled section that produced it — it copies
// everything a renderer (package monitor) needs instead of handing out
// the live *Thread.
type ThreadInfo struct {
	TID          int
	Name         string
	Status       Status
	Priority     int
	InitPriority int
	WaitingOnTID int // 0 if not waiting on a lock
	DonorTIDs    []int
	WakeupTick   uint64
}

func describeThread(t *Thread) ThreadInfo {
	info := ThreadInfo{
		TID:          t.tid,
		Name:         t.name,
		Status:       t.status,
		Priority:     t.priority,
		InitPriority: t.initPriority,
		WakeupTick:   t.wakeupTick,
	}
	if t.waitOnLock != nil {
		if holder := t.waitOnLock.Holder(); holder != nil {
			info.WaitingOnTID = holder.tid
		}
	}
	for _, d := range t.donations {
		info.DonorTIDs = append(info.DonorTIDs, d.tid)
	}
	return info
}

// Snapshot is a point-in-time dump of the whole scheduler, for the
// monitor thread to render. It is taken under the same interrupt-disable
// critical section the scheduler itself uses, so it never observes a
// torn ready list mid-reorder.
type Snapshot struct {
	Current  ThreadInfo
	Ready    []ThreadInfo
	Sleeping []ThreadInfo
	Stats    Stats
}

// TakeSnapshot produces a Snapshot of the current scheduler state.
func TakeSnapshot() Snapshot {
	old := intr.Disable()
	defer intr.SetLevel(old)

	snap := Snapshot{Stats: ThreadStats()}
	if cur := peekCurrent(); cur != nil {
		snap.Current = describeThread(cur)
	}
	for _, t := range k.readyList {
		snap.Ready = append(snap.Ready, describeThread(t))
	}
	for _, t := range k.sleepList {
		snap.Sleeping = append(snap.Sleeping, describeThread(t))
	}
	return snap
}
