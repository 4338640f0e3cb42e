package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCreateHigherPriorityPreemptsImmediately(t *testing.T) {
	Init()
	Start()

	ran := make(chan int, 1)
	_, err := Create("hi", PriDefault+10, func(aux any) {
		ran <- CurrentThread().TID()
		Exit()
	}, nil)
	require.NoError(t, err)

	select {
	case tid := <-ran:
		require.NotZero(t, tid)
	case <-time.After(time.Second):
		t.Fatal("higher priority thread never ran before Create returned")
	}
}

func TestCreateLowerPriorityDoesNotPreempt(t *testing.T) {
	Init()
	Start()

	ran := make(chan struct{}, 1)
	_, err := Create("lowly", PriDefault-10, func(aux any) {
		ran <- struct{}{}
		Exit()
	}, nil)
	require.NoError(t, err)

	select {
	case <-ran:
		t.Fatal("a lower-priority thread must not run while the caller outranks it")
	default:
	}

	// Yield re-queues the caller at its own (higher) priority, so the
	// scheduler picks the caller straight back.
	Yield()
	select {
	case <-ran:
		t.Fatal("Yield must not hand the CPU to a lower-priority thread")
	default:
	}

	// Dropping below lowly makes it the highest-priority ready thread.
	SetPriority(PriDefault - 20)
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("lower priority thread never got a turn once the caller dropped below it")
	}
}

func TestSleepWakesInTickOrderNotCreationOrder(t *testing.T) {
	Init()
	Start()

	var order []string
	done := make(chan struct{}, 2)
	spawn := func(name string, wake uint64) {
		_, err := Create(name, PriDefault, func(aux any) {
			Sleep(wake)
			order = append(order, name)
			done <- struct{}{}
			Exit()
		}, nil)
		require.NoError(t, err)
	}

	spawn("late", 20)
	spawn("early", 10)

	for tick := uint64(1); tick <= 25; tick++ {
		Tick(tick)
		Yield()
	}

	<-done
	<-done
	require.Equal(t, []string{"early", "late"}, order)
}

func TestExitReclaimsThreadsPage(t *testing.T) {
	Init()
	Start()

	inUseBefore := k.pages.InUse()

	done := make(chan struct{})
	_, err := Create("transient", PriDefault+1, func(aux any) {
		close(done)
		Exit()
	}, nil)
	require.NoError(t, err)
	<-done

	// Give the scheduler another entry so the destruction queue, reaped at
	// the *next* schedule() call, actually runs before we check pool stats.
	Yield()

	require.Equal(t, inUseBefore, k.pages.InUse(), "the exited thread's page must be returned to the pool")
}
