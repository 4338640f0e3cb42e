package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"corekernel/intr"
	"corekernel/pagealloc"
)

func TestCreateFailsWithErrNoTIDWhenPagesAreExhausted(t *testing.T) {
	Init()
	k.pages = pagealloc.NewPool(1)

	_, err := Create("first", PriDefault, func(aux any) {}, nil)
	require.NoError(t, err)

	_, err = Create("second", PriDefault, func(aux any) {}, nil)
	require.ErrorIs(t, err, ErrNoTID)
}

func TestCreateRejectsNilEntry(t *testing.T) {
	Init()
	require.Panics(t, func() { _, _ = Create("bad", PriDefault, nil, nil) })
}

func TestBlockAndUnblockRoundTrip(t *testing.T) {
	Init()
	Start()

	ran := make(chan struct{})
	th, err := Create("blocker", PriDefault+1, func(aux any) {
		intr.Disable()
		Block()
		close(ran)
		Exit()
	}, nil)
	require.NoError(t, err)
	// blocker outranks the caller, so Create above already ran it up to
	// Block() synchronously before returning.
	require.Equal(t, StatusBlocked, th.Status())

	select {
	case <-ran:
		t.Fatal("a blocked thread must not run before Unblock")
	default:
	}

	Unblock(th)
	Yield()

	select {
	case <-ran:
	default:
		t.Fatal("Unblock must make the thread runnable again")
	}
}
