package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNiceCPUIsAlwaysZeroAndNeverAffectsScheduling(t *testing.T) {
	Init()
	Start()

	ran := make(chan int, 1)
	low := newThread("low-nice", PriDefault, nil, nil, nil)
	require.Zero(t, low.NiceCPU())

	hi, err := Create("high-nice", PriDefault+10, func(aux any) {
		ran <- CurrentThread().TID()
		Exit()
	}, nil)
	require.NoError(t, err)
	require.Zero(t, hi.NiceCPU())
	require.Equal(t, low.NiceCPU(), hi.NiceCPU())

	// NiceCPU is a documented, always-zero stub: scheduling is decided
	// purely by Priority(), so the higher-priority thread still ran
	// immediately even though both threads report an identical (zero)
	// NiceCPU value.
	select {
	case <-ran:
	default:
		t.Fatal("higher priority thread never ran before Create returned")
	}
}
