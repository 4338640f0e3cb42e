package core

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// PanicInfo describes a fatal contract violation, the Go analogue of a
// pintos kernel panic from a failed ASSERT.
type PanicInfo struct {
	TID     int
	Message string
	Stack   []byte
}

var (
	panicActive atomic.Bool
	panicOnce   sync.Once
	panicHander atomic.Value // func(PanicInfo)
)

// InPanicMode reports whether the kernel has already latched a fatal
// assertion failure.
func InPanicMode() bool { return panicActive.Load() }

// SetPanicHandler installs a process-wide handler invoked at most once, on
// the first contract violation. It must not panic.
func SetPanicHandler(fn func(PanicInfo)) { panicHander.Store(fn) }

// assertf is the core's single choke point for contract violations:
// callers pass blocked threads to non-block operations, call yielding
// operations from interrupt context, request out-of-range priorities, or
// trip the magic canary. Per spec.md §7 this is always fatal — it never
// returns.
func assertf(cond bool, format string, args ...any) {
	if cond {
		return
	}
	msg := fmt.Sprintf(format, args...)
	tid := -1
	if c := peekCurrent(); c != nil {
		tid = c.tid
	}
	panicOnce.Do(func() {
		panicActive.Store(true)
		info := PanicInfo{TID: tid, Message: msg, Stack: debug.Stack()}
		if v := panicHander.Load(); v != nil {
			if fn, ok := v.(func(PanicInfo)); ok && fn != nil {
				fn(info)
			}
		}
	})
	panic("core: " + msg)
}
