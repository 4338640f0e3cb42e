//go:build tinygo

package main

import (
	"corekernel/core"
	"corekernel/hal"
	"corekernel/monitor"
)

// main boots the thread subsystem on a tinygo device: the tick source
// is the board's millisecond ticker, and the monitor paints scheduler
// state onto the board's framebuffer through the real panel driver
// wired in by the build.
func main() {
	core.Init()
	core.Start()

	h := hal.New()
	if _, err := monitor.Start(h.Display(), nil); err != nil {
		h.Logger().WriteLineString("corekernel: failed to start monitor: " + err.Error())
		return
	}

	for n := range h.Time().Ticks() {
		core.Tick(n)
		core.CheckPreempt()
	}
}
