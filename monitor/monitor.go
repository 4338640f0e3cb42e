// Package monitor is a kernel thread that renders scheduler state. It
// never participates in scheduling decisions: it only ever calls
// core.Sleep, core.ThreadStats and core.TakeSnapshot from its own thread
// body — it is exercised the same way any other thread is.
package monitor

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyterm"

	"corekernel/core"
	"corekernel/fonts/font6x8cp1251"
	"corekernel/hal"
	"corekernel/klog"
)

const (
	framePeriodTicks = 6
	barRowHeight     = int16(10)
	barAreaRows      = 4 // current + up to 3 ready threads get a bar; the rest only print
)

var (
	colorBG    = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xFF}
	colorRun   = color.RGBA{R: 0x30, G: 0xC0, B: 0x60, A: 0xFF}
	colorReady = color.RGBA{R: 0x30, G: 0x80, B: 0xC0, A: 0xFF}
)

// Start creates the monitor thread. disp may be nil (headless), in which
// case only log lines are produced through logger.
func Start(disp hal.Display, logger *klog.Logger) (*core.Thread, error) {
	return core.Create("monitor", core.PriMin+1, func(aux any) {
		run(disp, logger)
	}, nil)
}

func run(disp hal.Display, logger *klog.Logger) {
	var (
		term *tinyterm.Terminal
		surf *surface
		fb   hal.Framebuffer
	)
	if disp != nil {
		fb = disp.Framebuffer()
	}
	if fb != nil {
		surf = newSurface(fb)
		fb.ClearRGB(colorBG.R, colorBG.G, colorBG.B)

		termSurf := newSurface(fb)
		term = tinyterm.NewTerminal(termSurf)
		term.Configure(&tinyterm.Config{
			Font:              font6x8cp1251.Font,
			FontHeight:        8,
			FontOffset:        7,
			UseSoftwareScroll: true,
		})
	}

	next := core.ThreadStats().Tick + framePeriodTicks
	for {
		snap := core.TakeSnapshot()

		if surf != nil {
			drawBars(surf, fb.Width(), snap)
		}
		if term != nil {
			printSnapshot(term, snap)
			term.Display()
		}
		if logger != nil {
			logger.WriteLineString(fmt.Sprintf("monitor: tick=%d ready=%d sleeping=%d current=%s(%d)",
				snap.Stats.Tick, len(snap.Ready), len(snap.Sleeping), snap.Current.Name, snap.Current.TID))
		}

		core.Sleep(next)
		next = core.ThreadStats().Tick + framePeriodTicks
	}
}

// drawBars paints one horizontal bar per runnable thread along the top
// rows of the framebuffer, width proportional to priority, so a
// donation boosting a holder's priority is visible as its bar growing in
// real time. The terminal owns the rows below this strip.
func drawBars(surf *surface, width int, snap core.Snapshot) {
	draw := func(row int16, info core.ThreadInfo, c color.RGBA) {
		barWidth := int16(0)
		if width > 0 {
			barWidth = int16(info.Priority * width / core.PriMax)
		}
		_ = surf.FillRectangle(0, row, int16(width), barRowHeight-1, colorBG)
		_ = surf.FillRectangle(0, row, barWidth, barRowHeight-1, c)
	}

	row := int16(0)
	draw(row, snap.Current, colorRun)
	row += barRowHeight
	for i, info := range snap.Ready {
		if i >= barAreaRows-1 {
			break
		}
		draw(row, info, colorReady)
		row += barRowHeight
	}
}

func printSnapshot(term *tinyterm.Terminal, snap core.Snapshot) {
	fmt.Fprintf(term, "tick %d  running %s(tid=%d pri=%d)\r\n", snap.Stats.Tick, snap.Current.Name, snap.Current.TID, snap.Current.Priority)
	fmt.Fprintf(term, "ready: %d  sleeping: %d\r\n", len(snap.Ready), len(snap.Sleeping))
	for _, info := range snap.Ready {
		line := fmt.Sprintf("  #%d %-8s pri=%-2d", info.TID, info.Name, info.Priority)
		if info.WaitingOnTID != 0 {
			line += fmt.Sprintf(" wait->%d", info.WaitingOnTID)
		}
		fmt.Fprintf(term, "%s\r\n", line)
	}
}
