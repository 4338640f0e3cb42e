//go:build !tinygo

// Command corekernel boots the thread subsystem on the host, runs a
// small demonstration workload that exercises priority donation, and
// renders live scheduler state through a window (or headless, with
// -window=false).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"corekernel/core"
	"corekernel/hal"
	"corekernel/klog"
	"corekernel/monitor"
)

func main() {
	var (
		scheduler = flag.String("o", "", "scheduler policy; \"mlfqs\" is recognized and accepted but never implemented (Non-goal)")
		window    = flag.Bool("window", true, "open a desktop window; false runs headless with only log output")
	)
	flag.Parse()
	if *scheduler != "" && *scheduler != "mlfqs" {
		log.Fatalf("corekernel: unknown -o %q", *scheduler)
	}

	logger := klog.New(os.Stdout)

	core.Init()
	core.Start()

	h := hal.New()
	if _, err := monitor.Start(h.Display(), logger); err != nil {
		log.Fatalf("corekernel: failed to start monitor: %v", err)
	}

	runDonationDemo(logger)
	runBusyWorker(logger)

	// The tick driver stands in for the interrupt controller: it only
	// ever touches the tick-accounting and sleep-queue state core.Tick
	// guards with its own critical section, never a thread's baton, so
	// it is safe to run on a goroutine independent of whichever kernel
	// thread is current. errgroup ties its lifetime to the run loop
	// below: canceling ctx once the loop exits stops the driver cleanly
	// instead of leaking it past the process's useful lifetime.
	ctx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ticks := h.Time().Ticks()
		for {
			select {
			case <-gctx.Done():
				return nil
			case n, ok := <-ticks:
				if !ok {
					return nil
				}
				core.Tick(n)
			}
		}
	})

	// step runs Yield on the very goroutine that called core.Init/Start
	// above (this one) — the baton handoff a Yield can trigger must stay
	// on the goroutine that embodies the current kernel thread, so unlike
	// the tick driver this never moves to its own goroutine.
	step := func() error {
		core.Yield()
		return nil
	}

	var runErr error
	if *window {
		runErr = hal.RunWindow(h, fmt.Sprintf("corekernel (%s)", version()), step)
	} else {
		for runErr == nil {
			h.Time().Step(1)
			runErr = step()
			time.Sleep(16 * time.Millisecond)
		}
	}

	cancel()
	if err := g.Wait(); err != nil {
		log.Printf("corekernel: tick driver stopped: %v", err)
	}
	if runErr != nil {
		log.Fatalf("corekernel: %v", runErr)
	}
}

func version() string { return "dev" }
