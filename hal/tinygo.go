//go:build tinygo

package hal

import (
	"machine"
	"time"
)

type tinyGoHAL struct {
	logger *uartLogger
	fb     *tinyGoFramebuffer
	t      *tinyGoTime
}

// New returns a tinygo device HAL: the board's default serial console
// for Logger, an in-memory RGB565 framebuffer for Display (painted onto
// the real panel by a board-specific driver from tinygo.org/x/drivers,
// wired in by the build that imports this package), and a millisecond
// ticker for Time.
func New() HAL {
	return &tinyGoHAL{
		logger: &uartLogger{uart: machine.Serial},
		fb:     newTinyGoFramebuffer(320, 240),
		t:      newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Time() Time       { return h.t }

type tinyGoDisplay struct{ fb Framebuffer }

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type uartLogger struct {
	uart interface {
		WriteByte(byte) error
	}
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		_ = l.uart.WriteByte(s[i])
	}
	_ = l.uart.WriteByte('\r')
	_ = l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		_ = l.uart.WriteByte(b[i])
	}
	_ = l.uart.WriteByte('\r')
	_ = l.uart.WriteByte('\n')
}

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.Step(1)
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

// Step implements hal.Time; on a real board the background ticker
// goroutine above is normally what drives it, but CLI tooling (and
// tests) may call it directly too.
func (t *tinyGoTime) Step(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
