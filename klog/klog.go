// Package klog is the kernel's structured logging sink: a zerolog logger
// wrapped to satisfy hal.Logger for plain lines, plus a small typed API
// scheduler events (thread create/exit, priority donation, preemption)
// use instead of formatting their own strings.
package klog

import (
	"io"

	"github.com/rs/zerolog"

	"corekernel/hal"
)

// Logger wraps a zerolog.Logger and adapts it to hal.Logger.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger writing newline-delimited JSON to w.
func New(w io.Writer) *Logger {
	return &Logger{zl: zerolog.New(w).With().Timestamp().Logger()}
}

// WriteLineString implements hal.Logger.
func (l *Logger) WriteLineString(s string) { l.zl.Info().Msg(s) }

// WriteLineBytes implements hal.Logger.
func (l *Logger) WriteLineBytes(b []byte) { l.zl.Info().Msg(string(b)) }

var _ hal.Logger = (*Logger)(nil)

// ThreadCreated logs a new thread entering the system.
func (l *Logger) ThreadCreated(tid int, name string, priority int) {
	l.zl.Debug().Int("tid", tid).Str("name", name).Int("priority", priority).Msg("thread created")
}

// ThreadExited logs a thread reaching StatusDying.
func (l *Logger) ThreadExited(tid int, name string) {
	l.zl.Debug().Int("tid", tid).Str("name", name).Msg("thread exited")
}

// PriorityDonated logs one hop of a donation chain.
func (l *Logger) PriorityDonated(donorTID, holderTID, priority int) {
	l.zl.Debug().Int("donor", donorTID).Int("holder", holderTID).Int("priority", priority).Msg("priority donated")
}

// Preempted logs the scheduler switching away from a thread mid-slice.
func (l *Logger) Preempted(tid int, name string) {
	l.zl.Trace().Int("tid", tid).Str("name", name).Msg("preempted")
}
