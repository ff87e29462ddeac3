// File: timer.go
// Title: Performance Timer
// Description: Measures operations against the logger's clock and logs the
//              elapsed time as a chrono.TimeSpan.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-19 v0.2.0: Clock-based measurement, TimeSpan results

package log

import (
	"github.com/msto63/chrono/foundation/chrono"
)

// Timer measures the duration of one operation
type Timer struct {
	logger    *Logger
	clock     chrono.Clock
	operation string
	start     int64
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation and starts it
func NewTimer(logger *Logger, operation string) *Timer {
	t := &Timer{
		logger:    logger,
		clock:     logger.Clock(),
		operation: operation,
		fields:    make(Fields),
		level:     LevelDebug,
	}
	t.start = t.clock.ExactUTCTicks()
	return t
}

// WithLevel sets the log level for the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer was started
func (t *Timer) Elapsed() chrono.TimeSpan {
	return chrono.FromTicks(t.clock.ExactUTCTicks() - t.start)
}

// Stop stops the timer and logs the elapsed time. A stopped timer returns
// zero and logs nothing.
func (t *Timer) Stop() chrono.TimeSpan {
	if t.stopped {
		return chrono.TimeSpan{}
	}
	t.stopped = true

	elapsed := t.Elapsed()
	t.fields["operation"] = t.operation
	t.logger.log(t.level, t.operation+" completed", nil, elapsed, t.fields)
	return elapsed
}

// StopWithError stops the timer and logs err with the elapsed time
func (t *Timer) StopWithError(err error) chrono.TimeSpan {
	if t.stopped {
		return chrono.TimeSpan{}
	}
	t.stopped = true

	elapsed := t.Elapsed()
	t.fields["operation"] = t.operation
	t.fields["success"] = false
	t.logger.log(LevelError, t.operation+" failed", err, elapsed, t.fields)
	return elapsed
}

// Checkpoint logs an intermediate timing at debug level
func (t *Timer) Checkpoint(name string) {
	if t.stopped {
		return
	}
	fields := t.fields.Merge(Fields{
		"operation":  t.operation,
		"checkpoint": name,
	})
	t.logger.log(LevelDebug, t.operation+" checkpoint: "+name, nil, t.Elapsed(), fields)
}

// Cancel stops the timer without logging
func (t *Timer) Cancel() {
	t.stopped = true
}

// IsRunning returns true if the timer is still running
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

// StartTime returns the instant the timer was started, in UTC
func (t *Timer) StartTime() chrono.DateTime {
	d, err := chrono.FromTicksSinceEpoch(t.start)
	if err != nil {
		return chrono.DateTime{}
	}
	return d.UTC()
}
