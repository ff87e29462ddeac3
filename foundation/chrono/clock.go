// File: clock.go
// Title: Clock Collaborator
// Description: The clock interface the package queries for the current
//              instant and local offset, and the constructors built on it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package chrono

// Clock supplies the current time. Implementations must be safe for
// concurrent use. The package never caches a Clock's answers.
type Clock interface {
	// UTCTicks returns the current instant at the clock's coarse resolution
	UTCTicks() int64

	// ExactUTCTicks returns the current instant at the best available resolution
	ExactUTCTicks() int64

	// LocalOffset returns the UTC offset of local time at the current instant
	LocalOffset() TimeSpan
}

// Now returns the current local time at the clock's coarse resolution
func Now(c Clock) (DateTime, error) {
	return localNow("Now", c, c.UTCTicks())
}

// ExactNow returns the current local time at the best available resolution
func ExactNow(c Clock) (DateTime, error) {
	return localNow("ExactNow", c, c.ExactUTCTicks())
}

// GmtNow returns the current UTC time at the clock's coarse resolution
func GmtNow(c Clock) (DateTime, error) {
	return utcNow("GmtNow", c.UTCTicks())
}

// ExactGmtNow returns the current UTC time at the best available resolution
func ExactGmtNow(c Clock) (DateTime, error) {
	return utcNow("ExactGmtNow", c.ExactUTCTicks())
}

func utcNow(op string, ticks int64) (DateTime, error) {
	if ticks < 0 || ticks > MaxTicks {
		return DateTime{}, outOfRange(op, "clock reading %d out of range", ticks)
	}
	return DateTime{ticks: ticks, kind: UTC}, nil
}

func localNow(op string, c Clock, ticks int64) (DateTime, error) {
	utc, err := utcNow(op, ticks)
	if err != nil {
		return DateTime{}, err
	}
	local, err := utc.In(c.LocalOffset())
	if err != nil {
		return DateTime{}, withOperation(err, op)
	}
	return local, nil
}
