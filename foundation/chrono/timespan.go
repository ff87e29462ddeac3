// File: timespan.go
// Title: TimeSpan
// Description: Signed elapsed duration counted in ticks, with checked
//              arithmetic and sign-consistent component decomposition.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package chrono

import "math"

// TimeSpan is a signed duration with 100 ns resolution. The zero value is an
// empty span. TimeSpan is comparable and can be used as a map key.
type TimeSpan struct {
	ticks int64
}

// Bounds of the representable spans
var (
	MaxTimeSpan = TimeSpan{math.MaxInt64}
	MinTimeSpan = TimeSpan{-math.MaxInt64}
)

// FromTicks returns a span of exactly ticks. math.MinInt64 is raised to the
// smallest representable span.
func FromTicks(ticks int64) TimeSpan {
	if ticks == math.MinInt64 {
		return MinTimeSpan
	}
	return TimeSpan{ticks}
}

// FromDays returns a span of the given number of days, rounded to the nearest tick
func FromDays(days float64) (TimeSpan, error) {
	return fromFloat("FromDays", days, TicksPerDay)
}

// FromHours returns a span of the given number of hours, rounded to the nearest tick
func FromHours(hours float64) (TimeSpan, error) {
	return fromFloat("FromHours", hours, TicksPerHour)
}

// FromMinutes returns a span of the given number of minutes, rounded to the nearest tick
func FromMinutes(minutes float64) (TimeSpan, error) {
	return fromFloat("FromMinutes", minutes, TicksPerMinute)
}

// FromSeconds returns a span of the given number of seconds, rounded to the nearest tick
func FromSeconds(seconds float64) (TimeSpan, error) {
	return fromFloat("FromSeconds", seconds, TicksPerSecond)
}

// FromMilliseconds returns a span of the given number of milliseconds, rounded to the nearest tick
func FromMilliseconds(milliseconds float64) (TimeSpan, error) {
	return fromFloat("FromMilliseconds", milliseconds, TicksPerMillisecond)
}

// FromMicroseconds returns a span of the given number of microseconds, rounded to the nearest tick
func FromMicroseconds(microseconds float64) (TimeSpan, error) {
	return fromFloat("FromMicroseconds", microseconds, TicksPerMicrosecond)
}

func fromFloat(op string, value float64, ticksPerUnit int64) (TimeSpan, error) {
	ticks, err := ticksFromFloat(op, value, ticksPerUnit)
	if err != nil {
		return TimeSpan{}, err
	}
	return TimeSpan{ticks}, nil
}

// Must returns v or panics with err. It is meant for tests and package level
// variables built from constants.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Add returns s+o or an overflow error
func (s TimeSpan) Add(o TimeSpan) (TimeSpan, error) {
	sum, ok := addTicks(s.ticks, o.ticks)
	if !ok {
		return TimeSpan{}, overflowError("TimeSpan.Add", "%d + %d ticks exceeds the tick range", s.ticks, o.ticks)
	}
	return TimeSpan{sum}, nil
}

// Sub returns s-o or an overflow error
func (s TimeSpan) Sub(o TimeSpan) (TimeSpan, error) {
	diff, ok := addTicks(s.ticks, -o.ticks)
	if !ok {
		return TimeSpan{}, overflowError("TimeSpan.Sub", "%d - %d ticks exceeds the tick range", s.ticks, o.ticks)
	}
	return TimeSpan{diff}, nil
}

// Neg returns -s
func (s TimeSpan) Neg() TimeSpan {
	return TimeSpan{-s.ticks}
}

// Abs returns the span without its sign
func (s TimeSpan) Abs() TimeSpan {
	if s.ticks < 0 {
		return TimeSpan{-s.ticks}
	}
	return s
}

// Mul scales the span by factor, rounding to the nearest tick
func (s TimeSpan) Mul(factor float64) (TimeSpan, error) {
	if math.IsNaN(factor) {
		return TimeSpan{}, invalidArgument("TimeSpan.Mul", "cannot scale by NaN")
	}
	if v, ok := mulTicks(s.ticks, int64(factor)); ok && float64(int64(factor)) == factor {
		return TimeSpan{v}, nil
	}
	return fromFloat("TimeSpan.Mul", float64(s.ticks)*factor, 1)
}

// Div divides the span by divisor, rounding to the nearest tick
func (s TimeSpan) Div(divisor float64) (TimeSpan, error) {
	if divisor == 0 || math.IsNaN(divisor) {
		return TimeSpan{}, invalidArgument("TimeSpan.Div", "cannot divide by %g", divisor)
	}
	return fromFloat("TimeSpan.Div", float64(s.ticks)/divisor, 1)
}

// Days returns the whole days of the span
func (s TimeSpan) Days() int {
	return int(s.ticks / TicksPerDay)
}

// Hours returns the hour component, -23..23
func (s TimeSpan) Hours() int {
	return int(s.ticks / TicksPerHour % 24)
}

// Minutes returns the minute component, -59..59
func (s TimeSpan) Minutes() int {
	return int(s.ticks / TicksPerMinute % 60)
}

// Seconds returns the second component, -59..59
func (s TimeSpan) Seconds() int {
	return int(s.ticks / TicksPerSecond % 60)
}

// Milliseconds returns the millisecond component, -999..999
func (s TimeSpan) Milliseconds() int {
	return int(s.ticks / TicksPerMillisecond % 1000)
}

// Microseconds returns the microsecond component, -999..999
func (s TimeSpan) Microseconds() int {
	return int(s.ticks / TicksPerMicrosecond % 1000)
}

// Nanoseconds returns the nanosecond component in steps of 100, -900..900
func (s TimeSpan) Nanoseconds() int {
	return int(s.ticks % TicksPerMicrosecond * NanosecondsPerTick)
}

// TotalTicks returns the exact tick count
func (s TimeSpan) TotalTicks() int64 {
	return s.ticks
}

// TotalDays returns the span in fractional days
func (s TimeSpan) TotalDays() float64 {
	return float64(s.ticks) / float64(TicksPerDay)
}

// TotalHours returns the span in fractional hours
func (s TimeSpan) TotalHours() float64 {
	return float64(s.ticks) / float64(TicksPerHour)
}

// TotalMinutes returns the span in fractional minutes
func (s TimeSpan) TotalMinutes() float64 {
	return float64(s.ticks) / float64(TicksPerMinute)
}

// TotalSeconds returns the span in fractional seconds
func (s TimeSpan) TotalSeconds() float64 {
	return float64(s.ticks) / float64(TicksPerSecond)
}

// TotalMilliseconds returns the span in fractional milliseconds
func (s TimeSpan) TotalMilliseconds() float64 {
	return float64(s.ticks) / float64(TicksPerMillisecond)
}

// TotalMicroseconds returns the span in fractional microseconds
func (s TimeSpan) TotalMicroseconds() float64 {
	return float64(s.ticks) / float64(TicksPerMicrosecond)
}

// IsZero reports whether the span is empty
func (s TimeSpan) IsZero() bool {
	return s.ticks == 0
}

// IsNegative reports whether the span is below zero
func (s TimeSpan) IsNegative() bool {
	return s.ticks < 0
}

// Equal reports whether both spans have the same length
func (s TimeSpan) Equal(o TimeSpan) bool {
	return s.ticks == o.ticks
}

// Compare returns -1, 0 or +1 depending on whether s is shorter, equal or longer than o
func (s TimeSpan) Compare(o TimeSpan) int {
	switch {
	case s.ticks < o.ticks:
		return -1
	case s.ticks > o.ticks:
		return 1
	default:
		return 0
	}
}

// Hash returns a well mixed hash of the tick count. Equal spans hash equally.
func (s TimeSpan) Hash() uint64 {
	return mix64(uint64(s.ticks))
}

// mix64 is the splitmix64 finalizer
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
