// File: datetime.go
// Title: DateTime
// Description: Absolute instant counted in ticks since 0001-01-01 plus an
//              optional fixed UTC offset used for presentation. Equality and
//              ordering only look at the instant.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package chrono

import (
	"math"

	"github.com/msto63/chrono/foundation/chrono/calendar"
)

// Kind tells how a DateTime relates to UTC
type Kind uint8

const (
	// Unspecified values carry no offset; wall clock and instant coincide
	Unspecified Kind = iota
	// UTC values were built from a UTC source and format with a Z suffix
	UTC
	// Local values carry a fixed offset from UTC
	Local
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case UTC:
		return "utc"
	case Local:
		return "local"
	default:
		return "unspecified"
	}
}

// Weekday is the day of the week, Monday first
type Weekday = calendar.Weekday

const (
	Monday    = calendar.Monday
	Tuesday   = calendar.Tuesday
	Wednesday = calendar.Wednesday
	Thursday  = calendar.Thursday
	Friday    = calendar.Friday
	Saturday  = calendar.Saturday
	Sunday    = calendar.Sunday
)

// maxOffset bounds the offsets a DateTime can carry, exclusive
const maxOffset = 24 * TicksPerHour

// DateTime is an instant between 0001-01-01 and 9999-12-31 23:59:59.9999999
// with 100 ns resolution. The zero value is 0001-01-01 00:00:00.
//
// The offset is presentation only: two values describing the same instant
// are Equal even when their offsets differ. The == operator also compares
// the offset, so use Ticks or Hash as a map key when values of different
// offsets must collapse.
type DateTime struct {
	ticks  int64
	offset TimeSpan
	kind   Kind
}

// FromDate returns midnight of the given calendar date
func FromDate(year, month, day int) (DateTime, error) {
	return fromDateAndTime("FromDate", year, month, day, 0, 0, 0, 0)
}

// FromDateAndTime validates the components and composes a DateTime.
// millisecond may carry a fraction and must be below 1000; it is rounded to
// the nearest tick without leaving the second.
func FromDateAndTime(year, month, day, hour, minute, second int, millisecond float64) (DateTime, error) {
	return fromDateAndTime("FromDateAndTime", year, month, day, hour, minute, second, millisecond)
}

// FromTime returns the given time of day on 0001-01-01
func FromTime(hour, minute, second int, millisecond float64) (DateTime, error) {
	return fromDateAndTime("FromTime", 1, 1, 1, hour, minute, second, millisecond)
}

func fromDateAndTime(op string, year, month, day, hour, minute, second int, millisecond float64) (DateTime, error) {
	if err := calendar.ValidateDate(year, month, day); err != nil {
		return DateTime{}, withOperation(err, op)
	}
	if err := calendar.ValidateTime(hour, minute, second, millisecond); err != nil {
		return DateTime{}, withOperation(err, op)
	}

	frac := int64(math.Round(millisecond * float64(TicksPerMillisecond)))
	if frac >= TicksPerSecond {
		frac = TicksPerSecond - 1
	}
	return DateTime{ticks: composeTicks(year, month, day, hour, minute, second) + frac}, nil
}

// composeTicks assumes validated components
func composeTicks(year, month, day, hour, minute, second int) int64 {
	days, _ := calendar.EpochDays(year, month, day)
	return days*TicksPerDay +
		int64(hour)*TicksPerHour +
		int64(minute)*TicksPerMinute +
		int64(second)*TicksPerSecond
}

// FromTicksSinceEpoch returns the unspecified DateTime at ticks
func FromTicksSinceEpoch(ticks int64) (DateTime, error) {
	if ticks < 0 || ticks > MaxTicks {
		return DateTime{}, outOfRange("FromTicksSinceEpoch", "tick count %d out of range 0..%d", ticks, MaxTicks)
	}
	return DateTime{ticks: ticks}, nil
}

// FromTimeStampGmt converts Unix seconds into a UTC DateTime
func FromTimeStampGmt(unix int64) (DateTime, error) {
	ticks, ok := unixTicks(unix)
	if !ok {
		return DateTime{}, outOfRange("FromTimeStampGmt", "unix time stamp %d out of range", unix)
	}
	return DateTime{ticks: ticks, kind: UTC}, nil
}

// FromTimeStamp converts Unix seconds into a local DateTime using the offset
// the clock reports now. The offset is a snapshot, so values near a
// daylight saving transition may carry the offset of the other side.
// A time stamp of 0 yields the zero DateTime.
func FromTimeStamp(c Clock, unix int64) (DateTime, error) {
	if unix == 0 {
		return DateTime{}, nil
	}
	utc, err := FromTimeStampGmt(unix)
	if err != nil {
		return DateTime{}, withOperation(err, "FromTimeStamp")
	}
	local, err := utc.In(c.LocalOffset())
	if err != nil {
		return DateTime{}, withOperation(err, "FromTimeStamp")
	}
	return local, nil
}

func unixTicks(unix int64) (int64, bool) {
	const maxUnix = (MaxTicks - UnixEpochTicks) / TicksPerSecond
	const minUnix = -UnixEpochTicks / TicksPerSecond
	if unix < minUnix || unix > maxUnix {
		return 0, false
	}
	return UnixEpochTicks + unix*TicksPerSecond, true
}

// Ticks returns the instant as ticks since 0001-01-01 UTC
func (d DateTime) Ticks() int64 {
	return d.ticks
}

// WallTicks returns the ticks of the wall clock reading, the instant shifted by the offset
func (d DateTime) WallTicks() int64 {
	return d.ticks + d.offset.ticks
}

// Kind returns whether the value is unspecified, UTC or offset-bearing
func (d DateTime) Kind() Kind {
	return d.kind
}

// Offset returns the UTC offset and whether the value carries one. UTC values
// report a zero offset and true.
func (d DateTime) Offset() (TimeSpan, bool) {
	return d.offset, d.kind != Unspecified
}

// In returns the same instant presented at a fixed UTC offset.
// The offset must stay within ±24h and the wall clock within the supported years.
func (d DateTime) In(offset TimeSpan) (DateTime, error) {
	if offset.ticks <= -maxOffset || offset.ticks >= maxOffset {
		return DateTime{}, outOfRange("DateTime.In", "UTC offset %s out of range", offset.String())
	}
	wall := d.ticks + offset.ticks
	if wall < 0 || wall > MaxTicks {
		return DateTime{}, outOfRange("DateTime.In", "wall clock at offset %s leaves the supported years", offset.String())
	}
	return DateTime{ticks: d.ticks, offset: offset, kind: Local}, nil
}

// UTC returns the same instant presented in UTC
func (d DateTime) UTC() DateTime {
	return DateTime{ticks: d.ticks, kind: UTC}
}

// WithoutOffset drops the offset and reinterprets the wall clock as the instant
func (d DateTime) WithoutOffset() DateTime {
	return DateTime{ticks: d.WallTicks()}
}

// IsNull reports whether d is the zero DateTime, 0001-01-01 00:00:00
func (d DateTime) IsNull() bool {
	return d.ticks == 0
}

func (d DateTime) wallDays() int64 {
	return d.WallTicks() / TicksPerDay
}

func (d DateTime) wallTimeOfDay() int64 {
	return d.WallTicks() % TicksPerDay
}

// Date returns the calendar date of the wall clock
func (d DateTime) Date() (year, month, day int) {
	return calendar.FromEpochDays(d.wallDays())
}

// Year returns the year, 1..9999
func (d DateTime) Year() int {
	y, _, _ := d.Date()
	return y
}

// Month returns the month, 1..12
func (d DateTime) Month() int {
	_, m, _ := d.Date()
	return m
}

// Day returns the day of the month, 1..31
func (d DateTime) Day() int {
	_, _, day := d.Date()
	return day
}

// Hour returns the hour, 0..23
func (d DateTime) Hour() int {
	return int(d.wallTimeOfDay() / TicksPerHour)
}

// Minute returns the minute, 0..59
func (d DateTime) Minute() int {
	return int(d.wallTimeOfDay() / TicksPerMinute % 60)
}

// Second returns the second, 0..59
func (d DateTime) Second() int {
	return int(d.wallTimeOfDay() / TicksPerSecond % 60)
}

// Millisecond returns the millisecond, 0..999
func (d DateTime) Millisecond() int {
	return int(d.wallTimeOfDay() / TicksPerMillisecond % 1000)
}

// Microsecond returns the microsecond within the millisecond, 0..999
func (d DateTime) Microsecond() int {
	return int(d.wallTimeOfDay() / TicksPerMicrosecond % 1000)
}

// Nanosecond returns the nanosecond within the microsecond in steps of 100, 0..900
func (d DateTime) Nanosecond() int {
	return int(d.wallTimeOfDay() % TicksPerMicrosecond * NanosecondsPerTick)
}

// TimeOfDay returns the time elapsed since the wall clock's midnight
func (d DateTime) TimeOfDay() TimeSpan {
	return TimeSpan{d.wallTimeOfDay()}
}

// DayOfWeek returns the weekday of the wall clock date
func (d DateTime) DayOfWeek() Weekday {
	return calendar.DayOfWeek(d.wallDays())
}

// DayOfYear returns the ordinal of the wall clock date, 1..366
func (d DateTime) DayOfYear() int {
	y, m, day := d.Date()
	return calendar.DayOfYear(y, m, day)
}

// IsLeapYear reports whether the wall clock year is a leap year
func (d DateTime) IsLeapYear() bool {
	return calendar.IsLeapYear(d.Year())
}

// UnixTimeStamp returns the instant as whole seconds since 1970-01-01 UTC, rounded down
func (d DateTime) UnixTimeStamp() int64 {
	diff := d.ticks - UnixEpochTicks
	q := diff / TicksPerSecond
	if diff%TicksPerSecond < 0 {
		q--
	}
	return q
}

// Add returns d moved by span. The offset is kept.
func (d DateTime) Add(span TimeSpan) (DateTime, error) {
	return d.shift("DateTime.Add", span.ticks)
}

// Subtract returns d moved back by span
func (d DateTime) Subtract(span TimeSpan) (DateTime, error) {
	return d.shift("DateTime.Subtract", -span.ticks)
}

func (d DateTime) shift(op string, delta int64) (DateTime, error) {
	ticks, ok := addTicks(d.ticks, delta)
	if !ok || ticks < 0 || ticks > MaxTicks {
		return DateTime{}, overflowError(op, "result leaves the range 0001-01-01..9999-12-31")
	}
	wall := ticks + d.offset.ticks
	if wall < 0 || wall > MaxTicks {
		return DateTime{}, overflowError(op, "wall clock leaves the range 0001-01-01..9999-12-31")
	}
	return DateTime{ticks: ticks, offset: d.offset, kind: d.kind}, nil
}

// Sub returns the span from o to d
func (d DateTime) Sub(o DateTime) TimeSpan {
	return TimeSpan{d.ticks - o.ticks}
}

// Equal reports whether d and o describe the same instant
func (d DateTime) Equal(o DateTime) bool {
	return d.ticks == o.ticks
}

// Before reports whether d is earlier than o
func (d DateTime) Before(o DateTime) bool {
	return d.ticks < o.ticks
}

// After reports whether d is later than o
func (d DateTime) After(o DateTime) bool {
	return d.ticks > o.ticks
}

// Compare returns -1, 0 or +1 depending on whether d is before, at or after o
func (d DateTime) Compare(o DateTime) int {
	switch {
	case d.ticks < o.ticks:
		return -1
	case d.ticks > o.ticks:
		return 1
	default:
		return 0
	}
}

// Hash returns a hash of the instant. Equal values hash equally regardless of offset.
func (d DateTime) Hash() uint64 {
	return mix64(uint64(d.ticks))
}
