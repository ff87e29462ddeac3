// Package chrono provides calendar date-time values, elapsed durations and
// calendar-relative periods with 100 ns resolution.
//
// Package: chrono
// Title: Date, Time and Duration Values
// Description: DateTime is an instant between 0001-01-01 and 9999-12-31
//              optionally carrying a fixed UTC offset, TimeSpan a signed
//              duration and Period a span of years, months and days. All
//              three are immutable values with checked arithmetic and
//              round-trip text forms.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Ticks:
//
// Every value counts ticks of 100 ns. DateTime counts them since
// 0001-01-01 00:00:00 UTC in the proleptic Gregorian calendar, TimeSpan
// counts them as a signed length. Calendar rules live in the calendar
// subpackage.
//
// Errors:
//
// Failures are reported as *error.Error values of category "conversion"
// wrapping one of ErrOutOfRange, ErrInvalidFormat, ErrOverflow or
// ErrInvalidArgument:
//
//	_, err := chrono.FromDate(2013, 2, 29)
//	errors.Is(err, chrono.ErrOutOfRange) // true
//
// Clock:
//
// The package never reads the system clock itself. Now, ExactNow, GmtNow,
// ExactGmtNow and FromTimeStamp take a Clock; utils/timex provides one backed
// by the operating system and a fixed one for tests.
//
// Usage:
//
//	d, _ := chrono.FromDateAndTime(2012, 2, 29, 15, 34, 20, 33)
//	d.Format(chrono.DateTimeAndShortWeekday) // Wed 2012-02-29 15:34:20.033
//
//	span, _ := chrono.ParseTimeSpan("2:34:53:2.5")
//	span.Format(chrono.SpanWithMeasures, false) // 3 d 10 h 53 min 2 s 500 ms
//
//	p := chrono.PeriodBetween(begin, end)
//	p.String() // P23Y4M14D
package chrono
