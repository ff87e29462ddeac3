// Package timex connects the chrono value types to the operating system and
// adds calendar utilities on top of them.
//
// Package: timex
// Title: Clocks and Calendar Utilities
// Description: Clock implementations for chrono, bridges to time.Time and
//              time.Duration, business day arithmetic, period boundaries,
//              age calculation and time ranges.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2025-01-26 v0.1.1: Enhanced documentation with comprehensive examples
// - 2026-10-19 v0.2.0: Rebuilt on chrono.DateTime, TimeSpan and Period
//
// # Clocks
//
// chrono never reads the system clock itself. The "now" constructors take a
// chrono.Clock, and timex provides the implementations:
//   - SystemClock: operating system time, offset of time.Local
//   - ZoneClock: operating system time, offset of a named IANA zone
//   - OffsetClock: any clock with a fixed offset
//   - FixedClock: a frozen instant, for tests and replays
//
// Example:
//
//	now, err := chrono.ExactNow(timex.SystemClock{})
//
//	berlin, err := timex.NewZoneClock("Europe/Berlin")
//	if err != nil {
//		return err
//	}
//	local, err := chrono.Now(berlin)
//
// Offsets are snapshots. A value built before a daylight saving switch keeps
// the offset it was built with.
//
// # Standard Library Bridges
//
// FromTime and ToTime convert between chrono.DateTime and time.Time. Values
// in time.UTC map to UTC values, values in any other location carry that
// location's offset at the instant. FromDuration drops nanoseconds below one
// tick, ToDuration fails with chrono.ErrOverflow beyond about 292 years.
//
// # Business Days
//
// IsBusinessDay, AddBusinessDays, NextBusinessDay, PrevBusinessDay and
// BusinessDaysBetween accept an optional BusinessDayConfig:
//
//	cfg := &timex.BusinessDayConfig{
//		WeekendDays: []chrono.Weekday{chrono.Friday, chrono.Saturday},
//		Holidays:    []chrono.DateTime{newYear},
//	}
//	due, err := timex.AddBusinessDays(start, 10, cfg)
//
// Only the wall clock date of a holiday counts.
//
// # Boundaries and Differences
//
// StartOfDay, EndOfDay, StartOfWeek, StartOfMonth, EndOfMonth, StartOfYear
// and EndOfYear move the wall clock and keep the offset. The end of a unit is
// its last tick, 23:59:59.9999999.
//
// Age, YearsBetween and MonthsBetween count completed calendar units between
// two dates through chrono.PeriodBetween. DaysBetween counts calendar days.
//
// # Time Ranges
//
// TimeRange pairs two instants and reports containment, overlap, elapsed
// time and the calendar period between them.
package timex
