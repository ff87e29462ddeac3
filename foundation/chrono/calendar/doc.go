// Package calendar implements the proleptic Gregorian calendar used by chrono.
//
// Package: calendar
// Title: Calendar Engine
// Description: Pure functions converting between calendar dates and a count of
//              days since 0001-01-01, with leap-year, month-length, day-of-year
//              and day-of-week derivations. The package is also the single
//              validation gate for date and time components: ValidateDate and
//              ValidateTime are called by every chrono constructor and parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// The calendar has no year zero: 0001-01-01 is day 0 and a Monday. Years are
// restricted to 1..9999.
//
// Usage:
//
//	days, err := calendar.EpochDays(2012, 2, 29)
//	if err != nil {
//		return err
//	}
//	calendar.DayOfWeek(days)      // Wednesday
//	calendar.FromEpochDays(days)  // 2012, 2, 29
//	calendar.DaysInMonth(2013, 2) // 28
package calendar
