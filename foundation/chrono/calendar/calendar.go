// File: calendar.go
// Title: Proleptic Gregorian Calendar Engine
// Description: Pure functions mapping (year, month, day) to a day count since
//              0001-01-01 and back, plus leap-year, month-length, day-of-year
//              and day-of-week derivations.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Unchecked day counts for the years next to the range

package calendar

import (
	"fmt"

	chronoerr "github.com/msto63/chrono/foundation/core/error"
)

const (
	// MinYear and MaxYear bound every date the engine accepts
	MinYear = 1
	MaxYear = 9999

	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461
	daysPerYear     = 365
)

// MaxEpochDays is the day count of 9999-12-31
const MaxEpochDays int64 = 3652058

// daysBefore[m] counts the days of a non-leap year before month m+1 begins.
// The last entry is the length of the year.
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// IsLeapYear reports whether year has a February 29th
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return daysPerYear + 1
	}
	return daysPerYear
}

// DaysInMonth returns the length of month in year, or 0 when month is not in 1..12
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysBefore[month] - daysBefore[month-1]
}

// DayOfYear returns the 1-based ordinal of the date within its year.
// The result is 0 when month is not in 1..12.
func DayOfYear(year, month, day int) int {
	if month < 1 || month > 12 {
		return 0
	}
	n := daysBefore[month-1] + day
	if month > 2 && IsLeapYear(year) {
		n++
	}
	return n
}

// MonthName returns the English name of month, or "" when month is not in 1..12
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// daysBeforeYear counts the days from 0001-01-01 to January 1st of year.
// Negative for year 0 and earlier.
func daysBeforeYear(year int) int64 {
	y := int64(year - 1)
	return y*daysPerYear + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400)
}

// EpochDays converts a calendar date into the number of days since 0001-01-01.
// Year 0 and earlier fail with ErrInvalidArgument, other invalid components
// with ErrOutOfRange.
func EpochDays(year, month, day int) (int64, error) {
	if year < MinYear {
		return 0, chronoerr.Conversion(ErrInvalidArgument, chronoerr.CodeInvalidArgument,
			fmt.Sprintf("year %d does not exist in the calendar", year)).
			WithOperation("EpochDays").
			WithInput(fmt.Sprint(year))
	}
	if err := ValidateDate(year, month, day); err != nil {
		return 0, err
	}
	return epochDays(year, month, day), nil
}

// epochDays is EpochDays without validation
func epochDays(year, month, day int) int64 {
	return daysBeforeYear(year) + int64(DayOfYear(year, month, day)-1)
}

// UncheckedEpochDays is EpochDays without validation. Years outside
// MinYear..MaxYear follow the proleptic rules, so year 0 yields negative
// counts and year 10000 counts beyond MaxEpochDays. It is the inverse of
// FromEpochDays for any valid month and day.
func UncheckedEpochDays(year, month, day int) int64 {
	return epochDays(year, month, day)
}

// FromEpochDays converts a day count since 0001-01-01 back into a calendar date.
// Counts outside 0..MaxEpochDays produce dates outside the supported years.
func FromEpochDays(days int64) (year, month, day int) {
	d := days

	n := floorDiv(d, daysPer400Years)
	y := 400 * n
	d -= daysPer400Years * n

	// The last 100-year cycle of a 400-year block has one day more, so the
	// 31st of December of year 400 divides to 4.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	n = d / daysPerYear
	n -= n >> 2
	y += n
	d -= daysPerYear * n

	year = int(y) + 1
	yday := int(d)

	leap := IsLeapYear(year)
	if leap {
		switch {
		case yday == 31+29-1:
			return year, 2, 29
		case yday > 31+29-1:
			yday--
		}
	}

	// Every month has at most 31 days, so the estimate is low by at most one.
	month = yday / 31
	if yday >= daysBefore[month+1] {
		month++
	}
	day = yday - daysBefore[month] + 1
	month++
	return year, month, day
}

// AddMonths moves year and month by delta months, normalising the month into 1..12
func AddMonths(year, month, delta int) (int, int) {
	m := month - 1 + delta
	year, m = norm(year, m, 12)
	return year, m + 1
}

// norm returns nhi, nlo such that hi*base + lo == nhi*base + nlo and 0 <= nlo < base
func norm(hi, lo, base int) (nhi, nlo int) {
	if lo < 0 {
		n := (-lo-1)/base + 1
		hi -= n
		lo += n * base
	}
	if lo >= base {
		n := lo / base
		hi += n
		lo -= n * base
	}
	return hi, lo
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
