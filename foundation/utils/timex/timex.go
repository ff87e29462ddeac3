// File: timex.go
// Title: Calendar Utilities
// Description: Business day arithmetic, boundaries of days, weeks, months and
//              years, age and difference helpers, and time ranges on top of
//              the chrono value types.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2025-07-26 v0.1.1: Added FormatDurationCompact function, fixed business day logic
// - 2026-10-19 v0.2.0: Rebuilt on chrono.DateTime, TimeSpan and Period

package timex

import (
	"fmt"

	"github.com/msto63/chrono/foundation/chrono"
	"github.com/msto63/chrono/foundation/chrono/calendar"
	chronoerr "github.com/msto63/chrono/foundation/core/error"
)

var oneDay = chrono.FromTicks(chrono.TicksPerDay)

// BusinessDayConfig holds configuration for business day calculations
type BusinessDayConfig struct {
	// Weekend days (default: Saturday, Sunday)
	WeekendDays []chrono.Weekday
	// Holidays; only the calendar date counts
	Holidays []chrono.DateTime
	// Custom holiday checker function
	IsHoliday func(chrono.DateTime) bool
}

// DefaultBusinessDayConfig returns a default business day configuration
func DefaultBusinessDayConfig() *BusinessDayConfig {
	return &BusinessDayConfig{
		WeekendDays: []chrono.Weekday{chrono.Saturday, chrono.Sunday},
	}
}

func pickConfig(config []*BusinessDayConfig) (*BusinessDayConfig, *chronoerr.Error) {
	cfg := DefaultBusinessDayConfig()
	if len(config) > 0 && config[0] != nil {
		cfg = config[0]
	}

	weekend := make(map[chrono.Weekday]bool, len(cfg.WeekendDays))
	for _, wd := range cfg.WeekendDays {
		weekend[wd] = true
	}
	if len(weekend) >= 7 {
		return nil, chronoerr.Conversion(chrono.ErrInvalidArgument, chronoerr.CodeInvalidArgument,
			"every weekday is configured as weekend")
	}
	return cfg, nil
}

// ===============================
// Business Day Functions
// ===============================

// IsBusinessDay reports whether the wall clock date of d is a business day
func IsBusinessDay(d chrono.DateTime, config ...*BusinessDayConfig) bool {
	cfg := DefaultBusinessDayConfig()
	if len(config) > 0 && config[0] != nil {
		cfg = config[0]
	}

	weekday := d.DayOfWeek()
	for _, wd := range cfg.WeekendDays {
		if weekday == wd {
			return false
		}
	}

	y, m, day := d.Date()
	for _, holiday := range cfg.Holidays {
		hy, hm, hd := holiday.Date()
		if y == hy && m == hm && day == hd {
			return false
		}
	}

	if cfg.IsHoliday != nil && cfg.IsHoliday(d) {
		return false
	}

	return true
}

// IsWeekend reports whether d falls on Saturday or Sunday
func IsWeekend(d chrono.DateTime) bool {
	wd := d.DayOfWeek()
	return wd == chrono.Saturday || wd == chrono.Sunday
}

// NextBusinessDay returns the next business day after d at the same time of day
func NextBusinessDay(d chrono.DateTime, config ...*BusinessDayConfig) (chrono.DateTime, error) {
	return AddBusinessDays(d, 1, config...)
}

// PrevBusinessDay returns the previous business day before d at the same time of day
func PrevBusinessDay(d chrono.DateTime, config ...*BusinessDayConfig) (chrono.DateTime, error) {
	return AddBusinessDays(d, -1, config...)
}

// AddBusinessDays moves d by the given number of business days. Non business
// days in between are skipped.
func AddBusinessDays(d chrono.DateTime, days int, config ...*BusinessDayConfig) (chrono.DateTime, error) {
	cfg, err := pickConfig(config)
	if err != nil {
		return chrono.DateTime{}, err.WithOperation("AddBusinessDays")
	}

	step := oneDay
	remaining := days
	if days < 0 {
		step = oneDay.Neg()
		remaining = -days
	}

	result := d
	for remaining > 0 {
		if result, err = addStep(result, step); err != nil {
			return chrono.DateTime{}, err.WithOperation("AddBusinessDays")
		}
		if IsBusinessDay(result, cfg) {
			remaining--
		}
	}
	return result, nil
}

func addStep(d chrono.DateTime, step chrono.TimeSpan) (chrono.DateTime, *chronoerr.Error) {
	next, err := d.Add(step)
	if err != nil {
		return chrono.DateTime{}, chronoerr.Wrap(err, "stepping one day")
	}
	return next, nil
}

// BusinessDaysBetween counts the business days from start to end, both
// included. The result is negative when end lies before start.
func BusinessDaysBetween(start, end chrono.DateTime, config ...*BusinessDayConfig) int {
	if start.After(end) {
		return -BusinessDaysBetween(end, start, config...)
	}

	first, last := dateOf(start), dateOf(end)
	count := 0
	for current := first; !current.After(last); {
		if IsBusinessDay(current, config...) {
			count++
		}
		next, err := current.Add(oneDay)
		if err != nil {
			break
		}
		current = next
	}
	return count
}

// ===============================
// Time Manipulation Functions
// ===============================

// moveWall returns d with its wall clock set to the given date and time of
// day. Offset and kind are kept.
func moveWall(d chrono.DateTime, year, month, day int, timeOfDay int64) (chrono.DateTime, error) {
	target, err := chrono.FromDate(year, month, day)
	if err != nil {
		return chrono.DateTime{}, err
	}
	return d.Add(chrono.FromTicks(target.Ticks() + timeOfDay - d.WallTicks()))
}

// StartOfDay returns 00:00:00 of d's day
func StartOfDay(d chrono.DateTime) (chrono.DateTime, error) {
	y, m, day := d.Date()
	return moveWall(d, y, m, day, 0)
}

// EndOfDay returns 23:59:59.9999999 of d's day
func EndOfDay(d chrono.DateTime) (chrono.DateTime, error) {
	y, m, day := d.Date()
	return moveWall(d, y, m, day, chrono.TicksPerDay-1)
}

// StartOfWeek returns Monday 00:00:00 of d's week
func StartOfWeek(d chrono.DateTime) (chrono.DateTime, error) {
	back := chrono.FromTicks(-int64(d.DayOfWeek()) * chrono.TicksPerDay)
	monday, err := d.Add(back)
	if err != nil {
		return chrono.DateTime{}, err
	}
	return StartOfDay(monday)
}

// StartOfMonth returns the first of d's month at 00:00:00
func StartOfMonth(d chrono.DateTime) (chrono.DateTime, error) {
	return moveWall(d, d.Year(), d.Month(), 1, 0)
}

// EndOfMonth returns the last day of d's month at 23:59:59.9999999
func EndOfMonth(d chrono.DateTime) (chrono.DateTime, error) {
	y, m := d.Year(), d.Month()
	return moveWall(d, y, m, calendar.DaysInMonth(y, m), chrono.TicksPerDay-1)
}

// StartOfYear returns January 1st of d's year at 00:00:00
func StartOfYear(d chrono.DateTime) (chrono.DateTime, error) {
	return moveWall(d, d.Year(), 1, 1, 0)
}

// EndOfYear returns December 31st of d's year at 23:59:59.9999999
func EndOfYear(d chrono.DateTime) (chrono.DateTime, error) {
	return moveWall(d, d.Year(), 12, 31, chrono.TicksPerDay-1)
}

// ===============================
// Age and Date Difference Functions
// ===============================

// dateOf returns the wall clock date of d as an unspecified midnight
func dateOf(d chrono.DateTime) chrono.DateTime {
	y, m, day := d.Date()
	date, _ := chrono.FromDate(y, m, day)
	return date
}

// Age returns the completed years from birth to reference, comparing dates
// only. A February 29 birthday is completed on February 28 in common years.
func Age(birth, reference chrono.DateTime) int {
	return chrono.PeriodBetween(dateOf(birth), dateOf(reference)).Years()
}

// YearsBetween returns the completed years from start to end, negative when
// end lies before start
func YearsBetween(start, end chrono.DateTime) int {
	return Age(start, end)
}

// MonthsBetween returns the completed months from start to end
func MonthsBetween(start, end chrono.DateTime) int {
	p := chrono.PeriodBetween(dateOf(start), dateOf(end))
	return p.Years()*12 + p.Months()
}

// DaysBetween returns the number of calendar days from start to end
func DaysBetween(start, end chrono.DateTime) int {
	return dateOf(end).Sub(dateOf(start)).Days()
}

// ===============================
// Time Ranges
// ===============================

// TimeRange represents a time range with start and end instants
type TimeRange struct {
	Start chrono.DateTime
	End   chrono.DateTime
}

// Duration returns the elapsed time of the range
func (tr TimeRange) Duration() chrono.TimeSpan {
	return tr.End.Sub(tr.Start)
}

// Period returns the calendar period of the range
func (tr TimeRange) Period() chrono.Period {
	return chrono.PeriodBetween(tr.Start, tr.End)
}

// Contains checks if d is within the range, bounds included
func (tr TimeRange) Contains(d chrono.DateTime) bool {
	return !d.Before(tr.Start) && !d.After(tr.End)
}

// Overlaps checks if this range overlaps with another range
func (tr TimeRange) Overlaps(other TimeRange) bool {
	return !tr.Start.After(other.End) && !other.Start.After(tr.End)
}

// String returns a string representation of the time range
func (tr TimeRange) String() string {
	return fmt.Sprintf("%s - %s", tr.Start.Format(chrono.DateAndTime, chrono.NoMilliseconds()),
		tr.End.Format(chrono.DateAndTime, chrono.NoMilliseconds()))
}
