// File: weekday.go
// Title: Day of Week
// Description: Weekday enumeration starting on Monday with fixed English names.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package calendar

import (
	"strconv"
	"strings"
)

// Weekday specifies a day of the week, Monday first
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// epochWeekday is the day of week of 0001-01-01
const epochWeekday = Monday

// DayOfWeek returns the weekday of a day count since 0001-01-01
func DayOfWeek(epochDays int64) Weekday {
	r := (epochDays + int64(epochWeekday)) % 7
	if r < 0 {
		r += 7
	}
	return Weekday(r)
}

// String returns the English name of the day, e.g. "Wednesday"
func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "%!Weekday(" + strconv.Itoa(int(d)) + ")"
	}
	return weekdayNames[d]
}

// Short returns the three letter abbreviation of the day, e.g. "Wed"
func (d Weekday) Short() string {
	if d < Monday || d > Sunday {
		return "???"
	}
	return weekdayNames[d][:3]
}

// ParseWeekday accepts a full or abbreviated English day name, ignoring case
func ParseWeekday(s string) (Weekday, bool) {
	for i, name := range weekdayNames {
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return Weekday(i), true
		}
	}
	return 0, false
}
