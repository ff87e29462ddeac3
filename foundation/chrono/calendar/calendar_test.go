// File: calendar_test.go
// Title: Calendar Engine Tests
// Description: Tests for leap years, month lengths, day counts, weekdays and
//              the validation gate. The standard library calendar serves as an
//              independent oracle for the day count round trip.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package calendar

import (
	"errors"
	"testing"
	"time"

	chronoerr "github.com/msto63/chrono/foundation/core/error"
)

// days between 0001-01-01 and 1970-01-01
const unixEpochDays = 719162

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2012, true},
		{2013, false},
		{1900, false},
		{2000, true},
		{2100, false},
		{2400, true},
		{4, true},
		{1, false},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2012, 2, 29},
		{2013, 2, 28},
		{2013, 1, 31},
		{2013, 4, 30},
		{2013, 12, 31},
		{2013, 0, 0},
		{2013, 13, 0},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}

	if DaysInYear(2012) != 366 || DaysInYear(2013) != 365 {
		t.Error("DaysInYear() mismatch")
	}
}

func TestDayOfYear(t *testing.T) {
	tests := []struct {
		year, month, day, want int
	}{
		{2012, 2, 29, 60},
		{2012, 3, 1, 61},
		{2013, 3, 1, 60},
		{2013, 12, 31, 365},
		{2012, 12, 31, 366},
		{2012, 1, 1, 1},
		{2012, 13, 1, 0},
	}

	for _, tt := range tests {
		if got := DayOfYear(tt.year, tt.month, tt.day); got != tt.want {
			t.Errorf("DayOfYear(%d, %d, %d) = %d, want %d", tt.year, tt.month, tt.day, got, tt.want)
		}
	}
}

func TestEpochDays(t *testing.T) {
	tests := []struct {
		year, month, day int
		want             int64
	}{
		{1, 1, 1, 0},
		{1, 1, 2, 1},
		{2, 1, 1, 365},
		{1970, 1, 1, unixEpochDays},
		{9999, 12, 31, MaxEpochDays},
	}

	for _, tt := range tests {
		got, err := EpochDays(tt.year, tt.month, tt.day)
		if err != nil {
			t.Errorf("EpochDays(%d, %d, %d) error = %v", tt.year, tt.month, tt.day, err)
			continue
		}
		if got != tt.want {
			t.Errorf("EpochDays(%d, %d, %d) = %d, want %d", tt.year, tt.month, tt.day, got, tt.want)
		}
	}
}

func TestMaxEpochDays(t *testing.T) {
	if got := daysBeforeYear(MaxYear+1) - 1; got != MaxEpochDays {
		t.Errorf("MaxEpochDays = %d, want %d", MaxEpochDays, got)
	}
}

func TestUncheckedEpochDays(t *testing.T) {
	tests := []struct {
		year, month, day int
		want             int64
	}{
		{0, 1, 1, -366},
		{0, 2, 29, -307},
		{0, 12, 31, -1},
		{1, 1, 1, 0},
		{9999, 12, 31, MaxEpochDays},
		{10000, 1, 1, MaxEpochDays + 1},
		{10000, 1, 31, MaxEpochDays + 31},
	}

	for _, tt := range tests {
		got := UncheckedEpochDays(tt.year, tt.month, tt.day)
		if got != tt.want {
			t.Errorf("UncheckedEpochDays(%d, %d, %d) = %d, want %d", tt.year, tt.month, tt.day, got, tt.want)
		}
		y, m, d := FromEpochDays(got)
		if y != tt.year || m != tt.month || d != tt.day {
			t.Errorf("FromEpochDays(%d) = %d-%d-%d, want %d-%d-%d", got, y, m, d, tt.year, tt.month, tt.day)
		}
	}
}

func TestEpochDaysErrors(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		want             error
		code             chronoerr.Code
	}{
		{"year zero", 0, 1, 1, ErrInvalidArgument, chronoerr.CodeInvalidArgument},
		{"negative year", -5, 1, 1, ErrInvalidArgument, chronoerr.CodeInvalidArgument},
		{"year too large", 10000, 1, 1, ErrOutOfRange, chronoerr.CodeValueOutOfRange},
		{"month 15", 2012, 15, 1, ErrOutOfRange, chronoerr.CodeValueOutOfRange},
		{"feb 29 2013", 2013, 2, 29, ErrOutOfRange, chronoerr.CodeValueOutOfRange},
		{"april 31", 2012, 4, 31, ErrOutOfRange, chronoerr.CodeValueOutOfRange},
		{"day zero", 2012, 4, 0, ErrOutOfRange, chronoerr.CodeValueOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EpochDays(tt.year, tt.month, tt.day)
			if !errors.Is(err, tt.want) {
				t.Fatalf("EpochDays() error = %v, want %v", err, tt.want)
			}
			if !chronoerr.HasCode(err, tt.code) {
				t.Errorf("code = %v, want %v", chronoerr.GetCode(err), tt.code)
			}
			if !chronoerr.IsConversion(err) {
				t.Error("IsConversion() = false")
			}
		})
	}
}

func TestFromEpochDaysMatchesStandardLibrary(t *testing.T) {
	for days := int64(0); days <= MaxEpochDays; days += 37 {
		y, m, d := FromEpochDays(days)
		ref := time.Unix((days-unixEpochDays)*86400, 0).UTC()

		if y != ref.Year() || m != int(ref.Month()) || d != ref.Day() {
			t.Fatalf("FromEpochDays(%d) = %04d-%02d-%02d, want %s", days, y, m, d, ref.Format("2006-01-02"))
		}
		back, err := EpochDays(y, m, d)
		if err != nil || back != days {
			t.Fatalf("EpochDays(%d, %d, %d) = %d, %v, want %d", y, m, d, back, err, days)
		}
		if got, want := DayOfWeek(days), fromStdWeekday(ref.Weekday()); got != want {
			t.Fatalf("DayOfWeek(%d) = %v, want %v", days, got, want)
		}
	}
}

func TestFromEpochDaysBoundaries(t *testing.T) {
	tests := []struct {
		year, month, day int
	}{
		{2012, 2, 28},
		{2012, 2, 29},
		{2012, 3, 1},
		{2000, 12, 31},
		{2001, 1, 1},
		{1600, 12, 31},
		{400, 12, 31},
		{9999, 12, 31},
	}

	for _, tt := range tests {
		days, err := EpochDays(tt.year, tt.month, tt.day)
		if err != nil {
			t.Fatalf("EpochDays() error = %v", err)
		}
		y, m, d := FromEpochDays(days)
		if y != tt.year || m != tt.month || d != tt.day {
			t.Errorf("FromEpochDays(%d) = %d-%d-%d, want %d-%d-%d", days, y, m, d, tt.year, tt.month, tt.day)
		}
	}
}

func TestDayOfWeek(t *testing.T) {
	days, _ := EpochDays(2012, 2, 29)
	if got := DayOfWeek(days); got != Wednesday {
		t.Errorf("DayOfWeek(2012-02-29) = %v, want Wednesday", got)
	}
	if got := DayOfWeek(0); got != Monday {
		t.Errorf("DayOfWeek(0) = %v, want Monday", got)
	}
	if got := DayOfWeek(-1); got != Sunday {
		t.Errorf("DayOfWeek(-1) = %v, want Sunday", got)
	}
}

func TestWeekdayNames(t *testing.T) {
	if Wednesday.String() != "Wednesday" || Wednesday.Short() != "Wed" {
		t.Errorf("Wednesday = %q / %q", Wednesday.String(), Wednesday.Short())
	}
	if Weekday(9).String() != "%!Weekday(9)" {
		t.Errorf("String() = %q", Weekday(9).String())
	}

	tests := []struct {
		in   string
		want Weekday
		ok   bool
	}{
		{"Tue", Tuesday, true},
		{"tuesday", Tuesday, true},
		{"SUN", Sunday, true},
		{"Tues", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseWeekday(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseWeekday(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMonthName(t *testing.T) {
	if MonthName(2) != "February" || MonthName(12) != "December" || MonthName(0) != "" {
		t.Error("MonthName() mismatch")
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		year, month, delta int
		wantY, wantM       int
	}{
		{2017, 7, 5, 2017, 12},
		{2017, 7, 6, 2018, 1},
		{2017, 1, -1, 2016, 12},
		{2017, 1, -25, 2014, 12},
		{1994, 7, 281, 2017, 12},
	}

	for _, tt := range tests {
		y, m := AddMonths(tt.year, tt.month, tt.delta)
		if y != tt.wantY || m != tt.wantM {
			t.Errorf("AddMonths(%d, %d, %d) = %d, %d, want %d, %d", tt.year, tt.month, tt.delta, y, m, tt.wantY, tt.wantM)
		}
	}
}

func TestValidateTime(t *testing.T) {
	tests := []struct {
		name                 string
		hour, minute, second int
		ms                   float64
		field                string
	}{
		{"valid", 15, 34, 20, 33.0, ""},
		{"upper bounds", 23, 59, 59, 999.9999, ""},
		{"minute 61", 15, 61, 20, 33.0, "minute"},
		{"second 61", 15, 34, 61, 33.0, "second"},
		{"hour 61", 61, 34, 20, 33.0, "hour"},
		{"ms 2000", 15, 34, 20, 2000.0, "millisecond"},
		{"negative ms", 15, 34, 20, -1, "millisecond"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTime(tt.hour, tt.minute, tt.second, tt.ms)
			if tt.field == "" {
				if err != nil {
					t.Errorf("ValidateTime() error = %v", err)
				}
				return
			}
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("ValidateTime() error = %v, want ErrOutOfRange", err)
			}
			var ce *chronoerr.Error
			if !errors.As(err, &ce) || ce.Details()["field"] != tt.field {
				t.Errorf("field = %v, want %s", ce.Details()["field"], tt.field)
			}
			if ce.Operation() != "ValidateTime" {
				t.Errorf("Operation() = %q", ce.Operation())
			}
		})
	}
}

func fromStdWeekday(w time.Weekday) Weekday {
	return Weekday((int(w) + 6) % 7)
}
