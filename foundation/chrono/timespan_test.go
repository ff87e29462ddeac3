// File: timespan_test.go
// Title: TimeSpan Tests
// Description: Tests for TimeSpan construction, checked arithmetic,
//              component decomposition, formatting and parsing.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19

package chrono

import (
	"errors"
	"math"
	"testing"
)

func TestTimeSpanConstructors(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) (TimeSpan, error)
		in   float64
		want int64
	}{
		{"FromDays", FromDays, 1.5, 36 * TicksPerHour},
		{"FromHours", FromHours, 7.0925, 7*TicksPerHour + 5*TicksPerMinute + 33*TicksPerSecond},
		{"FromMinutes", FromMinutes, -2.5, -150 * TicksPerSecond},
		{"FromSeconds", FromSeconds, 2.5, 25 * TicksPerSecond / 10},
		{"FromMilliseconds", FromMilliseconds, 0.3, 3000},
		{"FromMicroseconds", FromMicroseconds, 0.5, 5},
		{"FromMicroseconds rounds", FromMicroseconds, 0.04, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.in)
			if err != nil {
				t.Fatalf("%s(%g) error = %v", tt.name, tt.in, err)
			}
			if got.TotalTicks() != tt.want {
				t.Errorf("%s(%g) = %d ticks, want %d", tt.name, tt.in, got.TotalTicks(), tt.want)
			}
		})
	}

	if _, err := FromDays(math.NaN()); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("FromDays(NaN) error = %v, want %v", err, ErrInvalidArgument)
	}
	if _, err := FromDays(1e300); !errors.Is(err, ErrOverflow) {
		t.Errorf("FromDays(1e300) error = %v, want %v", err, ErrOverflow)
	}
	if _, err := FromSeconds(math.Inf(-1)); !errors.Is(err, ErrOverflow) {
		t.Errorf("FromSeconds(-Inf) error = %v, want %v", err, ErrOverflow)
	}
}

func TestFromTicks(t *testing.T) {
	if got := FromTicks(math.MinInt64); got != MinTimeSpan {
		t.Errorf("FromTicks(MinInt64) = %d, want %d", got.TotalTicks(), MinTimeSpan.TotalTicks())
	}
	if got := FromTicks(42).TotalTicks(); got != 42 {
		t.Errorf("FromTicks(42) = %d, want 42", got)
	}
}

func TestTimeSpanComponents(t *testing.T) {
	ticks := 1*TicksPerDay + 2*TicksPerHour + 3*TicksPerMinute + 4*TicksPerSecond +
		5*TicksPerMillisecond + 6*TicksPerMicrosecond + 7

	for _, sign := range []int64{1, -1} {
		s := FromTicks(sign * ticks)
		n := int(sign)
		got := []int{s.Days(), s.Hours(), s.Minutes(), s.Seconds(), s.Milliseconds(), s.Microseconds(), s.Nanoseconds()}
		want := []int{1 * n, 2 * n, 3 * n, 4 * n, 5 * n, 6 * n, 700 * n}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("components of %v = %v, want %v", s, got, want)
				break
			}
		}
	}

	s := Must(FromHours(36))
	if s.TotalDays() != 1.5 || s.TotalHours() != 36 || s.TotalMinutes() != 2160 {
		t.Errorf("totals of 36h = %g d, %g h, %g min", s.TotalDays(), s.TotalHours(), s.TotalMinutes())
	}
	if got := Must(FromMilliseconds(1.5)).TotalMicroseconds(); got != 1500 {
		t.Errorf("TotalMicroseconds() = %g, want 1500", got)
	}
}

func TestTimeSpanArithmetic(t *testing.T) {
	a := Must(FromSeconds(90))
	b := Must(FromSeconds(30))

	if got := Must(a.Add(b)); got != Must(FromMinutes(2)) {
		t.Errorf("Add() = %v, want 00:02:00", got)
	}
	if got := Must(b.Sub(a)); got != Must(FromMinutes(-1)) {
		t.Errorf("Sub() = %v, want -00:01:00", got)
	}
	if got := a.Neg(); got.TotalTicks() != -a.TotalTicks() {
		t.Errorf("Neg() = %v", got)
	}
	if got := a.Neg().Abs(); got != a {
		t.Errorf("Abs() = %v, want %v", got, a)
	}
	if got := Must(a.Mul(2)); got != Must(FromMinutes(3)) {
		t.Errorf("Mul(2) = %v, want 00:03:00", got)
	}
	if got := Must(a.Mul(0.5)); got != Must(FromSeconds(45)) {
		t.Errorf("Mul(0.5) = %v, want 00:00:45", got)
	}
	if got := Must(a.Div(4)); got != Must(FromSeconds(22.5)) {
		t.Errorf("Div(4) = %v, want 00:00:22.500", got)
	}

	if _, err := MaxTimeSpan.Add(FromTicks(1)); !errors.Is(err, ErrOverflow) {
		t.Errorf("MaxTimeSpan.Add() error = %v, want %v", err, ErrOverflow)
	}
	if _, err := MinTimeSpan.Sub(FromTicks(1)); !errors.Is(err, ErrOverflow) {
		t.Errorf("MinTimeSpan.Sub() error = %v, want %v", err, ErrOverflow)
	}
	if _, err := MaxTimeSpan.Mul(2); !errors.Is(err, ErrOverflow) {
		t.Errorf("MaxTimeSpan.Mul(2) error = %v, want %v", err, ErrOverflow)
	}
	if _, err := a.Div(0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Div(0) error = %v, want %v", err, ErrInvalidArgument)
	}
	if _, err := a.Mul(math.NaN()); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Mul(NaN) error = %v, want %v", err, ErrInvalidArgument)
	}
}

func TestTimeSpanComparison(t *testing.T) {
	a := Must(FromSeconds(1))
	b := Must(FromMilliseconds(1000))
	c := Must(FromSeconds(-1))

	if !a.Equal(b) || a.Compare(b) != 0 {
		t.Error("1 s and 1000 ms are not equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("Hash() differs for equal spans")
	}
	if c.Compare(a) != -1 || a.Compare(c) != 1 {
		t.Errorf("Compare() = %d, %d, want -1, 1", c.Compare(a), a.Compare(c))
	}
	if !c.IsNegative() || a.IsNegative() {
		t.Error("IsNegative() mismatch")
	}
	if !(TimeSpan{}).IsZero() {
		t.Error("zero value IsZero() = false")
	}

	set := map[TimeSpan]bool{a: true, b: true, c: true}
	if len(set) != 2 {
		t.Errorf("map holds %d spans, want 2", len(set))
	}
}

func TestTimeSpanFormat(t *testing.T) {
	precise := FromTicks(159850776)
	measured := Must(ParseTimeSpan("2:34:53:2.5"))

	tests := []struct {
		name        string
		span        TimeSpan
		format      TimeSpanFormat
		fullSeconds bool
		want        string
	}{
		{"normal", Must(FromSeconds(25530)), SpanNormal, false, "07:05:30"},
		{"normal fraction", precise, SpanNormal, false, "00:00:15.9850776"},
		{"normal milliseconds", Must(FromSeconds(2.5)), SpanNormal, false, "00:00:02.500"},
		{"normal microseconds", Must(FromMicroseconds(2500)), SpanNormal, false, "00:00:00.002500"},
		{"normal full seconds", Must(FromSeconds(2.5)), SpanNormal, true, "00:00:02"},
		{"normal negative", Must(FromSeconds(-5)), SpanNormal, false, "-00:00:05"},
		{"normal beyond a day", Must(FromHours(25)), SpanNormal, false, "25:00:00"},
		{"normal zero", TimeSpan{}, SpanNormal, false, "00:00:00"},
		{"measures", measured, SpanWithMeasures, false, "3 d 10 h 53 min 2 s 500 ms"},
		{"measures full seconds", measured, SpanWithMeasures, true, "3 d 10 h 53 min 2 s"},
		{"measures negative", Must(FromSeconds(-5)), SpanWithMeasures, false, "-5 s"},
		{"measures mixed", Must(FromSeconds(-1.5)), SpanWithMeasures, false, "-1 s -500 ms"},
		{"measures zero", TimeSpan{}, SpanWithMeasures, false, "0 s"},
		{"measures below a second", Must(FromSeconds(0.5)), SpanWithMeasures, true, "0 s"},
		{"measures microseconds", Must(FromMilliseconds(0.5)), SpanWithMeasures, false, "5e+02 µs"},
		{"measures nanoseconds", FromTicks(5), SpanWithMeasures, false, "500 ns"},
		{"measures negative nanoseconds", FromTicks(-3), SpanWithMeasures, false, "-300 ns"},
		{"total seconds", precise, SpanTotalSeconds, false, "15.9850776"},
		{"total seconds whole", Must(FromDays(1)), SpanTotalSeconds, false, "86400"},
		{"total seconds truncated", precise, SpanTotalSeconds, true, "15"},
		{"total seconds negative", Must(FromSeconds(-2.5)), SpanTotalSeconds, false, "-2.5"},
		{"total seconds all digits", FromTicks(1234567891234567), SpanTotalSeconds, false, "123456789.1234567"},
		{"total seconds one tick", FromTicks(-1), SpanTotalSeconds, false, "-0.0000001"},
		{"total seconds truncated to zero", FromTicks(-1), SpanTotalSeconds, true, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Format(tt.format, tt.fullSeconds); got != tt.want {
				t.Errorf("Format(%v, %v) = %q, want %q", tt.format, tt.fullSeconds, got, tt.want)
			}
		})
	}

	if got := precise.String(); got != "00:00:15.9850776" {
		t.Errorf("String() = %q, want %q", got, "00:00:15.9850776")
	}
}

func TestParseTimeSpan(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"   ", 0},
		{"15.985077682", 159850776},
		{"15", 15 * TicksPerSecond},
		{".5", 5 * TicksPerSecond / 10},
		{"+5", 5 * TicksPerSecond},
		{"-15.5", -155 * TicksPerSecond / 10},
		{"1e3", 1000 * TicksPerSecond},
		{"1:30", 90 * TicksPerSecond},
		{"1:00:00", TicksPerHour},
		{"-1:30", -90 * TicksPerSecond},
		{"07:05:30", 7*TicksPerHour + 5*TicksPerMinute + 30*TicksPerSecond},
		{"2:34:53:2.5", 3*TicksPerDay + 10*TicksPerHour + 53*TicksPerMinute + 25*TicksPerSecond/10},
		{"0:1.5:0", 90 * TicksPerSecond},
		{"3 d 10 h 53 min 2 s 500 ms", 3*TicksPerDay + 10*TicksPerHour + 53*TicksPerMinute + 25*TicksPerSecond/10},
		{"5e+02 µs", 500 * TicksPerMicrosecond},
		{"500 us", 500 * TicksPerMicrosecond},
		{"500 ns", 5},
		{"-5 s", -5 * TicksPerSecond},
		{"-1 s -500 ms", -15 * TicksPerSecond / 10},
		{"1 s -500 ms", 5 * TicksPerSecond / 10},
		{"0 s", 0},
		{"2.5 h", 150 * TicksPerMinute},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeSpan(tt.in)
			if err != nil {
				t.Fatalf("ParseTimeSpan(%q) error = %v", tt.in, err)
			}
			if got.TotalTicks() != tt.want {
				t.Errorf("ParseTimeSpan(%q) = %d ticks, want %d", tt.in, got.TotalTicks(), tt.want)
			}
		})
	}
}

func TestParseTimeSpanInvalid(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"1:2:3:4:5", ErrInvalidFormat},
		{"1:x", ErrInvalidFormat},
		{"1::2", ErrInvalidFormat},
		{"1e3:5", ErrInvalidFormat},
		{"- 5", ErrInvalidFormat},
		{"1:-5", ErrInvalidFormat},
		{"1.2.3", ErrInvalidFormat},
		{"5 fortnights", ErrInvalidFormat},
		{"5 s 3 s", ErrInvalidFormat},
		{"5 s 3", ErrInvalidFormat},
		{"s 5", ErrInvalidFormat},
		{"99999999999999999999", ErrOverflow},
		{"99999999999 d", ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseTimeSpan(tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseTimeSpan(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestTimeSpanRoundTrip(t *testing.T) {
	spans := []TimeSpan{
		{},
		FromTicks(1),
		FromTicks(-159850776),
		Must(FromSeconds(2.5)),
		Must(ParseTimeSpan("2:34:53:2.5")),
		Must(FromDays(-400)),
		FromTicks(123456789012345),
		Must(ParseTimeSpan("123456789.1234567")),
	}

	for _, s := range spans {
		for _, f := range []TimeSpanFormat{SpanNormal, SpanWithMeasures, SpanTotalSeconds} {
			text := s.Format(f, false)
			back, err := ParseTimeSpan(text)
			if err != nil {
				t.Errorf("ParseTimeSpan(%q) error = %v", text, err)
				continue
			}
			if back != s {
				t.Errorf("ParseTimeSpan(%q) = %d ticks, want %d", text, back.TotalTicks(), s.TotalTicks())
			}
		}
	}
}

func TestTotalSecondsRoundTrip(t *testing.T) {
	for _, s := range []TimeSpan{FromTicks(MaxTicks), FromTicks(-MaxTicks), FromTicks(1), FromTicks(-10)} {
		text := s.Format(SpanTotalSeconds, false)
		back, err := ParseTimeSpan(text)
		if err != nil {
			t.Errorf("ParseTimeSpan(%q) error = %v", text, err)
			continue
		}
		if back != s {
			t.Errorf("ParseTimeSpan(%q) = %d ticks, want %d", text, back.TotalTicks(), s.TotalTicks())
		}
	}
}

func TestParseTimeSpanFormat(t *testing.T) {
	for _, f := range []TimeSpanFormat{SpanNormal, SpanWithMeasures, SpanTotalSeconds} {
		got, err := ParseTimeSpanFormat(f.String())
		if err != nil || got != f {
			t.Errorf("ParseTimeSpanFormat(%q) = %v, %v, want %v", f.String(), got, err, f)
		}
	}
	if _, err := ParseTimeSpanFormat("fancy"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("ParseTimeSpanFormat(fancy) error = %v, want %v", err, ErrInvalidFormat)
	}
}
