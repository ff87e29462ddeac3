// File: format_test.go
// Title: DateTime Text Tests
// Description: Tests for the DateTime output formats and the generic and
//              ISO-8601 parsers, including offsets and round trips.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package chrono

import (
	"errors"
	"testing"
)

func TestDateTimeFormat(t *testing.T) {
	d := Must(FromDateAndTime(2012, 2, 29, 15, 34, 20, 33))

	tests := []struct {
		name   string
		d      DateTime
		format DateTimeFormat
		opts   []FormatOption
		want   string
	}{
		{"date and time", d, DateAndTime, nil, "2012-02-29 15:34:20.033"},
		{"date", d, DateOnly, nil, "2012-02-29"},
		{"time", d, TimeOnly, nil, "15:34:20.033"},
		{"weekday", d, DateTimeAndWeekday, nil, "Wednesday 2012-02-29 15:34:20.033"},
		{"short weekday", d, DateTimeAndShortWeekday, nil, "Wed 2012-02-29 15:34:20.033"},
		{"iso", d, Iso, nil, "2012-02-29T15:34:20.033"},
		{"no milliseconds", d, DateAndTime, []FormatOption{NoMilliseconds()}, "2012-02-29 15:34:20"},
		{"iso no milliseconds", d, Iso, []FormatOption{NoMilliseconds()}, "2012-02-29T15:34:20"},
		{"offset on unspecified", d, DateAndTime, []FormatOption{WithOffset()}, "2012-02-29 15:34:20.033"},
		{"offset on utc", d.UTC(), DateAndTime, []FormatOption{WithOffset()}, "2012-02-29 15:34:20.033 Z"},
		{"offset on local", Must(d.In(Must(FromHours(2)))), DateAndTime, []FormatOption{WithOffset()}, "2012-02-29 17:34:20.033 +02:00"},
		{"offset on short weekday", Must(d.In(Must(FromMinutes(-330)))), DateTimeAndShortWeekday,
			[]FormatOption{WithOffset(), NoMilliseconds()}, "Wed 2012-02-29 10:04:20 -05:30"},
		{"iso utc", d.UTC(), Iso, nil, "2012-02-29T15:34:20.033Z"},
		{"iso local", Must(d.In(Must(FromHours(2)))), Iso, nil, "2012-02-29T17:34:20.033+02:00"},
		{"zero offset", Must(d.In(TimeSpan{})), Iso, nil, "2012-02-29T15:34:20.033+00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Format(tt.format, tt.opts...); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestIsoStringWithOffset(t *testing.T) {
	d := Must(FromIsoString("2017-08-23T17:40:15.985Z"))

	if got := d.IsoStringWithOffset(Must(FromHours(2))); got != "2017-08-23T19:40:15.985+02:00" {
		t.Errorf("IsoStringWithOffset(2h) = %q, want %q", got, "2017-08-23T19:40:15.985+02:00")
	}
	if got := d.IsoStringWithOffset(Must(FromHours(30))); got != "2017-08-23T17:40:15.985Z" {
		t.Errorf("IsoStringWithOffset(30h) = %q, want %q", got, "2017-08-23T17:40:15.985Z")
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		in         string
		want       string
		kind       Kind
		offsetMins int64
	}{
		{"Wed 2012-02-29 15:34:20.033", "2012-02-29 15:34:20.033", Unspecified, 0},
		{"Wednesday 2012-02-29 15:34:20.033", "2012-02-29 15:34:20.033", Unspecified, 0},
		{"wed 2012-02-29 15:34:20", "2012-02-29 15:34:20", Unspecified, 0},
		{"2012-02-29", "2012-02-29 00:00:00", Unspecified, 0},
		{"2012-2-9 5:04", "2012-02-09 05:04:00", Unspecified, 0},
		{"2012-02-29T15:34:20", "2012-02-29 15:34:20", Unspecified, 0},
		{"  2012-02-29 15:34  ", "2012-02-29 15:34:00", Unspecified, 0},
		{"2012-02-29 15:34:20.985077682", "2012-02-29 15:34:20.9850776", Unspecified, 0},
		{"2012-02-29 15:34:20 Z", "2012-02-29 15:34:20", UTC, 0},
		{"2012-02-29 15:34:20.033 +02:00", "2012-02-29 15:34:20.033", Local, 120},
		{"2012-02-29 15:34:20-0530", "2012-02-29 15:34:20", Local, -330},
		{"2012-02-29 +01:00", "2012-02-29 00:00:00", Local, 60},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := FromString(tt.in)
			if err != nil {
				t.Fatalf("FromString(%q) error = %v", tt.in, err)
			}
			if got := d.String(); got != tt.want {
				t.Errorf("FromString(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if d.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", d.Kind(), tt.kind)
			}
			off, _ := d.Offset()
			if off.TotalTicks() != tt.offsetMins*TicksPerMinute {
				t.Errorf("Offset() = %v, want %d minutes", off, tt.offsetMins)
			}
			if d.Ticks() != d.WallTicks()-tt.offsetMins*TicksPerMinute {
				t.Errorf("instant %d does not match wall %d at the offset", d.Ticks(), d.WallTicks())
			}
		})
	}
}

func TestFromStringInvalid(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrInvalidFormat},
		{"Thu 2012-02-29 15:34:20", ErrInvalidFormat},
		{"Wedn 2012-02-29", ErrInvalidFormat},
		{"Wed2012-02-29", ErrInvalidFormat},
		{"12-02-29", ErrInvalidFormat},
		{"2012/02/29", ErrInvalidFormat},
		{"2012-02-29 15", ErrInvalidFormat},
		{"2012-02-29 15:34:20:01", ErrInvalidFormat},
		{"2012-02-29 15:34:6x", ErrInvalidFormat},
		{"2012-02-29 15:34:20.", ErrInvalidFormat},
		{"2012-02-29 15:34:20 UTC", ErrInvalidFormat},
		{"2012-02-29 15:34:20 +2", ErrInvalidFormat},
		{"2012-02-30", ErrOutOfRange},
		{"2013-02-29 10:00", ErrOutOfRange},
		{"2012-13-01", ErrOutOfRange},
		{"0000-01-01", ErrOutOfRange},
		{"2012-02-29 24:00", ErrOutOfRange},
		{"2012-02-29 15:60", ErrOutOfRange},
		{"2012-02-29 15:34:60", ErrOutOfRange},
		{"2012-02-29 15:34 +24:00", ErrOutOfRange},
		{"0001-01-01 00:30 +01:00", ErrOutOfRange},
		{"9999-12-31 23:30 -01:00", ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := FromString(tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("FromString(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestFromIsoString(t *testing.T) {
	d, err := FromIsoString("2017-08-23T19:40:15.985077682+02:00")
	if err != nil {
		t.Fatalf("FromIsoString() error = %v", err)
	}
	if got := d.IsoString(); got != "2017-08-23T19:40:15.9850776+02:00" {
		t.Errorf("IsoString() = %q, want %q", got, "2017-08-23T19:40:15.9850776+02:00")
	}
	if got := d.UTC().IsoString(); got != "2017-08-23T17:40:15.9850776Z" {
		t.Errorf("UTC().IsoString() = %q, want %q", got, "2017-08-23T17:40:15.9850776Z")
	}
	if off, ok := d.Offset(); !ok || off != Must(FromHours(2)) {
		t.Errorf("Offset() = %v, %v, want 02:00:00, true", off, ok)
	}

	tests := []struct {
		in   string
		want string
		kind Kind
	}{
		{"2017-08-23T19:40:15Z", "2017-08-23T19:40:15Z", UTC},
		{"2017-08-23T19:40:15", "2017-08-23T19:40:15", Unspecified},
		{"2017-08-23T19:40", "2017-08-23T19:40:00", Unspecified},
		{"2017-08-23", "2017-08-23T00:00:00", Unspecified},
		{"2017-08-23T19:40:15+0530", "2017-08-23T19:40:15+05:30", Local},
		{"2017-08-23T19:40:15-03", "2017-08-23T19:40:15-03:00", Local},
		{"2017-08-23T19:40:15.5-00:00", "2017-08-23T19:40:15.500+00:00", Local},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := FromIsoString(tt.in)
			if err != nil {
				t.Fatalf("FromIsoString(%q) error = %v", tt.in, err)
			}
			if got := d.IsoString(); got != tt.want {
				t.Errorf("FromIsoString(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if d.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", d.Kind(), tt.kind)
			}
		})
	}
}

func TestFromIsoStringInvalid(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"2017-08-23 19:40:15", ErrInvalidFormat},
		{"2017-8-23", ErrInvalidFormat},
		{"Wed 2017-08-23", ErrInvalidFormat},
		{"2017-08-23T19", ErrInvalidFormat},
		{"2017-08-23T19:40:15 +02:00", ErrInvalidFormat},
		{"2017-08-23T19:40:15+2", ErrInvalidFormat},
		{"2017-08-32", ErrOutOfRange},
		{"2017-08-23T19:40:15+24:00", ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := FromIsoString(tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("FromIsoString(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestDateTimeRoundTrip(t *testing.T) {
	base := Must(FromDateAndTime(2017, 8, 23, 19, 40, 15, 985.0776))
	values := []DateTime{
		base,
		base.UTC(),
		Must(base.In(Must(FromHours(2)))),
		Must(base.In(Must(FromMinutes(-330)))),
		{},
		Must(FromTicksSinceEpoch(MaxTicks)),
	}
	formats := []DateTimeFormat{DateAndTime, DateTimeAndWeekday, DateTimeAndShortWeekday, Iso}

	for _, d := range values {
		for _, f := range formats {
			text := d.Format(f, WithOffset())
			back, err := FromString(text)
			if err != nil {
				t.Errorf("FromString(%q) error = %v", text, err)
				continue
			}
			if !back.Equal(d) || back.Kind() != d.Kind() || back.WallTicks() != d.WallTicks() {
				t.Errorf("FromString(%q) = %q, want %q", text, back.Format(f, WithOffset()), text)
			}
		}

		iso := d.IsoString()
		back, err := FromIsoString(iso)
		if err != nil {
			t.Errorf("FromIsoString(%q) error = %v", iso, err)
			continue
		}
		if back.IsoString() != iso || !back.Equal(d) {
			t.Errorf("FromIsoString(%q) = %q", iso, back.IsoString())
		}
	}
}

func TestParseDateTimeFormat(t *testing.T) {
	for _, f := range []DateTimeFormat{DateAndTime, DateOnly, TimeOnly, DateTimeAndWeekday, DateTimeAndShortWeekday, Iso} {
		got, err := ParseDateTimeFormat(f.String())
		if err != nil || got != f {
			t.Errorf("ParseDateTimeFormat(%q) = %v, %v, want %v", f.String(), got, err, f)
		}
	}
	if _, err := ParseDateTimeFormat("rfc2822"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("ParseDateTimeFormat(rfc2822) error = %v, want %v", err, ErrInvalidFormat)
	}
}
