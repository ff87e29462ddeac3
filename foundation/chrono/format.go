// File: format.go
// Title: Text Formatting
// Description: Named output formats for DateTime and TimeSpan. Every format
//              written here is accepted again by the parsers in parse.go.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Exact total seconds rendering

package chrono

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/msto63/chrono/foundation/chrono/calendar"
)

// DateTimeFormat names a DateTime text layout
type DateTimeFormat int

const (
	// DateAndTime is "2012-02-29 15:34:20.033"
	DateAndTime DateTimeFormat = iota
	// DateOnly is "2012-02-29"
	DateOnly
	// TimeOnly is "15:34:20.033"
	TimeOnly
	// DateTimeAndWeekday is "Wednesday 2012-02-29 15:34:20.033"
	DateTimeAndWeekday
	// DateTimeAndShortWeekday is "Wed 2012-02-29 15:34:20.033"
	DateTimeAndShortWeekday
	// Iso is "2012-02-29T15:34:20.033", followed by Z or the offset when known
	Iso
)

var dateTimeFormatNames = map[DateTimeFormat]string{
	DateAndTime:             "date-and-time",
	DateOnly:                "date",
	TimeOnly:                "time",
	DateTimeAndWeekday:      "weekday",
	DateTimeAndShortWeekday: "short-weekday",
	Iso:                     "iso",
}

// String returns the configuration name of the format
func (f DateTimeFormat) String() string {
	if name, ok := dateTimeFormatNames[f]; ok {
		return name
	}
	return "DateTimeFormat(" + strconv.Itoa(int(f)) + ")"
}

// ParseDateTimeFormat returns the format with the given configuration name
func ParseDateTimeFormat(name string) (DateTimeFormat, error) {
	for f, n := range dateTimeFormatNames {
		if strings.EqualFold(n, name) {
			return f, nil
		}
	}
	return DateAndTime, invalidFormat("ParseDateTimeFormat", name, "unknown date format %q", name)
}

// FormatOption adjusts Format output
type FormatOption func(*formatOptions)

type formatOptions struct {
	noFraction bool
	withOffset bool
}

// NoMilliseconds drops the fractional second
func NoMilliseconds() FormatOption {
	return func(o *formatOptions) { o.noFraction = true }
}

// WithOffset appends " Z" or " ±HH:MM" to values that carry an offset.
// Iso always includes it.
func WithOffset() FormatOption {
	return func(o *formatOptions) { o.withOffset = true }
}

// Format renders the wall clock of d in layout f
func (d DateTime) Format(f DateTimeFormat, opts ...FormatOption) string {
	var o formatOptions
	for _, opt := range opts {
		opt(&o)
	}

	var b strings.Builder
	switch f {
	case DateOnly:
		d.writeDate(&b)
	case TimeOnly:
		d.writeTime(&b, o.noFraction)
	case DateTimeAndWeekday:
		b.WriteString(d.DayOfWeek().String())
		b.WriteByte(' ')
		d.writeDate(&b)
		b.WriteByte(' ')
		d.writeTime(&b, o.noFraction)
	case DateTimeAndShortWeekday:
		b.WriteString(d.DayOfWeek().Short())
		b.WriteByte(' ')
		d.writeDate(&b)
		b.WriteByte(' ')
		d.writeTime(&b, o.noFraction)
	case Iso:
		d.writeDate(&b)
		b.WriteByte('T')
		d.writeTime(&b, o.noFraction)
		d.writeIsoOffset(&b)
		return b.String()
	default:
		d.writeDate(&b)
		b.WriteByte(' ')
		d.writeTime(&b, o.noFraction)
	}

	if o.withOffset {
		switch d.kind {
		case UTC:
			b.WriteString(" Z")
		case Local:
			b.WriteByte(' ')
			b.WriteString(formatOffset(d.offset))
		}
	}
	return b.String()
}

// String returns d in DateAndTime format
func (d DateTime) String() string {
	return d.Format(DateAndTime)
}

// IsoString returns d in ISO-8601 extended format. UTC values end in Z,
// offset-bearing values in ±HH:MM and unspecified values carry no suffix.
func (d DateTime) IsoString() string {
	return d.Format(Iso)
}

// IsoStringWithOffset renders the instant at the given offset, for example
// "2017-08-23T19:40:15.985+02:00". Offsets beyond ±24h fall back to UTC.
func (d DateTime) IsoStringWithOffset(offset TimeSpan) string {
	at, err := d.In(offset)
	if err != nil {
		return d.UTC().IsoString()
	}
	return at.IsoString()
}

func (d DateTime) writeDate(b *strings.Builder) {
	y, m, day := calendar.FromEpochDays(d.wallDays())
	fmt.Fprintf(b, "%04d-%02d-%02d", y, m, day)
}

func (d DateTime) writeTime(b *strings.Builder, noFraction bool) {
	tod := d.wallTimeOfDay()
	fmt.Fprintf(b, "%02d:%02d:%02d",
		tod/TicksPerHour, tod/TicksPerMinute%60, tod/TicksPerSecond%60)
	if !noFraction {
		writeFraction(b, tod%TicksPerSecond)
	}
}

func (d DateTime) writeIsoOffset(b *strings.Builder) {
	switch d.kind {
	case UTC:
		b.WriteByte('Z')
	case Local:
		b.WriteString(formatOffset(d.offset))
	}
}

// writeFraction appends ".mmm", then "uuu" and a single hundred-nanosecond
// digit only when they are not zero. Nothing is written for whole seconds.
func writeFraction(b *strings.Builder, ticks int64) {
	if ticks == 0 {
		return
	}
	ms := ticks / TicksPerMillisecond
	us := ticks / TicksPerMicrosecond % 1000
	hundreds := ticks % TicksPerMicrosecond
	fmt.Fprintf(b, ".%03d", ms)
	if us != 0 || hundreds != 0 {
		fmt.Fprintf(b, "%03d", us)
		if hundreds != 0 {
			b.WriteByte(byte('0' + hundreds))
		}
	}
}

// formatOffset renders an offset as ±HH:MM; seconds are dropped
func formatOffset(offset TimeSpan) string {
	sign := byte('+')
	t := offset.ticks
	if t < 0 {
		sign, t = '-', -t
	}
	return fmt.Sprintf("%c%02d:%02d", sign, t/TicksPerHour, t/TicksPerMinute%60)
}

// TimeSpanFormat names a TimeSpan text layout
type TimeSpanFormat int

const (
	// SpanNormal is "[-]HH:MM:SS.fff", hours unbounded
	SpanNormal TimeSpanFormat = iota
	// SpanWithMeasures is "3 d 10 h 53 min 2 s 500 ms"
	SpanWithMeasures
	// SpanTotalSeconds is the signed number of seconds, "15.9850776"
	SpanTotalSeconds
)

var timeSpanFormatNames = map[TimeSpanFormat]string{
	SpanNormal:       "normal",
	SpanWithMeasures: "measures",
	SpanTotalSeconds: "seconds",
}

// String returns the configuration name of the format
func (f TimeSpanFormat) String() string {
	if name, ok := timeSpanFormatNames[f]; ok {
		return name
	}
	return "TimeSpanFormat(" + strconv.Itoa(int(f)) + ")"
}

// ParseTimeSpanFormat returns the format with the given configuration name
func ParseTimeSpanFormat(name string) (TimeSpanFormat, error) {
	for f, n := range timeSpanFormatNames {
		if strings.EqualFold(n, name) {
			return f, nil
		}
	}
	return SpanNormal, invalidFormat("ParseTimeSpanFormat", name, "unknown span format %q", name)
}

// String returns s in SpanNormal format
func (s TimeSpan) String() string {
	return s.Format(SpanNormal, false)
}

// Format renders s in layout f. fullSeconds drops everything below one second.
func (s TimeSpan) Format(f TimeSpanFormat, fullSeconds bool) string {
	switch f {
	case SpanWithMeasures:
		return s.formatMeasures(fullSeconds)
	case SpanTotalSeconds:
		return s.formatTotalSeconds(fullSeconds)
	default:
		return s.formatNormal(fullSeconds)
	}
}

// formatTotalSeconds writes the seconds exactly from the tick count, with up
// to seven fractional digits and trailing zeros trimmed
func (s TimeSpan) formatTotalSeconds(fullSeconds bool) string {
	const perSecond = uint64(TicksPerSecond)

	t := uint64(s.ticks)
	if s.ticks < 0 {
		t = -t
	}
	whole, frac := t/perSecond, t%perSecond
	if fullSeconds {
		frac = 0
	}

	var b strings.Builder
	if s.ticks < 0 && (whole != 0 || frac != 0) {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatUint(whole, 10))
	if frac != 0 {
		b.WriteByte('.')
		b.WriteString(strings.TrimRight(fmt.Sprintf("%07d", frac), "0"))
	}
	return b.String()
}

func (s TimeSpan) formatNormal(fullSeconds bool) string {
	var b strings.Builder
	t := s.ticks
	if t < 0 {
		b.WriteByte('-')
		t = -t
	}
	fmt.Fprintf(&b, "%02d:%02d:%02d", t/TicksPerHour, t/TicksPerMinute%60, t/TicksPerSecond%60)
	if !fullSeconds {
		writeFraction(&b, t%TicksPerSecond)
	}
	return b.String()
}

func (s TimeSpan) formatMeasures(fullSeconds bool) string {
	if s.ticks == 0 {
		return "0 s"
	}
	if !fullSeconds && s.Abs().ticks < TicksPerMillisecond {
		if s.Abs().ticks >= TicksPerMicrosecond {
			return strconv.FormatFloat(s.TotalMicroseconds(), 'g', 2, 64) + " µs"
		}
		return strconv.Itoa(s.Nanoseconds()) + " ns"
	}

	type measure struct {
		value int
		unit  string
	}
	measures := []measure{
		{s.Days(), "d"},
		{s.Hours(), "h"},
		{s.Minutes(), "min"},
		{s.Seconds(), "s"},
	}
	if !fullSeconds {
		measures = append(measures,
			measure{s.Milliseconds(), "ms"},
			measure{s.Microseconds(), "µs"},
			measure{s.Nanoseconds(), "ns"})
	}

	parts := make([]string, 0, len(measures))
	for _, m := range measures {
		if m.value != 0 {
			parts = append(parts, strconv.Itoa(m.value)+" "+m.unit)
		}
	}
	if len(parts) == 0 {
		return "0 s"
	}
	return strings.Join(parts, " ")
}
