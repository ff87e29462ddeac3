// File: isoperiod.go
// Title: ISO-8601 Period Codec
// Description: Converts Period to and from ISO-8601 durations such as
//              "P23Y4M14DT2H30M1.5S" using rickb777/period for the text form
//              and govalues/decimal for the exact fields.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Whole periods built without the decimal path

package chrono

import (
	"github.com/govalues/decimal"
	"github.com/rickb777/period"
)

// String returns the period as an ISO-8601 duration. The zero period is "P0D",
// negative periods start with '-'.
func (p Period) String() string {
	return p.iso().String()
}

// Describe returns the period in words, for example "23 years, 4 months, 14 days"
func (p Period) Describe() string {
	return p.iso().Format()
}

func (p Period) iso() period.Period {
	rest := p.remainder.ticks
	hours := int(rest / TicksPerHour)
	minutes := int(rest / TicksPerMinute % 60)
	seconds := rest % TicksPerMinute

	if seconds%TicksPerSecond == 0 {
		return period.New(p.years, p.months, 0, p.days, hours, minutes, int(seconds/TicksPerSecond))
	}
	// Seconds are the least significant field, the only one allowed a fraction.
	return period.MustNewDecimal(
		decimal.MustNew(int64(p.years), 0),
		decimal.MustNew(int64(p.months), 0),
		decimal.MustNew(0, 0),
		decimal.MustNew(int64(p.days), 0),
		decimal.MustNew(int64(hours), 0),
		decimal.MustNew(int64(minutes), 0),
		decimal.MustNew(seconds, 7),
	)
}

// ParseISOPeriod reads an ISO-8601 duration. Years, months, weeks and days
// must be whole numbers; weeks count as seven days. Hours, minutes and
// seconds may carry a fraction and end up in the remainder, truncated to
// whole ticks. All fields must share one sign.
func ParseISOPeriod(text string) (Period, error) {
	const op = "ParseISOPeriod"

	iso, err := period.Parse(text)
	if err != nil {
		return Period{}, invalidFormat(op, text, "%v", err)
	}

	ymd := []decimal.Decimal{iso.YearsDecimal(), iso.MonthsDecimal(), iso.DaysIncWeeksDecimal()}
	for _, v := range ymd {
		if !v.IsInt() {
			return Period{}, invalidFormat(op, text, "years, months, weeks and days must be whole numbers")
		}
	}

	hms := []struct {
		value        decimal.Decimal
		ticksPerUnit int64
	}{
		{iso.HoursDecimal(), TicksPerHour},
		{iso.MinutesDecimal(), TicksPerMinute},
		{iso.SecondsDecimal(), TicksPerSecond},
	}
	var rest int64
	for _, f := range hms {
		r, ok := parseRat(f.value.String())
		if !ok {
			return Period{}, invalidFormat(op, text, "field %s is not a number", f.value)
		}
		t, ok := ratTicks(r, f.ticksPerUnit)
		if !ok {
			return Period{}, overflowError(op, "%q exceeds the tick range", text)
		}
		if rest, ok = addTicks(rest, t); !ok {
			return Period{}, overflowError(op, "%q exceeds the tick range", text)
		}
	}

	years, months, days := iso.Years(), iso.Months(), iso.DaysIncWeeks()
	if !sameSign(int64(years), int64(months), int64(days), rest) {
		return Period{}, invalidFormat(op, text, "fields do not share a sign")
	}
	return Period{years: years, months: months, days: days, remainder: TimeSpan{rest}}, nil
}
