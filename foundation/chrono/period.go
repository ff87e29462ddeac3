// File: period.go
// Title: Period
// Description: Calendar-relative interval of years, months and days between
//              two DateTimes. The decomposition follows the real month lengths
//              so that adding the period back to its start reproduces the end.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Offset-bearing values at the edges of the range

package chrono

import (
	"github.com/msto63/chrono/foundation/chrono/calendar"
)

// Period is a calendar-relative interval. All components share one sign.
// The remainder holds the part below one day that is left when the two
// instants have different times of day.
type Period struct {
	years     int
	months    int
	days      int
	remainder TimeSpan
	start     DateTime
}

// NewPeriod returns a period of whole years, months and days. Mixed signs are
// rejected with ErrInvalidArgument.
func NewPeriod(years, months, days int) (Period, error) {
	if !sameSign(int64(years), int64(months), int64(days)) {
		return Period{}, invalidArgument("NewPeriod", "components %d, %d, %d do not share a sign", years, months, days)
	}
	return Period{years: years, months: months, days: days}, nil
}

// PeriodBetween returns the period from begin to end. end is read at begin's
// offset. Whole months are counted first, then whole days; the result is
// negative when end lies before begin.
func PeriodBetween(begin, end DateTime) Period {
	b := begin.WallTicks()
	// At begin's offset the wall clock of end may lie up to a day outside
	// the range, in year 0 or year 10000.
	e := end.ticks + begin.offset.ticks

	by, bm, bd := calendar.FromEpochDays(b / TicksPerDay)
	ey, em, _ := calendar.FromEpochDays(floorDay(e))
	tod := b % TicksPerDay

	var months int
	var rest int64
	if e >= b {
		months = (ey-by)*12 + (em - bm)
		for months > 0 && monthAnchor(by, bm, bd, tod, months) > e {
			months--
		}
		rest = e - monthAnchor(by, bm, bd, tod, months)
	} else {
		months = (by-ey)*12 + (bm - em)
		for months > 0 && monthAnchor(by, bm, bd, tod, -months) < e {
			months--
		}
		months = -months
		rest = e - monthAnchor(by, bm, bd, tod, months)
	}

	return Period{
		years:     months / 12,
		months:    months % 12,
		days:      int(rest / TicksPerDay),
		remainder: TimeSpan{rest % TicksPerDay},
		start:     begin,
	}
}

// floorDay returns the day of a wall tick count, rounding toward minus infinity
func floorDay(ticks int64) int64 {
	days := ticks / TicksPerDay
	if ticks%TicksPerDay < 0 {
		days--
	}
	return days
}

// monthAnchor returns the wall ticks of day bd, clamped to the month length,
// delta months after (by, bm), at time of day tod. Target months in year 0
// and year 10000 are counted like any other.
func monthAnchor(by, bm, bd int, tod int64, delta int) int64 {
	y, m := calendar.AddMonths(by, bm, delta)
	d := bd
	if n := calendar.DaysInMonth(y, m); d > n {
		d = n
	}
	return calendar.UncheckedEpochDays(y, m, d)*TicksPerDay + tod
}

// AddPeriod returns d moved by p. Years and months are applied first with the
// day of month clamped to the target month, then days and the remainder.
// For any a, b: a.AddPeriod(PeriodBetween(a, b)) equals b. Only the resulting
// instant has to lie within the range; when its wall clock at d's offset
// does not, the result is returned in UTC.
func (d DateTime) AddPeriod(p Period) (DateTime, error) {
	const op = "DateTime.AddPeriod"

	wall := d.WallTicks()
	by, bm, bd := calendar.FromEpochDays(wall / TicksPerDay)
	tod := wall % TicksPerDay

	total := int64(p.years)*12 + int64(p.months)
	if total > 12*calendar.MaxYear || total < -12*calendar.MaxYear {
		return DateTime{}, outOfRange(op, "adding %d months leaves the supported years", total)
	}
	if y, _ := calendar.AddMonths(by, bm, int(total)); y < calendar.MinYear-1 || y > calendar.MaxYear+1 {
		return DateTime{}, outOfRange(op, "year %d out of range %d..%d", y, calendar.MinYear, calendar.MaxYear)
	}
	anchor := monthAnchor(by, bm, bd, tod, int(total))

	days, ok := mulTicks(int64(p.days), TicksPerDay)
	if !ok {
		return DateTime{}, overflowError(op, "%d days exceed the tick range", p.days)
	}
	delta, ok := addTicks(days, p.remainder.ticks)
	if !ok {
		return DateTime{}, overflowError(op, "period exceeds the tick range")
	}
	wall, ok = addTicks(anchor, delta)
	if !ok {
		return DateTime{}, outOfRange(op, "result leaves the range 0001-01-01..9999-12-31")
	}

	ticks := wall - d.offset.ticks
	if ticks < 0 || ticks > MaxTicks {
		return DateTime{}, outOfRange(op, "result leaves the range 0001-01-01..9999-12-31")
	}
	if wall < 0 || wall > MaxTicks {
		return DateTime{ticks: ticks, kind: UTC}, nil
	}
	return DateTime{ticks: ticks, offset: d.offset, kind: d.kind}, nil
}

// Years returns the whole years
func (p Period) Years() int { return p.years }

// Months returns the whole months beyond the years, -11..11
func (p Period) Months() int { return p.months }

// Days returns the whole days beyond the months
func (p Period) Days() int { return p.days }

// Remainder returns the part below one day
func (p Period) Remainder() TimeSpan { return p.remainder }

// Start returns the DateTime the period was measured from, or the zero
// DateTime for periods built from components or text.
func (p Period) Start() DateTime { return p.start }

// End returns Start moved by the period
func (p Period) End() (DateTime, error) {
	return p.start.AddPeriod(p)
}

// WithStart returns p anchored at start
func (p Period) WithStart(start DateTime) Period {
	p.start = start
	return p
}

// IsZero reports whether every component is zero
func (p Period) IsZero() bool {
	return p.years == 0 && p.months == 0 && p.days == 0 && p.remainder.ticks == 0
}

// IsNegative reports whether the period runs backwards
func (p Period) IsNegative() bool {
	return p.years < 0 || p.months < 0 || p.days < 0 || p.remainder.ticks < 0
}

// Negate flips the sign of every component
func (p Period) Negate() Period {
	return Period{
		years:     -p.years,
		months:    -p.months,
		days:      -p.days,
		remainder: p.remainder.Neg(),
		start:     p.start,
	}
}

// Equal compares the components; the start is ignored
func (p Period) Equal(o Period) bool {
	return p.years == o.years && p.months == o.months && p.days == o.days && p.remainder == o.remainder
}

func sameSign(values ...int64) bool {
	pos, neg := false, false
	for _, v := range values {
		pos = pos || v > 0
		neg = neg || v < 0
	}
	return !(pos && neg)
}
