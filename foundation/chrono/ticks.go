// File: ticks.go
// Title: Tick Arithmetic Core
// Description: Conversion constants between ticks (100 ns units) and larger
//              units, plus checked arithmetic and exact decimal scaling used by
//              every value type and parser in the package.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package chrono

import (
	"math"
	"math/big"

	"github.com/msto63/chrono/foundation/chrono/calendar"
)

// Unit conversion factors. A tick is 100 nanoseconds.
const (
	NanosecondsPerTick  int64 = 100
	TicksPerMicrosecond int64 = 10
	TicksPerMillisecond       = 1000 * TicksPerMicrosecond
	TicksPerSecond            = 1000 * TicksPerMillisecond
	TicksPerMinute            = 60 * TicksPerSecond
	TicksPerHour              = 60 * TicksPerMinute
	TicksPerDay               = 24 * TicksPerHour
)

const (
	// MaxTicks is the instant 9999-12-31 23:59:59.9999999
	MaxTicks int64 = (calendar.MaxEpochDays+1)*TicksPerDay - 1

	// UnixEpochTicks is the instant 1970-01-01 00:00:00
	UnixEpochTicks int64 = 719162 * TicksPerDay
)

// maxFloatTicks is 2^63, the first float64 that does not fit into int64
const maxFloatTicks = float64(1 << 63)

// addTicks adds two tick counts and reports whether the result is representable.
// math.MinInt64 counts as unrepresentable so that negation is always safe.
func addTicks(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) || s == math.MinInt64 {
		return 0, false
	}
	return s, true
}

// mulTicks multiplies a tick count by an integer factor
func mulTicks(a, factor int64) (int64, bool) {
	if a == 0 || factor == 0 {
		return 0, true
	}
	p := a * factor
	if p/factor != a || p == math.MinInt64 {
		return 0, false
	}
	return p, true
}

// ticksFromFloat scales value by ticksPerUnit and rounds to the nearest tick.
// Rounding absorbs binary representation error such as 0.3*1e7.
func ticksFromFloat(op string, value float64, ticksPerUnit int64) (int64, error) {
	if math.IsNaN(value) {
		return 0, invalidArgument(op, "NaN is not a valid amount of time")
	}
	x := math.Round(value * float64(ticksPerUnit))
	if x >= maxFloatTicks || x <= -maxFloatTicks {
		return 0, overflowError(op, "%g exceeds the tick range", value)
	}
	return int64(x), nil
}

// isDecimal reports whether s matches digits[.digits] or .digits, with at least one digit
func isDecimal(s string) bool {
	digits, dots := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return digits > 0
}

// isScientific reports whether s matches [+-]decimal[(e|E)[+-]digits]
func isScientific(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	mantissa, exponent := s, ""
	for i := 0; i < len(s); i++ {
		if s[i] == 'e' || s[i] == 'E' {
			mantissa, exponent = s[:i], s[i+1:]
			if exponent == "" {
				return false
			}
			if exponent[0] == '+' || exponent[0] == '-' {
				exponent = exponent[1:]
			}
			if exponent == "" {
				return false
			}
			break
		}
	}
	if !isDecimal(mantissa) {
		return false
	}
	if len(exponent) > 3 {
		return false
	}
	for i := 0; i < len(exponent); i++ {
		if exponent[i] < '0' || exponent[i] > '9' {
			return false
		}
	}
	return true
}

// parseRat converts validated decimal text into an exact rational
func parseRat(s string) (*big.Rat, bool) {
	if len(s) > 64 {
		return nil, false
	}
	r, ok := new(big.Rat).SetString(s)
	return r, ok
}

// ratTicks scales r by ticksPerUnit and truncates toward zero. Digits finer
// than one tick are discarded.
func ratTicks(r *big.Rat, ticksPerUnit int64) (int64, bool) {
	scaled := new(big.Rat).Mul(r, new(big.Rat).SetInt64(ticksPerUnit))
	q := new(big.Int).Quo(scaled.Num(), scaled.Denom())
	if !q.IsInt64() || q.Int64() == math.MinInt64 {
		return 0, false
	}
	return q.Int64(), true
}
