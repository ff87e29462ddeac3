// File: parse.go
// Title: Text Parsing
// Description: Parsers for the generic and ISO-8601 DateTime forms and for the
//              compact, bare-seconds and measured TimeSpan forms. Digits finer
//              than one tick are discarded.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package chrono

import (
	"math/big"
	"strings"
	"unicode"

	"github.com/msto63/chrono/foundation/chrono/calendar"
)

// dateTimeSyntax selects the variations a DateTime grammar accepts
type dateTimeSyntax struct {
	op           string
	weekday      bool // optional "Www " or "Weekday " prefix
	spaceBetween bool // ' ' may separate date and time
	shortFields  bool // month, day, hour, minute and second may have one digit
	offsetSpace  bool // a space may precede the offset
}

var (
	genericSyntax = dateTimeSyntax{op: "FromString", weekday: true, spaceBetween: true, shortFields: true, offsetSpace: true}
	isoSyntax     = dateTimeSyntax{op: "FromIsoString"}
)

// FromString parses the generic form
//
//	[Www ]YYYY-MM-DD[( |T)HH:MM[:SS[.fffffff]]][ Z| ±HH:MM]
//
// as written by Format. A weekday prefix must match the date.
func FromString(text string) (DateTime, error) {
	return parseDateTime(text, genericSyntax)
}

// FromIsoString parses ISO-8601 extended format
//
//	YYYY-MM-DD[THH:MM[:SS[.fffffff]]][Z|±HH[:MM]]
//
// The returned value reports through Offset whether an offset was present.
func FromIsoString(text string) (DateTime, error) {
	return parseDateTime(text, isoSyntax)
}

type scanner struct {
	s   string
	pos int
}

func (sc *scanner) done() bool {
	return sc.pos >= len(sc.s)
}

func (sc *scanner) peek() byte {
	if sc.done() {
		return 0
	}
	return sc.s[sc.pos]
}

func (sc *scanner) accept(c byte) bool {
	if sc.peek() == c && !sc.done() {
		sc.pos++
		return true
	}
	return false
}

// number reads between min and max decimal digits
func (sc *scanner) number(min, max int) (int, bool) {
	start, n := sc.pos, 0
	for sc.pos < len(sc.s) && sc.pos-start < max {
		c := sc.s[sc.pos]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		sc.pos++
	}
	return n, sc.pos-start >= min
}

// fraction reads the digits after a decimal point and returns them as ticks
// of a second. Digits beyond the seventh are consumed and dropped.
func (sc *scanner) fraction() (int64, bool) {
	start := sc.pos
	var ticks int64
	scale := TicksPerSecond
	for sc.pos < len(sc.s) {
		c := sc.s[sc.pos]
		if c < '0' || c > '9' {
			break
		}
		if scale > 1 {
			scale /= 10
			ticks += int64(c-'0') * scale
		}
		sc.pos++
	}
	return ticks, sc.pos > start
}

func (sc *scanner) word() string {
	start := sc.pos
	for sc.pos < len(sc.s) && isASCIILetter(sc.s[sc.pos]) {
		sc.pos++
	}
	return sc.s[start:sc.pos]
}

func isASCIILetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

type offsetMark int

const (
	noOffset offsetMark = iota
	zuluOffset
	numericOffset
)

func parseDateTime(text string, syn dateTimeSyntax) (DateTime, error) {
	op := syn.op
	sc := &scanner{s: strings.TrimSpace(text)}
	bad := func(format string, args ...interface{}) (DateTime, error) {
		return DateTime{}, invalidFormat(op, text, format, args...)
	}
	if sc.done() {
		return bad("empty date")
	}

	var weekday Weekday
	hasWeekday := false
	if syn.weekday && isASCIILetter(sc.peek()) {
		name := sc.word()
		wd, ok := calendar.ParseWeekday(name)
		if !ok {
			return bad("unknown weekday %q", name)
		}
		if !sc.accept(' ') {
			return bad("expected ' ' after weekday")
		}
		weekday, hasWeekday = wd, true
	}

	short := 2
	if syn.shortFields {
		short = 1
	}

	year, ok := sc.number(4, 4)
	if !ok {
		return bad("expected four digit year at position %d", sc.pos)
	}
	if !sc.accept('-') {
		return bad("expected '-' after year")
	}
	month, ok := sc.number(short, 2)
	if !ok {
		return bad("expected month at position %d", sc.pos)
	}
	if !sc.accept('-') {
		return bad("expected '-' after month")
	}
	day, ok := sc.number(short, 2)
	if !ok {
		return bad("expected day at position %d", sc.pos)
	}

	var hour, minute, second int
	var frac int64
	mark := noOffset
	var offset int64

	timeFollows := false
	switch c := sc.peek(); {
	case c == 'T':
		timeFollows = true
	case c == ' ' && syn.spaceBetween && sc.pos+1 < len(sc.s) && isDigit(sc.s[sc.pos+1]):
		timeFollows = true
	}
	if timeFollows {
		sc.pos++
		if hour, ok = sc.number(short, 2); !ok {
			return bad("expected hour at position %d", sc.pos)
		}
		if !sc.accept(':') {
			return bad("expected ':' after hour")
		}
		if minute, ok = sc.number(short, 2); !ok {
			return bad("expected minute at position %d", sc.pos)
		}
		if sc.accept(':') {
			if second, ok = sc.number(short, 2); !ok {
				return bad("expected second at position %d", sc.pos)
			}
			if sc.accept('.') {
				if frac, ok = sc.fraction(); !ok {
					return bad("expected fraction digits at position %d", sc.pos)
				}
			}
		}
	}

	if syn.offsetSpace {
		sc.accept(' ')
	}
	switch {
	case sc.accept('Z'):
		mark = zuluOffset
	case sc.peek() == '+' || sc.peek() == '-':
		sign := int64(1)
		if sc.s[sc.pos] == '-' {
			sign = -1
		}
		sc.pos++
		oh, ok := sc.number(2, 2)
		if !ok {
			return bad("expected offset hours at position %d", sc.pos)
		}
		om := 0
		if sc.accept(':') {
			if om, ok = sc.number(2, 2); !ok {
				return bad("expected offset minutes at position %d", sc.pos)
			}
		} else if isDigit(sc.peek()) {
			if om, ok = sc.number(2, 2); !ok {
				return bad("expected offset minutes at position %d", sc.pos)
			}
		}
		if oh > 23 || om > 59 {
			return DateTime{}, outOfRange(op, "UTC offset %02d:%02d out of range", oh, om)
		}
		mark = numericOffset
		offset = sign * (int64(oh)*TicksPerHour + int64(om)*TicksPerMinute)
	}

	if !sc.done() {
		return bad("unexpected %q at position %d", sc.s[sc.pos:], sc.pos)
	}

	if err := calendar.ValidateDate(year, month, day); err != nil {
		return DateTime{}, withOperation(err, op)
	}
	if err := calendar.ValidateTime(hour, minute, second, 0); err != nil {
		return DateTime{}, withOperation(err, op)
	}

	wall := composeTicks(year, month, day, hour, minute, second) + frac
	if hasWeekday {
		if actual := calendar.DayOfWeek(wall / TicksPerDay); actual != weekday {
			return bad("weekday %s does not match %04d-%02d-%02d, a %s", weekday, year, month, day, actual)
		}
	}

	switch mark {
	case zuluOffset:
		return DateTime{ticks: wall, kind: UTC}, nil
	case numericOffset:
		ticks := wall - offset
		if ticks < 0 || ticks > MaxTicks {
			return DateTime{}, outOfRange(op, "instant leaves the range 0001-01-01..9999-12-31")
		}
		return DateTime{ticks: ticks, offset: TimeSpan{offset}, kind: Local}, nil
	default:
		return DateTime{ticks: wall}, nil
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// colonUnits maps colon separated fields, counted from the right, to their unit
var colonUnits = [...]int64{TicksPerSecond, TicksPerMinute, TicksPerHour, TicksPerDay}

// measuredUnits maps the unit names of the measured form to ticks per unit
var measuredUnits = map[string]*big.Rat{
	"d":   big.NewRat(TicksPerDay, 1),
	"h":   big.NewRat(TicksPerHour, 1),
	"min": big.NewRat(TicksPerMinute, 1),
	"s":   big.NewRat(TicksPerSecond, 1),
	"ms":  big.NewRat(TicksPerMillisecond, 1),
	"µs":  big.NewRat(TicksPerMicrosecond, 1),
	"μs":  big.NewRat(TicksPerMicrosecond, 1),
	"us":  big.NewRat(TicksPerMicrosecond, 1),
	"ns":  big.NewRat(1, NanosecondsPerTick),
}

// ParseTimeSpan parses a span in one of these forms:
//
//	""                       zero
//	[-]S[.f]                 seconds, also in scientific notation
//	[-][[D:]H:]M:S[.f]       colon fields filled from the right
//	3 d 10 h 53 min 2 s      measured form as written by SpanWithMeasures
//
// Every colon field may carry a fraction and may exceed its usual range, so
// "2:34:53:2.5" is 3 days 10 hours 53 minutes 2.5 seconds.
func ParseTimeSpan(text string) (TimeSpan, error) {
	const op = "ParseTimeSpan"
	s := strings.TrimSpace(text)
	if s == "" {
		return TimeSpan{}, nil
	}
	if isMeasured(s) {
		return parseMeasured(op, text, s)
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	fields := strings.Split(s, ":")
	if len(fields) > len(colonUnits) {
		return TimeSpan{}, invalidFormat(op, text, "%d colon separated fields, at most %d allowed", len(fields), len(colonUnits))
	}

	sum := new(big.Rat)
	for i := range fields {
		field := fields[len(fields)-1-i]
		valid := isDecimal(field)
		if len(fields) == 1 {
			valid = valid || isScientific(field) && field[0] != '+' && field[0] != '-'
		}
		if !valid {
			return TimeSpan{}, invalidFormat(op, text, "field %q is not a number", field)
		}
		r, ok := parseRat(field)
		if !ok {
			return TimeSpan{}, invalidFormat(op, text, "field %q is not a number", field)
		}
		sum.Add(sum, r.Mul(r, new(big.Rat).SetInt64(colonUnits[i])))
	}

	ticks, ok := ratTicks(sum, 1)
	if !ok {
		return TimeSpan{}, overflowError(op, "%q exceeds the tick range", text)
	}
	if negative {
		ticks = -ticks
	}
	return TimeSpan{ticks}, nil
}

// isMeasured reports whether s contains a unit name. 'e' and 'E' alone
// belong to scientific notation.
func isMeasured(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) && r != 'e' && r != 'E'
	}) >= 0
}

func parseMeasured(op, text, s string) (TimeSpan, error) {
	tokens := strings.Fields(s)
	if len(tokens)%2 != 0 {
		return TimeSpan{}, invalidFormat(op, text, "expected pairs of value and unit")
	}

	seen := make(map[string]bool, len(tokens)/2)
	sum := new(big.Rat)
	for i := 0; i < len(tokens); i += 2 {
		value, unit := tokens[i], tokens[i+1]
		factor, known := measuredUnits[unit]
		if !known {
			return TimeSpan{}, invalidFormat(op, text, "unknown unit %q", unit)
		}
		if seen[unit] {
			return TimeSpan{}, invalidFormat(op, text, "unit %q given twice", unit)
		}
		seen[unit] = true
		if !isScientific(value) {
			return TimeSpan{}, invalidFormat(op, text, "value %q is not a number", value)
		}
		r, ok := parseRat(value)
		if !ok {
			return TimeSpan{}, invalidFormat(op, text, "value %q is not a number", value)
		}
		sum.Add(sum, r.Mul(r, factor))
	}

	ticks, ok := ratTicks(sum, 1)
	if !ok {
		return TimeSpan{}, overflowError(op, "%q exceeds the tick range", text)
	}
	return TimeSpan{ticks}, nil
}
