// File: clock.go
// Title: Clocks and Standard Library Bridges
// Description: chrono.Clock implementations backed by the operating system,
//              a named time zone, a fixed offset or a frozen instant, plus
//              conversions between chrono values and time.Time/time.Duration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2026-10-19 v0.2.0: Clocks for the chrono value types, time.Time bridges

package timex

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/msto63/chrono/foundation/chrono"
	chronoerr "github.com/msto63/chrono/foundation/core/error"
)

var (
	_ chrono.Clock = SystemClock{}
	_ chrono.Clock = (*ZoneClock)(nil)
	_ chrono.Clock = OffsetClock{}
	_ chrono.Clock = FixedClock{}
)

// SystemClock reads the operating system clock. The coarse reading is
// truncated to whole seconds. The local offset is the one time.Local
// reports at the moment of the query.
type SystemClock struct{}

// UTCTicks returns the current instant in whole seconds
func (SystemClock) UTCTicks() int64 {
	return chrono.UnixEpochTicks + time.Now().Unix()*chrono.TicksPerSecond
}

// ExactUTCTicks returns the current instant at 100 ns resolution
func (SystemClock) ExactUTCTicks() int64 {
	return chrono.UnixEpochTicks + time.Now().UnixNano()/chrono.NanosecondsPerTick
}

// LocalOffset returns the current offset of time.Local
func (SystemClock) LocalOffset() chrono.TimeSpan {
	_, offset := time.Now().Zone()
	return chrono.FromTicks(int64(offset) * chrono.TicksPerSecond)
}

// Timezone cache for commonly used locations
var (
	timezoneCache = make(map[string]*time.Location)
	timezoneMu    sync.RWMutex
)

// getCachedLocation returns a cached timezone location or loads and caches it
func getCachedLocation(tz string) (*time.Location, error) {
	timezoneMu.RLock()
	if loc, exists := timezoneCache[tz]; exists {
		timezoneMu.RUnlock()
		return loc, nil
	}
	timezoneMu.RUnlock()

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}

	timezoneMu.Lock()
	timezoneCache[tz] = loc
	timezoneMu.Unlock()

	return loc, nil
}

// ZoneClock is the system clock with the local offset taken from a named
// IANA time zone instead of time.Local
type ZoneClock struct {
	SystemClock
	loc *time.Location
}

// NewZoneClock returns a clock for the named zone, for example "Europe/Berlin"
func NewZoneClock(name string) (*ZoneClock, error) {
	loc, err := getCachedLocation(name)
	if err != nil {
		return nil, chronoerr.Conversion(chrono.ErrInvalidArgument, chronoerr.CodeInvalidArgument,
			fmt.Sprintf("unknown time zone %q", name)).
			WithOperation("NewZoneClock").
			WithInput(name)
	}
	return &ZoneClock{loc: loc}, nil
}

// LocalOffset returns the zone's offset at the current instant
func (c *ZoneClock) LocalOffset() chrono.TimeSpan {
	_, offset := time.Now().In(c.loc).Zone()
	return chrono.FromTicks(int64(offset) * chrono.TicksPerSecond)
}

// Location returns the zone
func (c *ZoneClock) Location() *time.Location {
	return c.loc
}

// OffsetClock reads another clock but reports a fixed local offset
type OffsetClock struct {
	Clock  chrono.Clock
	Offset chrono.TimeSpan
}

// UTCTicks delegates to the wrapped clock
func (c OffsetClock) UTCTicks() int64 { return c.Clock.UTCTicks() }

// ExactUTCTicks delegates to the wrapped clock
func (c OffsetClock) ExactUTCTicks() int64 { return c.Clock.ExactUTCTicks() }

// LocalOffset returns the fixed offset
func (c OffsetClock) LocalOffset() chrono.TimeSpan { return c.Offset }

// FixedClock always reports the same instant. The coarse reading drops the
// fraction of a second like SystemClock does.
type FixedClock struct {
	Instant chrono.DateTime
	Offset  chrono.TimeSpan
}

// NewFixedClock freezes the clock at d. The local offset is d's offset when
// it carries one, zero otherwise.
func NewFixedClock(d chrono.DateTime) FixedClock {
	offset, _ := d.Offset()
	return FixedClock{Instant: d, Offset: offset}
}

// UTCTicks returns the instant truncated to whole seconds
func (c FixedClock) UTCTicks() int64 {
	t := c.Instant.Ticks()
	return t - t%chrono.TicksPerSecond
}

// ExactUTCTicks returns the instant
func (c FixedClock) ExactUTCTicks() int64 { return c.Instant.Ticks() }

// LocalOffset returns the configured offset
func (c FixedClock) LocalOffset() chrono.TimeSpan { return c.Offset }

// ParseOffset reads a UTC offset such as "+02:00", "-0530", "Z" or "UTC"
func ParseOffset(text string) (chrono.TimeSpan, error) {
	s := strings.TrimSpace(text)
	if strings.EqualFold(s, "utc") {
		s = "Z"
	}
	d, err := chrono.FromIsoString("2000-01-01T12:00" + s)
	if err != nil {
		return chrono.TimeSpan{}, chronoerr.Wrap(err, "parsing UTC offset").WithOperation("ParseOffset")
	}
	offset, ok := d.Offset()
	if !ok {
		return chrono.TimeSpan{}, chronoerr.Conversion(chrono.ErrInvalidFormat, chronoerr.CodeInvalidFormat,
			fmt.Sprintf("%q is not a UTC offset", text)).
			WithOperation("ParseOffset").
			WithInput(text)
	}
	return offset, nil
}

// ===============================
// Standard Library Bridges
// ===============================

// FromTime converts t into a DateTime. Times in time.UTC become UTC values,
// all others carry t's zone offset.
func FromTime(t time.Time) (chrono.DateTime, error) {
	if y := t.Year(); y < 1 || y > 9999 {
		return chrono.DateTime{}, chronoerr.Conversion(chrono.ErrOutOfRange, chronoerr.CodeValueOutOfRange,
			fmt.Sprintf("year %d out of range 1..9999", y)).
			WithOperation("FromTime")
	}

	ticks := chrono.UnixEpochTicks + t.Unix()*chrono.TicksPerSecond + int64(t.Nanosecond())/chrono.NanosecondsPerTick
	d, err := chrono.FromTicksSinceEpoch(ticks)
	if err != nil {
		return chrono.DateTime{}, err
	}
	if t.Location() == time.UTC {
		return d.UTC(), nil
	}
	_, offset := t.Zone()
	return d.In(chrono.FromTicks(int64(offset) * chrono.TicksPerSecond))
}

// ToTime converts d into a time.Time. UTC and unspecified values land in
// time.UTC, offset-bearing values in a fixed zone of that offset.
func ToTime(d chrono.DateTime) time.Time {
	diff := d.Ticks() - chrono.UnixEpochTicks
	t := time.Unix(diff/chrono.TicksPerSecond, diff%chrono.TicksPerSecond*chrono.NanosecondsPerTick)

	offset, ok := d.Offset()
	if !ok || d.Kind() == chrono.UTC {
		return t.UTC()
	}
	return t.In(time.FixedZone("", int(offset.TotalTicks()/chrono.TicksPerSecond)))
}

// FromDuration converts a time.Duration, dropping nanoseconds below one tick
func FromDuration(d time.Duration) chrono.TimeSpan {
	return chrono.FromTicks(int64(d) / chrono.NanosecondsPerTick)
}

// ToDuration converts a span into a time.Duration, which covers about ±292 years
func ToDuration(s chrono.TimeSpan) (time.Duration, error) {
	const limit = math.MaxInt64 / chrono.NanosecondsPerTick
	ticks := s.TotalTicks()
	if ticks > limit || ticks < -limit {
		return 0, chronoerr.Conversion(chrono.ErrOverflow, chronoerr.CodeOverflow,
			fmt.Sprintf("%s does not fit into time.Duration", s)).
			WithOperation("ToDuration")
	}
	return time.Duration(ticks * chrono.NanosecondsPerTick), nil
}
