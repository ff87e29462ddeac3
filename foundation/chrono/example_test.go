// File: example_test.go
// Title: Chrono Examples
// Description: Example usage of DateTime, TimeSpan and Period.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package chrono

import (
	"errors"
	"fmt"
)

// ExampleFromDateAndTime shows construction and the weekday formats
func ExampleFromDateAndTime() {
	d, err := FromDateAndTime(2012, 2, 29, 15, 34, 20, 33)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(d)
	fmt.Println(d.Format(DateTimeAndShortWeekday))
	fmt.Println(d.Format(DateTimeAndWeekday, NoMilliseconds()))
	fmt.Println("Day of year:", d.DayOfYear())

	// Output:
	// 2012-02-29 15:34:20.033
	// Wed 2012-02-29 15:34:20.033
	// Wednesday 2012-02-29 15:34:20
	// Day of year: 60
}

// ExampleFromDate shows how invalid dates are reported
func ExampleFromDate() {
	_, err := FromDate(2013, 2, 29)

	fmt.Println(errors.Is(err, ErrOutOfRange))
	fmt.Println(IsConversionError(err))

	// Output:
	// true
	// true
}

// ExampleFromIsoString shows offsets and the truncation below one tick
func ExampleFromIsoString() {
	d, err := FromIsoString("2017-08-23T19:40:15.985077682+02:00")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(d.IsoString())
	fmt.Println(d.UTC().IsoString())
	fmt.Println(d.Format(DateAndTime, NoMilliseconds(), WithOffset()))

	// Output:
	// 2017-08-23T19:40:15.9850776+02:00
	// 2017-08-23T17:40:15.9850776Z
	// 2017-08-23 19:40:15 +02:00
}

// ExampleParseTimeSpan shows the colon form and its measured rendering
func ExampleParseTimeSpan() {
	span, err := ParseTimeSpan("2:34:53:2.5")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(span)
	fmt.Println(span.Format(SpanWithMeasures, false))
	fmt.Println(span.Format(SpanTotalSeconds, false))

	// Output:
	// 82:53:02.500
	// 3 d 10 h 53 min 2 s 500 ms
	// 298382.5
}

// ExampleTimeSpan_Format shows the compact rendering of short spans
func ExampleTimeSpan_Format() {
	half := Must(FromMilliseconds(0.5))
	tiny := FromTicks(3)

	fmt.Println(half.Format(SpanWithMeasures, false))
	fmt.Println(tiny.Format(SpanWithMeasures, false))
	fmt.Println(Must(FromSeconds(-5)).Format(SpanWithMeasures, false))

	// Output:
	// 5e+02 µs
	// 300 ns
	// -5 s
}

// ExamplePeriodBetween shows the calendar decomposition and its inverse
func ExamplePeriodBetween() {
	begin := Must(FromDateAndTime(1994, 7, 18, 15, 30, 21, 0))
	end := Must(FromDateAndTime(2017, 12, 2, 15, 30, 21, 0))

	p := PeriodBetween(begin, end)
	fmt.Println(p)
	fmt.Println(p.Describe())

	back, err := begin.AddPeriod(p)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(back)

	// Output:
	// P23Y4M14D
	// 23 years, 4 months, 14 days
	// 2017-12-02 15:30:21
}
