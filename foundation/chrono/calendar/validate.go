// File: validate.go
// Title: Calendar Validation Gate
// Description: Range checks for date and time components. Every constructor
//              and parser in chrono routes its components through these two
//              functions before composing ticks.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package calendar

import (
	"errors"

	chronoerr "github.com/msto63/chrono/foundation/core/error"
	"github.com/msto63/chrono/foundation/core/validation"
)

// Sentinel causes wrapped by every conversion error
var (
	ErrOutOfRange      = errors.New("chrono: value out of range")
	ErrInvalidFormat   = errors.New("chrono: invalid format")
	ErrOverflow        = errors.New("chrono: arithmetic overflow")
	ErrInvalidArgument = errors.New("chrono: invalid argument")
)

var (
	yearRange   = validation.IntRange(MinYear, MaxYear)
	monthRange  = validation.IntRange(1, 12)
	hourRange   = validation.IntRange(0, 23)
	minuteRange = validation.IntRange(0, 59)
	secondRange = validation.IntRange(0, 59)
	msRange     = validation.FloatRange(0, 1000)
)

// ValidateDate checks year 1..9999, month 1..12 and day 1..DaysInMonth.
// Failures wrap ErrOutOfRange.
func ValidateDate(year, month, day int) error {
	result := validation.NewValidatorChain("date").
		StopOnFirstError(true).
		Field("year", year, yearRange).
		Field("month", month, monthRange).
		Field("day", day, validation.IntRange(1, DaysInMonth(year, month))).
		Validate(nil)

	return rangeError(result, "ValidateDate")
}

// ValidateTime checks hour 0..23, minute and second 0..59 and a millisecond
// fraction in [0, 1000). Failures wrap ErrOutOfRange.
func ValidateTime(hour, minute, second int, millisecond float64) error {
	result := validation.NewValidatorChain("time").
		StopOnFirstError(true).
		Field("hour", hour, hourRange).
		Field("minute", minute, minuteRange).
		Field("second", second, secondRange).
		Field("millisecond", millisecond, msRange).
		Validate(nil)

	return rangeError(result, "ValidateTime")
}

func rangeError(result validation.ValidationResult, op string) error {
	if result.Valid {
		return nil
	}
	err := result.ToError(ErrOutOfRange, chronoerr.CodeValueOutOfRange)
	var ce *chronoerr.Error
	if errors.As(err, &ce) {
		ce.WithOperation(op)
	}
	return err
}
