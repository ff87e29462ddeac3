// File: errors.go
// Title: Conversion Errors
// Description: Sentinel causes and constructors for the conversion errors
//              reported by DateTime, TimeSpan and Period.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package chrono

import (
	"fmt"

	"github.com/msto63/chrono/foundation/chrono/calendar"
	chronoerr "github.com/msto63/chrono/foundation/core/error"
)

// Sentinel causes. Every error returned by this package wraps exactly one of
// them, so errors.Is can be used to tell the reasons apart.
var (
	ErrOutOfRange      = calendar.ErrOutOfRange
	ErrInvalidFormat   = calendar.ErrInvalidFormat
	ErrOverflow        = calendar.ErrOverflow
	ErrInvalidArgument = calendar.ErrInvalidArgument
)

// IsConversionError reports whether err is a conversion error of any reason
func IsConversionError(err error) bool {
	return chronoerr.IsConversion(err)
}

func outOfRange(op, format string, args ...interface{}) *chronoerr.Error {
	return chronoerr.Conversion(ErrOutOfRange, chronoerr.CodeValueOutOfRange, fmt.Sprintf(format, args...)).
		WithOperation(op)
}

func invalidFormat(op, input, format string, args ...interface{}) *chronoerr.Error {
	return chronoerr.Conversion(ErrInvalidFormat, chronoerr.CodeInvalidFormat, fmt.Sprintf(format, args...)).
		WithOperation(op).
		WithInput(input)
}

func overflowError(op, format string, args ...interface{}) *chronoerr.Error {
	return chronoerr.Conversion(ErrOverflow, chronoerr.CodeOverflow, fmt.Sprintf(format, args...)).
		WithOperation(op)
}

func invalidArgument(op, format string, args ...interface{}) *chronoerr.Error {
	return chronoerr.Conversion(ErrInvalidArgument, chronoerr.CodeInvalidArgument, fmt.Sprintf(format, args...)).
		WithOperation(op)
}

// withOperation names the public operation on an error raised by the calendar gate
func withOperation(err error, op string) error {
	if ce, ok := err.(*chronoerr.Error); ok {
		ce.WithOperation(op)
	}
	return err
}
