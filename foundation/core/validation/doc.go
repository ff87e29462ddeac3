// File: doc.go
// Title: Core Validation Framework Package Documentation
// Description: Package documentation for the validation framework.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework implementation
// - 2026-10-19 v0.2.0: Narrowed to the chains used by the calendar gate

/*
Package validation provides composable validators with structured results.

Package: validation
Title: Core Validation Framework
Description: Validators return a ValidationResult instead of a bare error so
             several failures can be collected, inspected and finally turned
             into one structured error. The calendar package builds its range
             gate for dates and times on these chains.

Core Components:
  - Validator interface and ValidatorFunc adapter
  - ValidationResult and ValidationError for structured reporting
  - ValidatorChain for composing validators, with Field binding so one chain
    can check the year, month and day of a date in a single pass
  - IntRange and FloatRange validators

Usage:

	result := validation.NewValidatorChain("date").
		StopOnFirstError(true).
		Field("year", year, validation.IntRange(1, 9999)).
		Field("month", month, validation.IntRange(1, 12)).
		Validate(nil)

	if !result.Valid {
		return result.ToError(ErrOutOfRange, chronoerr.CodeValueOutOfRange)
	}

ToError wraps the given sentinel so that errors.Is matches it, and copies the
field name, the offending value and the expected range into the error details.
*/
package validation
