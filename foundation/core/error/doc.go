// Package error provides the structured error type used throughout chrono.
//
// Package: error
// Title: chrono Error Handling
// Description: This package implements a structured error with a code, a
//              severity, the offending input, an operation name and a captured
//              stack trace. Every failure a chrono value reports is one of these
//              errors with a code from the conversion category, wrapping a
//              package sentinel so errors.Is keeps working.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Conversion category, input capture
//
// Features:
// - Contextual error wrapping with additional metadata
// - Error codes grouped by category (conversion, validation, configuration)
// - Stack trace capture for debugging
// - JSON marshalling for structured logging
//
// Usage:
//   import chronoerr "github.com/msto63/chrono/foundation/core/error"
//
//   var ErrOutOfRange = errors.New("value out of range")
//
//   err := chronoerr.Conversion(ErrOutOfRange, chronoerr.CodeValueOutOfRange,
//     "month 15 out of range 1..12").
//     WithOperation("FromDate").
//     WithDetail("field", "month")
//
//   if errors.Is(err, ErrOutOfRange) {
//     // handle the range failure
//   }
//
//   if chronoerr.IsConversion(err) {
//     // any conversion failure
//   }
package error
