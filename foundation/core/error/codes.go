// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures across chrono.
//              The conversion family covers every failure a value constructor,
//              parser or arithmetic operation can report.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Conversion codes, platform codes removed

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Conversion codes, reported by value constructors, parsers and arithmetic
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeOverflow        Code = "OVERFLOW"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeMissingConfig    Code = "MISSING_CONFIG"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeValueOutOfRange, CodeInvalidFormat, CodeOverflow, CodeInvalidArgument,
		CodeValidationFailed, CodeRequiredField,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeValueOutOfRange, CodeInvalidFormat, CodeOverflow, CodeInvalidArgument:
		return "conversion"
	case CodeValidationFailed, CodeRequiredField:
		return "validation"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	default:
		return "generic"
	}
}
