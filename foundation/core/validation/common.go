// File: common.go
// Title: Numeric Range Validators
// Description: Range validators used by the calendar gate, plus the numeric
//              conversion helper they share.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework utilities
// - 2026-10-19 v0.2.0: IntRange and FloatRange validators

package validation

import (
	"fmt"
	"math"
)

// ConvertToFloat64 converts the supported numeric types to float64
func ConvertToFloat64(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("cannot convert %T to float64", value)
	}
}

// IntRange accepts integers in the closed interval [min, max]
func IntRange(min, max int) Validator {
	return ValidatorFunc(func(value interface{}) ValidationResult {
		var n int64
		switch v := value.(type) {
		case int:
			n = int64(v)
		case int64:
			n = v
		case int32:
			n = int64(v)
		default:
			return NewValidationError(CodeType, fmt.Sprintf("has unsupported type %T", value))
		}
		if n < int64(min) || n > int64(max) {
			result := NewValidationError(CodeRange, fmt.Sprintf("%d out of range %d..%d", n, min, max))
			result.Errors[0].Expected = fmt.Sprintf("%d..%d", min, max)
			return result
		}
		return NewValidationResult()
	})
}

// FloatRange accepts finite numbers in the half-open interval [min, max)
func FloatRange(min, max float64) Validator {
	return ValidatorFunc(func(value interface{}) ValidationResult {
		f, err := ConvertToFloat64(value)
		if err != nil {
			return NewValidationError(CodeType, err.Error())
		}
		if math.IsNaN(f) || f < min || f >= max {
			result := NewValidationError(CodeRange, fmt.Sprintf("%g out of range [%g, %g)", f, min, max))
			result.Errors[0].Expected = fmt.Sprintf("[%g, %g)", min, max)
			return result
		}
		return NewValidationResult()
	})
}
