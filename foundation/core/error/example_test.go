// File: example_test.go
// Title: Error Module Examples
// Description: Example usage patterns for the chrono error type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive examples
// - 2026-10-19 v0.2.0: Conversion examples

package error

import (
	"errors"
	"fmt"
)

// ExampleConversion demonstrates reporting a range failure against a sentinel
func ExampleConversion() {
	errOutOfRange := errors.New("value out of range")

	err := Conversion(errOutOfRange, CodeValueOutOfRange, "month 15 out of range 1..12").
		WithOperation("FromDate").
		WithInput("15")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Category:", err.Code().Category())
	fmt.Println("Is sentinel:", errors.Is(err, errOutOfRange))

	// Output:
	// Error: month 15 out of range 1..12: value out of range
	// Code: VALUE_OUT_OF_RANGE
	// Category: conversion
	// Is sentinel: true
}

// ExampleWrap demonstrates adding context to a failure
func ExampleWrap() {
	parseErr := New("unexpected character '#'").WithCode(CodeInvalidFormat)

	err := Wrap(parseErr, "reading start date").WithOperation("LoadConfig")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())

	// Output:
	// Error: reading start date: unexpected character '#'
	// Code: INVALID_FORMAT
}
