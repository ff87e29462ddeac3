// File: conversion.go
// Title: Conversion Error Helpers
// Description: Helpers for the conversion error family: the single failure kind
//              reported by date, time span and period constructors, parsers and
//              tick arithmetic.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package error

import "errors"

// Conversion wraps a sentinel cause into a conversion error with the given code.
// The sentinel stays reachable through errors.Is.
func Conversion(sentinel error, code Code, message string) *Error {
	e := Wrap(sentinel, message)
	if e == nil {
		e = New(message)
	}
	e.stackTrace = captureStackTrace(2)
	return e.WithCode(code)
}

// IsConversion reports whether err, or any error it wraps, belongs to the conversion category
func IsConversion(err error) bool {
	for current := err; current != nil; current = errors.Unwrap(current) {
		if e, ok := current.(*Error); ok && e.code.Category() == "conversion" {
			return true
		}
	}
	return false
}
