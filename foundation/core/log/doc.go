// Package log provides structured logging for chrono tools.
//
// Package: log
// Title: Structured Logging
// Description: Structured logging with contextual fields, log levels, JSON,
//              text, console and logfmt output, and integration with the
//              chrono error type. Timestamps come from a chrono.Clock and are
//              written as ISO-8601; durations are chrono.TimeSpan values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: chrono timestamps, clock injection, lipgloss console styles
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelInfo,
//		Format: log.FormatText,
//		Clock:  timex.SystemClock{},
//	}).WithCorrelationID(uuid.NewString())
//
//	logger.Info("parsed input", log.Span("span", span))
//
//	timer := logger.StartTimer("period_between")
//	p := chrono.PeriodBetween(begin, end)
//	timer.Stop()
//
// LogError picks the level from the severity of a chrono error: conversion
// failures log at info, overflows at warn, everything else at error.
package log
