// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for filtering log output and their short
//              names and console styles.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-19 v0.2.0: Level styles via lipgloss, structured parse errors

package log

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	chronoerr "github.com/msto63/chrono/foundation/core/error"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose level
	LevelTrace Level = iota

	// LevelDebug provides detailed information for debugging purposes
	LevelDebug

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn indicates potentially harmful situations
	LevelWarn

	// LevelError represents error conditions that need attention
	LevelError

	// LevelAudit is always logged, whatever the minimum level
	LevelAudit
)

var levelNames = [...]string{"trace", "debug", "info", "warn", "error", "audit"}

// String returns the string representation of the log level
func (l Level) String() string {
	if l < LevelTrace || l > LevelAudit {
		return "unknown"
	}
	return levelNames[l]
}

// ShortString returns a short string representation of the log level
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	case LevelAudit:
		return "AUD"
	default:
		return "???"
	}
}

// Style returns the console style of the level
func (l Level) Style() lipgloss.Style {
	style := lipgloss.NewStyle()
	switch l {
	case LevelTrace:
		return style.Foreground(lipgloss.Color("7"))
	case LevelDebug:
		return style.Foreground(lipgloss.Color("6"))
	case LevelInfo:
		return style.Foreground(lipgloss.Color("2"))
	case LevelWarn:
		return style.Foreground(lipgloss.Color("3")).Bold(true)
	case LevelError:
		return style.Foreground(lipgloss.Color("1")).Bold(true)
	case LevelAudit:
		return style.Foreground(lipgloss.Color("4"))
	default:
		return style
	}
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	if l == LevelAudit {
		return true
	}
	return l >= minLevel
}

// ParseLevel parses a string into a log level
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf", "information":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "audit", "aud":
		return LevelAudit, nil
	default:
		return LevelInfo, chronoerr.New(fmt.Sprintf("invalid log level %q", level)).
			WithCode(chronoerr.CodeInvalidConfig).
			WithOperation("log.ParseLevel").
			WithInput(level)
	}
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}
