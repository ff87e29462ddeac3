// ============================================================================
// chrono - calendar and duration values
// ============================================================================
//
// Package:     version
// Description: Version information for the library and the chrono tool
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"strings"

	"github.com/msto63/chrono/foundation/chrono"
)

// Version constants
const (
	// Library is the version of the chrono value packages
	Library = "0.2.0"

	// CLI is the version of the chrono command
	CLI = "0.2.0"
)

// Set at build time via -ldflags "-X .../version.Commit=... -X .../version.BuildDate=..."
var (
	Commit    = "unknown"
	BuildDate = ""
)

// Info describes the running build
type Info struct {
	Version string
	Commit  string
	// Built is the build instant; zero when BuildDate is unset or unreadable
	Built chrono.DateTime
}

// Get returns the build information of component, "library" or "cli"
func Get(component string) Info {
	info := Info{Version: ComponentVersion(component), Commit: Commit}
	if BuildDate != "" {
		if built, err := chrono.FromIsoString(BuildDate); err == nil {
			info.Built = built
		}
	}
	return info
}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch strings.ToLower(name) {
	case "cli", "chrono":
		return CLI
	default:
		return Library
	}
}

// String renders the info for "version" output
func (i Info) String() string {
	s := fmt.Sprintf("%s (commit %s", i.Version, i.Commit)
	if !i.Built.IsNull() {
		s += ", built " + i.Built.IsoString()
	}
	return s + ")"
}
