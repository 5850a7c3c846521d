// Package version exposes build metadata stamped in via -ldflags.
package version

import "strings"

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"
	// Commit is the short git revision.
	Commit = ""
	// Date is the build timestamp.
	Date = ""
)

// Get renders the version line printed by `akaget version`.
func Get() string {
	parts := []string{"akaget " + Version}
	if Commit != "" {
		parts = append(parts, "commit "+Commit)
	}
	if Date != "" {
		parts = append(parts, "built "+Date)
	}
	return strings.Join(parts, ", ")
}
