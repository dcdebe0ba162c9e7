package cbrsa

import "fmt"

var (
	Version = "v0.0.0-in-progress"
	Commit  = "unknown"
)

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// BuildInfo returns the version together with the commit it was built from.
func BuildInfo() string {
	return fmt.Sprintf("%s (%s)", Version, Commit)
}
