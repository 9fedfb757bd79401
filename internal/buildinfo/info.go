// Package buildinfo carries the release metadata stamped into the
// extrato binary, surfaced through the root command's --version output.
package buildinfo

// Set via -ldflags at release time; the zero values identify a
// from-source development build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
