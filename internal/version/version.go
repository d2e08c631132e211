package version

import "fmt"

// Build metadata, overridden via -ldflags "-X".
//
//nolint:gochecknoglobals // Injected by the linker.
var (
	// Version is the semantic version of the build.
	Version = "0.1.0"
	// Commit is the short git SHA of the build.
	Commit = "none"
	// BuildTime is the UTC build timestamp.
	BuildTime = "unknown"
)

// Short returns the semantic version.
func Short() string {
	return Version
}

// Full returns the version with commit and build time.
func Full() string {
	return fmt.Sprintf("landing-preview %s (commit %s, built %s)", Version, Commit, BuildTime)
}
