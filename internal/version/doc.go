// Package version carries the build metadata of landing-preview.
//
// Version, Commit and BuildTime are set through -ldflags at release time.
package version
