// Package snapshot persists the preview session between runs.
//
// The FileRepository stores and loads the reader's position (carousel indices and
// scroll offset) as protobuf JSON on disk and exposes a Repository interface that
// the preview service depends on.
package snapshot
