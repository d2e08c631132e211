// Package config defines the preview settings and provides helpers to load,
// validate and save them in YAML format.
//
// The Config type holds the counter timing, ring geometry, gallery window and the
// paths of the content, session and log files. Validate fills defaults.
package config
