// Package content loads the landing page copy from YAML.
//
// An embedded default mirrors the production page; a file on disk replaces it
// and can be watched for edits while the preview is running.
package content
