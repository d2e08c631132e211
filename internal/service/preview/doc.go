// Package preview shows the landing page in a terminal.
//
// The page scrolls line by line; every section reveals itself, counts its
// statistics and slides its carousels the same way the browser page does, drawn
// with tcell. The reader's position is kept in a snapshot file between runs.
package preview
