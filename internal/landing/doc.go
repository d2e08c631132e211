// Package landing composes the page sections out of the visibility, counter and
// carousel primitives.
//
// Every section owns its own triggers, animators and carousels; nothing is shared
// between sections and there is no registry. A Page lays the sections out in one
// vertical flow and turns scroll positions into intersection entries.
package landing
