// Package visibility implements the one-shot viewport trigger used by landing
// sections to start their entry animations and counters.
//
// A Trigger is a two-state machine (Pending, Fired) with a single allowed
// transition. It is fed intersection entries by whatever owns the viewport
// geometry and never reverts once fired.
package visibility
