// Package counter animates statistic strings such as "1,200+" or "98%" from zero
// to their target in a fixed number of steps, and derives the stroke offset of the
// circular progress ring drawn around each number.
//
// The animation is a pure function of the step index, so the same Spec always
// yields the same frames. Animator adds the timer, the run state and the
// cancellation needed when the owning section goes away.
package counter
