package counter

import (
	"iter"
	"math"
)

// Frame is one emitted tick of a counter animation.
type Frame struct {
	// Step is the 1-based tick index that produced the frame.
	Step int
	// Value is the integer shown by this frame.
	Value int64
	// Display is Value with grouping and the suffix applied.
	Display string
	// Progress is the completion percentage in [0, 100].
	Progress float64
	// Complete is set on the final frame only.
	Complete bool
}

// FrameAt computes the frame produced by tick step (1-based) out of steps.
// The accumulator after step k is Target*k/steps; once it reaches Target the exact
// target is emitted and the frame is complete. A zero target completes at once.
func (s Spec) FrameAt(step, steps int) Frame {
	if steps <= 0 {
		steps = DefaultSteps
	}

	target := float64(s.Target)
	accumulator := target * float64(step) / float64(steps)

	if s.Target <= 0 || accumulator >= target {
		return Frame{
			Step:     step,
			Value:    s.Target,
			Display:  s.Format(s.Target),
			Progress: 100,
			Complete: true,
		}
	}

	value := int64(math.Floor(accumulator))

	return Frame{
		Step:     step,
		Value:    value,
		Display:  s.Format(value),
		Progress: math.Min(100, accumulator/target*100),
	}
}

// Frames returns the finite, lazily computed frame sequence of the spec.
// The sequence stops after the complete frame.
func (s Spec) Frames(steps int) iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		for step := 1; ; step++ {
			frame := s.FrameAt(step, steps)
			if !yield(frame) || frame.Complete {
				return
			}
		}
	}
}
