package motion

import "time"

// Timings shared by the landing sections.
const (
	// SectionDuration is the length of a section heading's entry.
	SectionDuration = 600 * time.Millisecond
	// SlideDuration is the length of a carousel card or slide transition.
	SlideDuration = 500 * time.Millisecond
	// StaggerStep separates sibling entries.
	StaggerStep = 100 * time.Millisecond
)

// FadeUp rises 30 units while fading in.
func FadeUp() Descriptor {
	return Descriptor{
		Duration: SectionDuration,
		Easing:   EaseOut,
		From:     Pose{Opacity: 0, OffsetY: 30, Scale: 1},
		To:       Rest,
	}
}

// StatEntry rises 50 units and grows from 90% while fading in.
func StatEntry(delay time.Duration) Descriptor {
	return Descriptor{
		Duration: SectionDuration,
		Delay:    delay,
		Easing:   EaseOut,
		From:     Pose{Opacity: 0, OffsetY: 50, Scale: 0.9},
		To:       Rest,
	}
}

// SlideIn enters from 100 units to the right.
func SlideIn(delay time.Duration) Descriptor {
	return Descriptor{
		Duration: SlideDuration,
		Delay:    delay,
		Easing:   EaseOut,
		From:     Pose{Opacity: 0, OffsetX: 100, Scale: 1},
		To:       Rest,
	}
}

// SlideOut leaves 100 units to the left.
func SlideOut() Descriptor {
	return Descriptor{
		Duration: SlideDuration,
		Easing:   EaseOut,
		From:     Rest,
		To:       Pose{Opacity: 0, OffsetX: -100, Scale: 1},
	}
}
