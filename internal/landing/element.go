package landing

import (
	"sync"
	"time"

	"github.com/oshokin/landing-motion/internal/motion"
	"github.com/oshokin/landing-motion/internal/visibility"
)

// Element is an observed block inside a section: a heading, a row of cards, a form.
type Element struct {
	// Name identifies the element in logs.
	Name string
	// Offset is the first row of the element relative to its section.
	Offset int
	// Height is the number of rows the element covers.
	Height int
	// Entry is the animation played once the element becomes visible.
	Entry motion.Descriptor

	// trigger fires once the element is visible enough.
	trigger *visibility.Trigger

	// mu guards revealedAt.
	mu sync.Mutex
	// revealedAt is when the trigger fired; zero while pending.
	revealedAt time.Time
}

// newElement builds an element with a trigger at the given threshold.
// Thresholds are package constants, so MustNew cannot fail at runtime.
func newElement(name string, offset, height int, threshold float64, entry motion.Descriptor) *Element {
	return &Element{
		Name:    name,
		Offset:  offset,
		Height:  height,
		Entry:   entry,
		trigger: visibility.MustNew(threshold),
	}
}

// Trigger returns the element's visibility trigger.
func (e *Element) Trigger() *visibility.Trigger {
	return e.trigger
}

// Visible reports whether the element has been revealed.
func (e *Element) Visible() bool {
	return e.trigger.Visible()
}

// Observe feeds one intersection entry and records the reveal time on the firing edge.
func (e *Element) Observe(now time.Time, entry visibility.Entry) bool {
	if !e.trigger.Observe(entry) {
		return false
	}

	e.mu.Lock()
	e.revealedAt = now
	e.mu.Unlock()

	return true
}

// RevealedAt returns when the element was revealed, or zero while pending.
func (e *Element) RevealedAt() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.revealedAt
}

// Pose samples the entry animation. Pending elements stay in the initial pose.
func (e *Element) Pose(now time.Time) motion.Pose {
	revealedAt := e.RevealedAt()
	if revealedAt.IsZero() {
		return e.Entry.From
	}

	return e.Entry.At(now.Sub(revealedAt))
}
