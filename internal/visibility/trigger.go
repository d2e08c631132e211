package visibility

import (
	"errors"
	"fmt"
	"sync"
)

// State is the trigger's position in its two-state machine.
type State int

const (
	// Pending means the element has not reached its threshold yet.
	Pending State = iota
	// Fired means the element became visible at least once. It is terminal.
	Fired
)

// String returns a human-readable state name for logs.
func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Fired:
		return "fired"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Entry is one intersection observation delivered by the viewport owner.
type Entry struct {
	// Attached reports whether the element is part of the observed layout.
	// Detached elements are ignored until they attach.
	Attached bool
	// Intersecting reports whether any part of the element is inside the viewport.
	Intersecting bool
	// Ratio is the visible fraction of the element's area in [0, 1].
	Ratio float64
}

// ErrInvalidThreshold is returned when a threshold falls outside [0, 1].
var ErrInvalidThreshold = errors.New("threshold must be within [0, 1]")

// Trigger fires once when an observed element's visible fraction reaches its threshold.
// It is safe for concurrent use.
type Trigger struct {
	// threshold is the visible fraction required to fire.
	threshold float64
	// state is Pending until the first qualifying entry, then Fired forever.
	state State
	// done is closed exactly once on the Pending -> Fired transition.
	done chan struct{}
	// mu guards state.
	mu sync.Mutex
}

// New creates a pending trigger for the given threshold ratio.
func New(threshold float64) (*Trigger, error) {
	// NaN fails both comparisons, so it is rejected here too.
	if !(threshold >= 0 && threshold <= 1) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidThreshold, threshold)
	}

	return &Trigger{
		threshold: threshold,
		state:     Pending,
		done:      make(chan struct{}),
	}, nil
}

// MustNew is like New but panics on an invalid threshold.
// It is meant for thresholds fixed at compile time.
func MustNew(threshold float64) *Trigger {
	t, err := New(threshold)
	if err != nil {
		panic(err)
	}

	return t
}

// Threshold returns the configured visible fraction.
func (t *Trigger) Threshold() float64 {
	return t.threshold
}

// Observe feeds one intersection entry into the trigger.
// It returns true only for the entry that caused the transition to Fired.
func (t *Trigger) Observe(entry Entry) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == Fired || !t.qualifies(entry) {
		return false
	}

	t.state = Fired
	close(t.done)

	return true
}

// Visible reports whether the trigger has fired.
func (t *Trigger) Visible() bool {
	return t.State() == Fired
}

// State returns the current machine state.
func (t *Trigger) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}

// Done returns a channel that is closed when the trigger fires.
func (t *Trigger) Done() <-chan struct{} {
	return t.done
}

// qualifies reports whether the entry satisfies the threshold.
func (t *Trigger) qualifies(entry Entry) bool {
	if !entry.Attached || !entry.Intersecting {
		return false
	}

	return entry.Ratio >= t.threshold
}
