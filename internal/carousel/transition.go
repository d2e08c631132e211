package carousel

// Side is a horizontal edge a slide enters from or exits to.
type Side int

const (
	// Left is the left edge.
	Left Side = iota
	// Right is the right edge.
	Right
)

// String returns the side name.
func (s Side) String() string {
	if s == Left {
		return "left"
	}

	return "right"
}

// Transition describes how the single-item slider swaps items.
type Transition struct {
	// EnterFrom is the edge the incoming item slides in from.
	EnterFrom Side
	// ExitTo is the edge the outgoing item slides out to.
	ExitTo Side
}

// SlideTransition is the slider's transition. It is the same for Next, Previous
// and JumpTo: the direction of travel is not tracked.
func SlideTransition() Transition {
	return Transition{
		EnterFrom: Right,
		ExitTo:    Left,
	}
}
