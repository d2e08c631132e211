package carousel

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrEmpty is returned when a controller is built over no items.
	ErrEmpty = errors.New("carousel needs at least one item")
	// ErrIndexOutOfRange is returned by JumpTo for an index outside [0, N).
	ErrIndexOutOfRange = errors.New("carousel index out of range")
)

// Controller holds a current index into a fixed ordered sequence.
// The index is always in [0, Len()). A Controller is not safe for concurrent use.
type Controller[T any] struct {
	// items is the fixed sequence; it is never mutated after construction.
	items []T
	// index is the current position, normalized by modulo arithmetic.
	index int
}

// New creates a controller positioned at the first item.
// The items are copied so the caller may reuse the slice.
func New[T any](items []T) (*Controller[T], error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}

	return &Controller[T]{
		items: slices.Clone(items),
	}, nil
}

// Len returns the number of items.
func (c *Controller[T]) Len() int {
	return len(c.items)
}

// Index returns the current position.
func (c *Controller[T]) Index() int {
	return c.index
}

// Current returns the item at the current position.
func (c *Controller[T]) Current() T {
	return c.items[c.index]
}

// Items returns a copy of the sequence.
func (c *Controller[T]) Items() []T {
	return slices.Clone(c.items)
}

// Next advances by one position, wrapping past the end.
func (c *Controller[T]) Next() int {
	c.index = (c.index + 1) % len(c.items)

	return c.index
}

// Previous steps back by one position, wrapping before the start.
func (c *Controller[T]) Previous() int {
	n := len(c.items)
	c.index = (c.index - 1 + n) % n

	return c.index
}

// JumpTo moves to index i. An index outside [0, Len()) is rejected and the
// current position is left unchanged.
func (c *Controller[T]) JumpTo(i int) error {
	if i < 0 || i >= len(c.items) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(c.items))
	}

	c.index = i

	return nil
}

// VisibleWindow returns size items starting at the current index, wrapping past
// the end. Items repeat when size exceeds Len(); a non-positive size yields an
// empty window.
func (c *Controller[T]) VisibleWindow(size int) []T {
	if size <= 0 {
		return []T{}
	}

	n := len(c.items)
	window := make([]T, 0, size)

	for k := range size {
		window = append(window, c.items[(c.index+k)%n])
	}

	return window
}

// Indicators reports, for every item, whether it is the current one.
// It backs the row of indicator dots under a carousel.
func (c *Controller[T]) Indicators() []bool {
	dots := make([]bool, len(c.items))
	dots[c.index] = true

	return dots
}
