package visibility

// Rect is a vertical span in layout units (terminal rows in the preview).
type Rect struct {
	// Top is the first unit covered by the span.
	Top int
	// Height is the number of units covered. Zero-height spans are points.
	Height int
}

// Bottom returns the first unit after the span.
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// Measure builds the intersection entry of element within viewport.
func Measure(element, viewport Rect) Entry {
	ratio, intersecting := IntersectionRatio(element, viewport)

	return Entry{
		Attached:     true,
		Intersecting: intersecting,
		Ratio:        ratio,
	}
}

// IntersectionRatio returns the visible fraction of element inside viewport and
// whether the two intersect at all. A zero-height element counts as fully visible
// when its top lies within the viewport.
func IntersectionRatio(element, viewport Rect) (float64, bool) {
	if viewport.Height <= 0 {
		return 0, false
	}

	if element.Height <= 0 {
		inside := element.Top >= viewport.Top && element.Top < viewport.Bottom()
		if inside {
			return 1, true
		}

		return 0, false
	}

	overlap := min(element.Bottom(), viewport.Bottom()) - max(element.Top, viewport.Top)
	if overlap <= 0 {
		return 0, false
	}

	return float64(overlap) / float64(element.Height), true
}
