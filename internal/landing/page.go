package landing

import (
	"context"
	"time"

	"github.com/oshokin/landing-motion/internal/logger"
	"github.com/oshokin/landing-motion/internal/visibility"
)

// sectionGap is the number of blank rows between sections.
const sectionGap = 1

// Page lays sections out top to bottom and reveals them as the viewport scrolls.
type Page struct {
	// sections in layout order.
	sections []Section
	// tops holds the first row of every section.
	tops []int
	// height is the total number of rows.
	height int
}

// NewPage lays out sections in the given order.
func NewPage(sections ...Section) *Page {
	p := &Page{
		sections: sections,
		tops:     make([]int, len(sections)),
	}

	row := 0

	for i, section := range sections {
		p.tops[i] = row
		row += section.Height() + sectionGap
	}

	p.height = max(row-sectionGap, 0)

	return p
}

// Sections returns the sections in layout order.
func (p *Page) Sections() []Section {
	return p.sections
}

// Top returns the first row of section i.
func (p *Page) Top(i int) int {
	return p.tops[i]
}

// Height returns the total number of rows.
func (p *Page) Height() int {
	return p.height
}

// ClampOffset keeps a scroll offset within the page for the given viewport.
func (p *Page) ClampOffset(offset, viewportHeight int) int {
	limit := max(p.height-viewportHeight, 0)

	return min(max(offset, 0), limit)
}

// Scroll measures every element against the viewport starting at offset and
// feeds the entries to their triggers. It returns the number of elements
// revealed by this call.
func (p *Page) Scroll(ctx context.Context, now time.Time, offset, viewportHeight int) int {
	viewport := visibility.Rect{Top: offset, Height: viewportHeight}
	revealed := 0

	for i, section := range p.sections {
		for _, element := range section.Elements() {
			rect := visibility.Rect{
				Top:    p.tops[i] + element.Offset,
				Height: element.Height,
			}

			if element.Observe(now, visibility.Measure(rect, viewport)) {
				revealed++

				logger.DebugKV(ctx, "Element revealed",
					"section", section.Kind().String(),
					"element", element.Name,
				)
			}
		}
	}

	return revealed
}
