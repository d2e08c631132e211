package landing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oshokin/landing-motion/internal/carousel"
	domain "github.com/oshokin/landing-motion/internal/domain/landing"
	"github.com/oshokin/landing-motion/internal/logger"
	"github.com/oshokin/landing-motion/internal/motion"
)

const (
	// StaticTestimonials is the number of testimonials also shown as cards.
	StaticTestimonials = 3

	highlightOffset   = headingRows
	highlightRows     = 2
	slideOffset       = highlightOffset + highlightRows + 1
	slideRows         = 7
	sliderNavOffset   = slideOffset + slideRows
	sliderNavRows     = 2
	testimonialOffset = sliderNavOffset + sliderNavRows + 1
	testimonialRows   = 5
)

// Slide is the sampled state of the testimonial slider. While a change is in
// flight the outgoing testimonial exits first and the incoming one enters after.
type Slide struct {
	// Testimonial is the one to draw now.
	Testimonial domain.Testimonial
	// Pose is where to draw it.
	Pose motion.Pose
	// Leaving is set while the previous testimonial is still exiting.
	Leaving bool
}

// Testimonials is the single-slide testimonial carousel with highlights and cards.
type Testimonials struct {
	// Heading reveals the title, highlights and slider.
	Heading *Element
	// Cards reveals the static testimonial cards.
	Cards *Element
	// Highlights are the summary figures.
	Highlights []domain.Stat

	// slider holds the current testimonial.
	slider *carousel.Controller[domain.Testimonial]

	// mu guards changedAt and previous.
	mu sync.Mutex
	// changedAt is when the slide last changed.
	changedAt time.Time
	// previous is the testimonial shown before the last change.
	previous domain.Testimonial
}

// NewTestimonials builds the section. It fails when there are no testimonials.
func NewTestimonials(testimonials []domain.Testimonial, highlights []domain.Stat) (*Testimonials, error) {
	slider, err := carousel.New(testimonials)
	if err != nil {
		return nil, fmt.Errorf("testimonials: %w", err)
	}

	return &Testimonials{
		Heading: newElement("testimonials", 0, sliderNavOffset+sliderNavRows, headingThreshold, motion.FadeUp()),
		Cards: newElement("testimonial cards", testimonialOffset, testimonialRows, headingThreshold,
			motion.FadeUp().WithDelay(motion.StaggerStep)),
		Highlights: highlights,
		slider:     slider,
	}, nil
}

// Kind implements Section.
func (t *Testimonials) Kind() Kind { return KindTestimonials }

// Height implements Section.
func (t *Testimonials) Height() int { return testimonialOffset + testimonialRows }

// Elements implements Section.
func (t *Testimonials) Elements() []*Element { return []*Element{t.Heading, t.Cards} }

// HighlightOffset is the first row of the highlights relative to the section.
func (t *Testimonials) HighlightOffset() int { return highlightOffset }

// SlideOffset is the first row of the slide relative to the section.
func (t *Testimonials) SlideOffset() int { return slideOffset }

// NavOffset is the first row of the slider controls relative to the section.
func (t *Testimonials) NavOffset() int { return sliderNavOffset }

// Index returns the current testimonial index.
func (t *Testimonials) Index() int { return t.slider.Index() }

// Len returns the number of testimonials.
func (t *Testimonials) Len() int { return t.slider.Len() }

// Current returns the testimonial on the slide.
func (t *Testimonials) Current() domain.Testimonial { return t.slider.Current() }

// Indicators marks the current testimonial among all of them.
func (t *Testimonials) Indicators() []bool { return t.slider.Indicators() }

// Transition is the fixed slide direction.
func (t *Testimonials) Transition() carousel.Transition { return carousel.SlideTransition() }

// Static returns the testimonials shown as cards below the slider.
func (t *Testimonials) Static() []domain.Testimonial {
	items := t.slider.Items()

	return items[:min(StaticTestimonials, len(items))]
}

// Next moves to the following testimonial.
func (t *Testimonials) Next(ctx context.Context, now time.Time) int {
	return t.move(ctx, now, func() (int, error) { return t.slider.Next(), nil })
}

// Previous moves to the preceding testimonial.
func (t *Testimonials) Previous(ctx context.Context, now time.Time) int {
	return t.move(ctx, now, func() (int, error) { return t.slider.Previous(), nil })
}

// JumpTo selects testimonial i. Out of range indices are rejected.
func (t *Testimonials) JumpTo(ctx context.Context, now time.Time, i int) error {
	var err error

	t.move(ctx, now, func() (int, error) {
		err = t.slider.JumpTo(i)

		return i, err
	})

	if err != nil {
		return fmt.Errorf("testimonials: %w", err)
	}

	return nil
}

// Slide samples the slider at now.
func (t *Testimonials) Slide(now time.Time) Slide {
	t.mu.Lock()
	changedAt, previous := t.changedAt, t.previous
	t.mu.Unlock()

	current := t.slider.Current()

	if changedAt.IsZero() {
		return Slide{Testimonial: current, Pose: t.Heading.Pose(now)}
	}

	exit := motion.SlideOut()
	elapsed := now.Sub(changedAt)

	if !exit.Done(elapsed) {
		return Slide{Testimonial: previous, Pose: exit.At(elapsed), Leaving: true}
	}

	return Slide{Testimonial: current, Pose: motion.SlideIn(0).At(elapsed - exit.Total())}
}

// move applies step and starts the transition when the slide changed.
func (t *Testimonials) move(ctx context.Context, now time.Time, step func() (int, error)) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	before := t.slider.Current()
	beforeIndex := t.slider.Index()

	index, err := step()
	if err != nil || index == beforeIndex {
		return t.slider.Index()
	}

	t.previous = before
	t.changedAt = now

	logger.DebugKV(ctx, "Testimonial changed", "index", index)

	return index
}
