package landing

import (
	"context"
	"sync"
	"time"

	domain "github.com/oshokin/landing-motion/internal/domain/landing"
	"github.com/oshokin/landing-motion/internal/logger"
	"github.com/oshokin/landing-motion/internal/motion"
	"github.com/oshokin/landing-motion/internal/notify"
)

// Kind names a page section.
type Kind int

const (
	// KindHero is the opening banner.
	KindHero Kind = iota
	// KindStats is the animated statistics block.
	KindStats
	// KindServices lists the offered services.
	KindServices
	// KindGallery is the project carousel.
	KindGallery
	// KindTestimonials is the testimonial slider.
	KindTestimonials
	// KindCTA is the consultation form.
	KindCTA
	// KindFooter closes the page.
	KindFooter
)

// String returns the section name.
func (k Kind) String() string {
	switch k {
	case KindHero:
		return "hero"
	case KindStats:
		return "stats"
	case KindServices:
		return "services"
	case KindGallery:
		return "gallery"
	case KindTestimonials:
		return "testimonials"
	case KindCTA:
		return "cta"
	case KindFooter:
		return "footer"
	default:
		return "unknown"
	}
}

// Reveal thresholds per element.
const (
	heroThreshold     = 0
	headingThreshold  = 0.2
	statThreshold     = 0.5
	serviceThreshold  = 0.3
	ctaThreshold      = 0.3
	footerThreshold   = 0.2
	headingRows       = 3
	servicesPerRow    = 3
	serviceCardRows   = 4
	footerSectionRows = 6
)

// Section is one block of the page.
type Section interface {
	// Kind names the section.
	Kind() Kind
	// Height is the number of rows the section covers.
	Height() int
	// Elements are the observed blocks of the section in layout order.
	Elements() []*Element
}

// Hero is the opening banner. It is in view on load and animates immediately.
type Hero struct {
	// Content is the banner copy.
	Content domain.Hero
	// Banner reveals the whole banner.
	Banner *Element
}

// NewHero builds the banner section.
func NewHero(hero domain.Hero) *Hero {
	return &Hero{
		Content: hero,
		Banner:  newElement("hero", 0, 10, heroThreshold, motion.FadeUp()),
	}
}

// Kind implements Section.
func (h *Hero) Kind() Kind { return KindHero }

// Height implements Section.
func (h *Hero) Height() int { return h.Banner.Height }

// Elements implements Section.
func (h *Hero) Elements() []*Element { return []*Element{h.Banner} }

// Services lists service cards in rows; every row has its own trigger.
type Services struct {
	// Items are the listed services.
	Items []domain.Service
	// Heading reveals the section title.
	Heading *Element
	// Rows reveal the cards, servicesPerRow at a time.
	Rows []*Element
}

// NewServices builds the services section.
func NewServices(items []domain.Service) *Services {
	s := &Services{
		Items:   items,
		Heading: newElement("services heading", 0, headingRows, headingThreshold, motion.FadeUp()),
	}

	offset := headingRows + 1

	for i := 0; i < len(items); i += servicesPerRow {
		row := newElement("services row", offset, serviceCardRows, serviceThreshold,
			motion.FadeUp().WithDelay(motion.Stagger(0, motion.StaggerStep, len(s.Rows))))
		s.Rows = append(s.Rows, row)
		offset += serviceCardRows + 1
	}

	return s
}

// Kind implements Section.
func (s *Services) Kind() Kind { return KindServices }

// Height implements Section.
func (s *Services) Height() int {
	return headingRows + 1 + len(s.Rows)*(serviceCardRows+1)
}

// Elements implements Section.
func (s *Services) Elements() []*Element {
	return append([]*Element{s.Heading}, s.Rows...)
}

// Row returns the services shown in row i.
func (s *Services) Row(i int) []domain.Service {
	from := i * servicesPerRow
	if from >= len(s.Items) {
		return nil
	}

	return s.Items[from:min(from+servicesPerRow, len(s.Items))]
}

// CTA is the consultation form.
type CTA struct {
	// Budgets are the options of the budget selector.
	Budgets []string
	// Form reveals the form.
	Form *Element

	// notifier receives the acknowledgement.
	notifier notify.Notifier

	// mu guards submittedAt.
	mu sync.Mutex
	// submittedAt is the time of the last submission.
	submittedAt time.Time
}

// SubmittedFor is how long the form shows its acknowledged state.
const SubmittedFor = 3 * time.Second

// NewCTA builds the consultation section. A nil notifier drops acknowledgements.
func NewCTA(budgets []string, notifier notify.Notifier) *CTA {
	if notifier == nil {
		notifier = notify.Fanout(nil)
	}

	return &CTA{
		Budgets:  budgets,
		Form:     newElement("consultation form", 0, 10, ctaThreshold, motion.FadeUp()),
		notifier: notifier,
	}
}

// Kind implements Section.
func (c *CTA) Kind() Kind { return KindCTA }

// Height implements Section.
func (c *CTA) Height() int { return c.Form.Height }

// Elements implements Section.
func (c *CTA) Elements() []*Element { return []*Element{c.Form} }

// Submit records a consultation request and acknowledges it.
func (c *CTA) Submit(ctx context.Context, now time.Time) {
	c.mu.Lock()
	c.submittedAt = now
	c.mu.Unlock()

	logger.InfoKV(ctx, "Consultation requested")
	c.notifier.Notify(ctx, notify.ConsultationReceived)
}

// Submitted reports whether the form is still in its acknowledged state.
func (c *CTA) Submitted(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return !c.submittedAt.IsZero() && now.Sub(c.submittedAt) < SubmittedFor
}

// Footer closes the page.
type Footer struct {
	// Company is the company name.
	Company string
	// Contact is the contact block.
	Contact domain.Contact
	// Block reveals the footer.
	Block *Element
}

// NewFooter builds the footer.
func NewFooter(company string, contact domain.Contact) *Footer {
	return &Footer{
		Company: company,
		Contact: contact,
		Block:   newElement("footer", 0, footerSectionRows, footerThreshold, motion.FadeUp()),
	}
}

// Kind implements Section.
func (f *Footer) Kind() Kind { return KindFooter }

// Height implements Section.
func (f *Footer) Height() int { return f.Block.Height }

// Elements implements Section.
func (f *Footer) Elements() []*Element { return []*Element{f.Block} }
