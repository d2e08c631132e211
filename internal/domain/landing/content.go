package landing

import "slices"

// Stat is one headline statistic such as "1,200+ Projects Completed".
type Stat struct {
	// Value is the display string the counter animates to.
	Value string `yaml:"value"`
	// Label is the caption under the ring.
	Label string `yaml:"label"`
	// Color is the accent color as a hex string.
	Color string `yaml:"color"`
}

// Service is one offered service card.
type Service struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Project is one card of the project gallery.
type Project struct {
	// Title is the project name.
	Title string `yaml:"title"`
	// Category is the small label above the title.
	Category string `yaml:"category"`
	// Image is the photo URL; the image loader substitutes a fallback on failure.
	Image string `yaml:"image"`
}

// Testimonial is one client quote of the testimonial slider.
type Testimonial struct {
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Text     string `yaml:"text"`
	Rating   int    `yaml:"rating"`
	Initials string `yaml:"initials"`
}

// Hero is the copy of the top section.
type Hero struct {
	Headline     string `yaml:"headline"`
	Tagline      string `yaml:"tagline"`
	CallToAction string `yaml:"call_to_action"`
}

// Contact is the footer and call-to-action contact block.
type Contact struct {
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email"`
	Address string `yaml:"address"`
}

// Content is everything the landing page displays.
type Content struct {
	Company      string        `yaml:"company"`
	Hero         Hero          `yaml:"hero"`
	Stats        []Stat        `yaml:"stats"`
	Services     []Service     `yaml:"services"`
	Projects     []Project     `yaml:"projects"`
	Testimonials []Testimonial `yaml:"testimonials"`
	// Highlights are the summary figures above the testimonial slider.
	Highlights []Stat   `yaml:"highlights"`
	Contact    Contact  `yaml:"contact"`
	Budgets    []string `yaml:"budgets"`
}

// Clone returns a copy that shares no slices with c.
func (c *Content) Clone() *Content {
	if c == nil {
		return nil
	}

	cloned := *c
	cloned.Stats = slices.Clone(c.Stats)
	cloned.Services = slices.Clone(c.Services)
	cloned.Projects = slices.Clone(c.Projects)
	cloned.Testimonials = slices.Clone(c.Testimonials)
	cloned.Highlights = slices.Clone(c.Highlights)
	cloned.Budgets = slices.Clone(c.Budgets)

	return &cloned
}
