package content

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/landing-motion/internal/counter"
	domain "github.com/oshokin/landing-motion/internal/domain/landing"
	"github.com/oshokin/landing-motion/internal/logger"
)

// MaxRating is the number of stars a testimonial can show.
const MaxRating = 5

//go:embed default.yaml
var defaultContent []byte

var (
	// errNoProjects is returned when the gallery would be empty.
	errNoProjects = errors.New("content must list at least one project")
	// errNoTestimonials is returned when the slider would be empty.
	errNoTestimonials = errors.New("content must list at least one testimonial")
	// errBadRating is returned for ratings outside [0, MaxRating].
	errBadRating = errors.New("testimonial rating out of range")
)

// Default returns the embedded production content.
func Default() *domain.Content {
	c, err := Decode(defaultContent)
	if err != nil {
		// The embedded file is part of the binary; failing here is a build defect.
		panic(fmt.Sprintf("decode embedded content: %v", err))
	}

	return c
}

// Load reads content from path, or returns the embedded default when path is empty.
// Statistics whose value has no leading number are kept and reported as warnings:
// their counters stay at zero.
func Load(ctx context.Context, path string) (*domain.Content, error) {
	if path == "" {
		c := Default()
		warnInert(ctx, c)

		return c, nil
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}

	c, err := Decode(contents)
	if err != nil {
		return nil, err
	}

	warnInert(ctx, c)

	return c, nil
}

// Decode parses and validates YAML content.
func Decode(contents []byte) (*domain.Content, error) {
	var c domain.Content
	if err := yaml.Unmarshal(contents, &c); err != nil {
		return nil, fmt.Errorf("unmarshal content: %w", err)
	}

	if err := Validate(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks that both carousels have items and that ratings fit the stars.
func Validate(c *domain.Content) error {
	if len(c.Projects) == 0 {
		return errNoProjects
	}

	if len(c.Testimonials) == 0 {
		return errNoTestimonials
	}

	for _, t := range c.Testimonials {
		if t.Rating < 0 || t.Rating > MaxRating {
			return fmt.Errorf("%w: %s has %d", errBadRating, t.Name, t.Rating)
		}
	}

	return nil
}

// InertStats returns the labels of statistics whose value cannot be animated.
func InertStats(c *domain.Content) []string {
	var labels []string

	for _, s := range c.Stats {
		if _, err := counter.Parse(s.Value); err != nil {
			labels = append(labels, s.Label)
		}
	}

	return labels
}

// warnInert logs every statistic that will stay at zero.
func warnInert(ctx context.Context, c *domain.Content) {
	for _, label := range InertStats(c) {
		logger.WarnKV(ctx, "Statistic has no leading number and will not animate", "label", label)
	}
}
