package counter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultSteps is the number of ticks an animation is split into.
	DefaultSteps = 50
	// DefaultInterval is the delay between two ticks.
	DefaultInterval = 30 * time.Millisecond
	// groupSeparator separates thousands in both input and output.
	groupSeparator = ','
)

var (
	// ErrNoDigits is returned when a display string has no leading number.
	ErrNoDigits = errors.New("display string has no leading digits")
	// errEmptyDisplay is returned for blank display strings.
	errEmptyDisplay = errors.New("display string is empty")
)

// Spec is a parsed statistic: its magnitude and the characters that follow it.
type Spec struct {
	// Target is the magnitude the animation counts up to.
	Target int64
	// Suffix is appended verbatim to every displayed value, e.g. "+" or "%".
	Suffix string
}

// Parse splits a display string into its magnitude and suffix.
// The magnitude is the maximal leading run of digits and ',' separators; the
// rest of the string is the suffix. Surrounding whitespace is ignored.
func Parse(display string) (Spec, error) {
	display = strings.TrimSpace(display)
	if display == "" {
		return Spec{}, errEmptyDisplay
	}

	var (
		end    int
		digits strings.Builder
	)

	for end < len(display) {
		c := display[end]
		if c >= '0' && c <= '9' {
			digits.WriteByte(c)
		} else if c != groupSeparator {
			break
		}

		end++
	}

	if digits.Len() == 0 {
		return Spec{}, fmt.Errorf("%w: %q", ErrNoDigits, display)
	}

	target, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return Spec{}, fmt.Errorf("parse magnitude of %q: %w", display, err)
	}

	return Spec{
		Target: target,
		Suffix: display[end:],
	}, nil
}

// Format renders value with thousands separators followed by the spec's suffix.
func (s Spec) Format(value int64) string {
	return Group(value) + s.Suffix
}

// Group renders a non-negative integer with ',' between groups of three digits.
func Group(value int64) string {
	raw := strconv.FormatInt(value, 10)

	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign, raw = "-", raw[1:]
	}

	if len(raw) <= 3 {
		return sign + raw
	}

	var b strings.Builder

	b.Grow(len(raw) + len(raw)/3)
	b.WriteString(sign)

	head := len(raw) % 3
	if head > 0 {
		b.WriteString(raw[:head])
	}

	for i := head; i < len(raw); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(groupSeparator)
		}

		b.WriteString(raw[i : i+3])
	}

	return b.String()
}
