package preview

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/oshokin/landing-motion/internal/landing"
	"github.com/oshokin/landing-motion/internal/motion"
	"github.com/oshokin/landing-motion/internal/notify"
)

// Layout units per terminal cell when applying pose offsets.
const (
	unitsPerRow    = 10
	unitsPerColumn = 5
	ringPoints     = 20
	ringRadiusX    = 6
	ringRadiusY    = 3
	helpLine       = "↑/↓ PgUp/PgDn scroll  ←/→ projects  ,/. testimonials  1-9 jump  c consult  q quit"
)

//nolint:gochecknoglobals // Immutable palette.
var (
	styleText    = tcell.StyleDefault
	styleMuted   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleAccent  = tcell.StyleDefault.Foreground(tcell.GetColor("#C5A572")).Bold(true)
	styleHeading = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleStatus  = tcell.StyleDefault.Reverse(true)
)

// canvas clips drawing to the page area and shifts rows to a section's top.
type canvas struct {
	screen tcell.Screen
	// top is the screen row of the section's first row.
	top int
	// limit is the first screen row below the page area.
	limit int
	// width is the screen width.
	width int
}

// text draws s starting at the section-relative row and the given column.
// Wide runes take two cells; a wide rune that would straddle the edge is dropped.
func (c canvas) text(row, col int, s string, style tcell.Style) {
	y := c.top + row
	if y < 0 || y >= c.limit {
		return
	}

	x := col

	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}

		if x+w > c.width {
			return
		}

		if x >= 0 {
			c.screen.SetContent(x, y, r, nil, style)
		}

		x += w
	}
}

// centered draws s centered within [left, left+span).
func (c canvas) centered(row, left, span int, s string, style tcell.Style) {
	s = truncate(s, span)
	c.text(row, left+(span-runewidth.StringWidth(s))/2, s, style)
}

// posed draws centered text displaced and faded by pose. Invisible poses draw nothing.
func (c canvas) posed(row, left, span int, s string, style tcell.Style, pose motion.Pose) {
	if pose.Opacity <= 0 {
		return
	}

	if pose.Opacity < 0.5 {
		style = style.Dim(true)
	}

	row += int(math.Round(pose.OffsetY / unitsPerRow))
	left += int(math.Round(pose.OffsetX / unitsPerColumn))

	c.centered(row, left, span, s, style)
}

// draw renders one frame.
func (a *app) draw() {
	a.screen.Clear()

	width, height := a.screen.Size()
	limit := max(height-statusRows, 0)
	now := a.now()

	for i, section := range a.page.Sections() {
		top := a.page.Top(i) - a.offset
		if top >= limit || top+section.Height() <= 0 {
			continue
		}

		c := canvas{screen: a.screen, top: top, limit: limit, width: width}

		switch s := section.(type) {
		case *landing.Hero:
			drawHero(c, s, now)
		case *landing.Stats:
			drawStats(c, s, now)
		case *landing.Services:
			drawServices(c, s, now)
		case *landing.Gallery:
			drawGallery(c, s, now)
		case *landing.Testimonials:
			drawTestimonials(c, s, now)
		case *landing.CTA:
			drawCTA(c, s, now)
		case *landing.Footer:
			drawFooter(c, s, now)
		}
	}

	a.drawStatus(width, height)
	a.screen.Show()
}

// drawStatus fills the last row with the toast or the key help.
func (a *app) drawStatus(width, height int) {
	line := helpLine
	if message, ok := a.toast.Current(); ok {
		line = message
	}

	y := height - 1
	for x := range width {
		a.screen.SetContent(x, y, ' ', nil, styleStatus)
	}

	status := canvas{screen: a.screen, top: y, limit: height, width: width}
	status.text(0, 1, truncate(line, width-2), styleStatus)
}

func drawHero(c canvas, h *landing.Hero, now time.Time) {
	pose := h.Banner.Pose(now)

	c.posed(2, 0, c.width, h.Content.Headline, styleHeading, pose)
	c.posed(4, 0, c.width, h.Content.Tagline, styleAccent, pose)
	c.posed(7, 0, c.width, "[ "+h.Content.CallToAction+" ]", styleText, pose)
}

func drawStats(c canvas, s *landing.Stats, now time.Time) {
	heading := s.Heading.Pose(now)
	c.posed(0, 0, c.width, "Our Achievements", styleHeading, heading)
	c.posed(1, 0, c.width, "Numbers that speak for our commitment to excellence", styleMuted, heading)

	if len(s.Items) == 0 {
		return
	}

	span := c.width / len(s.Items)

	for i, item := range s.Items {
		pose := item.Card.Pose(now)
		if pose.Opacity <= 0 {
			continue
		}

		left := i * span
		offset := item.Card.Offset + int(math.Round(pose.OffsetY/unitsPerRow))
		center := left + span/2
		style := tcell.StyleDefault.Foreground(tcell.GetColor(item.Stat.Color))

		drawRing(c, offset+ringRadiusY, center, item.Ring.Filled(item.Progress()), style)
		c.centered(offset+ringRadiusY, left, span, item.Animator.Display(), styleHeading)
		c.centered(offset+2*ringRadiusY+2, left, span, item.Stat.Label, styleMuted)
	}
}

// drawRing plots the ring clockwise from the top, filling the given fraction.
func drawRing(c canvas, row, col int, filled float64, style tcell.Style) {
	lit := int(math.Round(filled * ringPoints))

	for k := range ringPoints {
		angle := 2*math.Pi*float64(k)/ringPoints - math.Pi/2
		y := row + int(math.Round(ringRadiusY*math.Sin(angle)))
		x := col + int(math.Round(ringRadiusX*math.Cos(angle)))

		glyph, glyphStyle := "·", styleMuted
		if k < lit {
			glyph, glyphStyle = "●", style
		}

		c.text(y, x, glyph, glyphStyle)
	}
}

func drawServices(c canvas, s *landing.Services, now time.Time) {
	heading := s.Heading.Pose(now)
	c.posed(0, 0, c.width, "Comprehensive Solutions", styleHeading, heading)
	c.posed(1, 0, c.width, "From concept to completion", styleMuted, heading)

	for i, row := range s.Rows {
		pose := row.Pose(now)
		items := s.Row(i)

		if len(items) == 0 {
			continue
		}

		span := c.width / len(items)

		for j, item := range items {
			left := j * span
			lines := wrap(item.Description, span-4, row.Height-1)

			c.posed(row.Offset, left, span, item.Title, styleAccent, pose)

			for k, line := range lines {
				c.posed(row.Offset+1+k, left, span, line, styleText, pose)
			}
		}
	}
}

func drawGallery(c canvas, g *landing.Gallery, now time.Time) {
	heading := g.Heading.Pose(now)
	c.posed(0, 0, c.width, "Our Masterpieces", styleHeading, heading)
	c.posed(1, 0, c.width, "Showcasing our finest work from around the world.", styleMuted, heading)

	window := g.Window()
	if len(window) == 0 || heading.Opacity <= 0 {
		return
	}

	span := c.width / len(window)

	for i, project := range window {
		pose := g.CardPose(now, i)
		left := i * span
		row := g.CardOffset()

		c.posed(row, left, span, strings.Repeat("─", max(span-4, 0)), styleMuted, pose)
		c.posed(row+2, left, span, project.Category, styleAccent, pose)
		c.posed(row+3, left, span, project.Title, styleHeading, pose)
		c.posed(row+5, left, span, project.Image, styleMuted, pose)
		c.posed(row+6, left, span, strings.Repeat("─", max(span-4, 0)), styleMuted, pose)
	}

	nav := fmt.Sprintf("←  %s  →", indicators(g.Indicators()))
	c.posed(g.NavOffset(), 0, c.width, nav, styleText, heading)
}

func drawTestimonials(c canvas, t *landing.Testimonials, now time.Time) {
	heading := t.Heading.Pose(now)
	c.posed(0, 0, c.width, "Loved by Clients", styleHeading, heading)

	if len(t.Highlights) > 0 {
		span := c.width / len(t.Highlights)

		for i, h := range t.Highlights {
			c.posed(t.HighlightOffset(), i*span, span, h.Value, styleAccent, heading)
			c.posed(t.HighlightOffset()+1, i*span, span, h.Label, styleMuted, heading)
		}
	}

	if heading.Opacity > 0 {
		slide := t.Slide(now)
		row := t.SlideOffset()
		quote := slide.Testimonial

		c.posed(row, 0, c.width, stars(quote.Rating), styleAccent, slide.Pose)

		for k, line := range wrap("“"+quote.Text+"”", min(c.width-8, 90), 4) {
			c.posed(row+1+k, 0, c.width, line, styleText, slide.Pose)
		}

		c.posed(row+6, 0, c.width, quote.Initials+"  "+quote.Name+", "+quote.Role, styleMuted, slide.Pose)
		c.posed(t.NavOffset(), 0, c.width, ",  "+indicators(t.Indicators())+"  .", styleText, heading)
	}

	cards := t.Static()
	if len(cards) == 0 {
		return
	}

	pose := t.Cards.Pose(now)
	span := c.width / len(cards)

	for i, card := range cards {
		left := i * span
		row := t.Cards.Offset

		c.posed(row, left, span, stars(card.Rating), styleAccent, pose)

		for k, line := range wrap(card.Text, span-4, t.Cards.Height-2) {
			c.posed(row+1+k, left, span, line, styleMuted, pose)
		}

		c.posed(row+t.Cards.Height-1, left, span, card.Name, styleText, pose)
	}
}

func drawCTA(c canvas, s *landing.CTA, now time.Time) {
	pose := s.Form.Pose(now)

	c.posed(0, 0, c.width, "Book a Consultation", styleHeading, pose)
	c.posed(1, 0, c.width, "Fill out the form and we'll get back to you within 24 hours", styleMuted, pose)
	c.posed(3, 0, c.width, "Budget: "+strings.Join(s.Budgets, " | "), styleText, pose)

	if s.Submitted(now) {
		c.posed(6, 0, c.width, "✓ "+notify.ConsultationReceived, styleAccent, pose)

		return
	}

	c.posed(6, 0, c.width, "[ press c to request a consultation ]", styleAccent, pose)
}

func drawFooter(c canvas, f *landing.Footer, now time.Time) {
	pose := f.Block.Pose(now)

	c.posed(1, 0, c.width, f.Company, styleAccent, pose)
	c.posed(2, 0, c.width, f.Contact.Address, styleMuted, pose)
	c.posed(3, 0, c.width, f.Contact.Phone+"  ·  "+f.Contact.Email, styleText, pose)
}

// indicators renders one dot per item, the current one filled.
func indicators(current []bool) string {
	var b strings.Builder

	for i, on := range current {
		if i > 0 {
			b.WriteRune(' ')
		}

		if on {
			b.WriteRune('●')
		} else {
			b.WriteRune('○')
		}
	}

	return b.String()
}

// stars renders a rating out of five.
func stars(rating int) string {
	rating = min(max(rating, 0), 5)

	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// truncate shortens s to at most width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}

	return runewidth.Truncate(s, width, "…")
}

// wrap breaks s into at most maxLines lines of at most width cells.
// The last line is truncated when the text does not fit.
func wrap(s string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 {
		return nil
	}

	var (
		lines   []string
		current string
	)

	for _, word := range strings.Fields(s) {
		switch {
		case current == "":
			current = word
		case runewidth.StringWidth(current)+1+runewidth.StringWidth(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}

	if current != "" {
		lines = append(lines, current)
	}

	if len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = truncate(lines[maxLines-1]+" …", width)
	}

	for i, line := range lines {
		lines[i] = truncate(line, width)
	}

	return lines
}
