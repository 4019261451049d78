// Package ogpcard composes the 1200x630 social preview image embedded in
// the generated page's OGP tags.
//
// The image is a gantt-style timeline of the next events: one row per
// event, markers positioned horizontally by start date, domestic and
// international events in distinct colors, month boundaries separated by
// vertical rules.
package ogpcard

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"time"

	"golang.org/x/image/font"

	"github.com/shinichi-ohki/maker-events/internal/event"
	"github.com/shinichi-ohki/maker-events/internal/fontpack"
)

const (
	Width  = 1200
	Height = 630

	headerHeight   = 80
	chartStartY    = headerHeight + 20
	chartBottomPad = 40
	rowHeight      = 40

	// MaxEvents caps how many rows fit on the timeline
	MaxEvents = 12

	timelineStartX = 200
	timelineEndPad = 50

	dotRadius  = 8
	pillExtend = 8
)

const cardTitle = "Upcoming Maker Events Timeline"

// Card composes the social preview timeline image
type Card struct {
	fonts *fontpack.Pack
	now   func() time.Time
}

// New creates a Card drawing with faces from the given pack
func New(fonts *fontpack.Pack) *Card {
	return &Card{
		fonts: fonts,
		now:   time.Now,
	}
}

// Render draws the timeline for up to MaxEvents events, in the order
// given, and returns the encoded PNG.
func (c *Card) Render(events []*event.Event) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	fillRect(img, img.Bounds(), colorBackground)

	titleFace := c.fonts.Face(36)
	eventFace := c.fonts.Face(20)
	dateFace := c.fonts.Face(16)
	statsFace := c.fonts.Face(18)

	// Header band with the headline
	fillRect(img, image.Rect(0, 0, Width, headerHeight), colorHeader)
	titleX := (Width - font.MeasureString(titleFace, cardTitle).Ceil()) / 2
	drawTextHeavy(img, cardTitle, titleX, 25, colorWhite, titleFace)

	display := events
	if len(display) > MaxEvents {
		display = display[:MaxEvents]
	}
	placeable := make([]*event.Event, 0, len(display))
	for _, e := range display {
		if !e.Start.IsZero() {
			placeable = append(placeable, e)
		}
	}

	if len(placeable) == 0 {
		msg := "No upcoming events scheduled"
		msgX := (Width - font.MeasureString(eventFace, msg).Ceil()) / 2
		drawText(img, msg, msgX, Height/2, colorMuted, eventFace)
	} else {
		c.drawTimeline(img, placeable, eventFace, dateFace)
	}

	footer := "Generated: " + c.now().Format("2006-01-02 15:04")
	drawText(img, footer, 20, Height-30, colorMuted, statsFace)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}
	return buf.Bytes(), nil
}

// drawTimeline lays the events out on the chart area
func (c *Card) drawTimeline(img *image.RGBA, events []*event.Event, eventFace, dateFace font.Face) {
	chartHeight := Height - chartStartY - chartBottomPad
	maxRows := chartHeight / rowHeight

	earliest := events[0].Start
	latest := events[0].Start
	for _, e := range events[1:] {
		if e.Start.Before(earliest) {
			earliest = e.Start
		}
		if e.Start.After(latest) {
			latest = e.Start
		}
	}
	rangeDays := daysBetween(earliest, latest)
	if rangeDays == 0 {
		rangeDays = 1
	}

	timelineWidth := Width - timelineStartX - timelineEndPad

	// Vertical rule and label where a new month begins
	currentMonth := ""
	for _, e := range events {
		x := timelineStartX + daysBetween(earliest, e.Start)*timelineWidth/rangeDays
		month := e.Start.Format("2006-01")
		if month == currentMonth {
			continue
		}
		currentMonth = month
		fillRect(img, image.Rect(x, chartStartY, x+2, Height-chartBottomPad), colorHeader)
		drawTextBold(img, e.Start.Format("01月"), x+5, chartStartY-15, colorMuted, dateFace)
	}

	for i, e := range events {
		x := timelineStartX + daysBetween(earliest, e.Start)*timelineWidth/rangeDays
		y := chartStartY + (i%maxRows)*rowHeight

		barColor := colorInternational
		if e.Japan {
			barColor = colorJapan
		}

		// Multi-day events draw a pill spanning wider than the dot,
		// single days a plain circle; both get a white outline
		if multiDay(e) {
			outer := image.Rect(x-dotRadius-pillExtend, y+10, x+dotRadius+pillExtend, y+26)
			fillCapsule(img, outer, colorWhite)
			fillCapsule(img, outer.Inset(2), barColor)
		} else {
			fillCircle(img, x, y+18, dotRadius, colorWhite)
			fillCircle(img, x, y+18, dotRadius-2, barColor)
		}

		drawTextBold(img, truncateName(e.Name), 20, y+12, colorWhite, eventFace)
		drawTextBold(img, shortDateRange(e), x+15, y+12, colorMuted, dateFace)
	}
}

// multiDay reports whether the event spans more than one day
func multiDay(e *event.Event) bool {
	return !e.End.IsZero() && !e.End.Equal(e.Start)
}

// daysBetween counts whole days from a to b
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// shortDateRange renders the compact date label drawn beside each marker
func shortDateRange(e *event.Event) string {
	if e.Start.IsZero() {
		return "TBD"
	}
	if multiDay(e) {
		if e.Start.Month() == e.End.Month() {
			return fmt.Sprintf("%s-%s", e.Start.Format("01/02"), e.End.Format("02"))
		}
		return fmt.Sprintf("%s-%s", e.Start.Format("01/02"), e.End.Format("01/02"))
	}
	return e.Start.Format("01/02")
}

// truncateName trims long event names so they fit the label column
func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= 25 {
		return name
	}
	return string(runes[:22]) + "..."
}
