// Package calendar emits the iCalendar feed published alongside the page.
package calendar

import (
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/shinichi-ohki/maker-events/internal/event"
)

const (
	prodID    = "-//Maker Events//maker-events//JA"
	uidSuffix = "@maker-events"
	calName   = "Upcoming Maker Events"
)

// Generate builds an iCalendar document with one all-day entry per
// event. Events without a parsed start date are skipped; now stamps each
// entry's DTSTAMP.
func Generate(events []*event.Event, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(prodID)
	cal.SetCalscale("GREGORIAN")
	cal.SetXWRCalName(calName)
	cal.SetXWRTimezone("Asia/Tokyo")

	for _, e := range events {
		if e.Start.IsZero() {
			continue
		}

		entry := cal.AddEvent(e.ID + uidSuffix)
		entry.SetDtStampTime(now.UTC())
		entry.SetCreatedTime(now.UTC())
		entry.SetModifiedAt(now.UTC())
		entry.SetAllDayStartAt(e.Start)
		entry.SetAllDayEndAt(endExclusive(e))
		entry.SetSummary(e.Name)
		entry.SetStatus(ics.ObjectStatusConfirmed)
		entry.SetTimeTransparency(ics.TransparencyOpaque)
		if e.Location != "" {
			entry.SetLocation(e.Location)
		}
		if desc := entryDescription(e); desc != "" {
			entry.SetDescription(desc)
		}
		if e.URL != "" {
			entry.SetURL(e.URL)
		}
	}

	return cal.Serialize()
}

// entryDescription folds the event details into a single line. Values are
// stored verbatim by the serializer, so embedded newlines would break the
// line-oriented format.
func entryDescription(e *event.Event) string {
	var parts []string
	for _, part := range []string{e.Location, e.Country, e.Description, e.URL} {
		part = strings.ReplaceAll(part, "\n", " ")
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " / ")
}

// endExclusive returns the day after the event's last day, per the
// iCalendar convention that an all-day DTEND is non-inclusive
func endExclusive(e *event.Event) time.Time {
	last := e.Start
	if !e.End.IsZero() {
		last = e.End
	}
	return last.AddDate(0, 0, 1)
}
