package event

import (
	"sort"
	"strings"
	"time"
)

// FilterUpcoming returns events that have not yet ended as of now and that
// start within horizonDays from now (horizonDays <= 0 disables the horizon).
// An event still counts as upcoming on its last day. Events without a
// parseable start date are dropped: they cannot be placed on the timeline.
func FilterUpcoming(events []*Event, now time.Time, horizonDays int) []*Event {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var cutoff time.Time
	if horizonDays > 0 {
		cutoff = now.AddDate(0, 0, horizonDays)
	}

	var upcoming []*Event
	for _, e := range events {
		if e.Start.IsZero() {
			continue
		}
		end := e.End
		if end.IsZero() {
			end = e.Start
		}
		if end.Before(today) {
			continue // already over
		}
		if !cutoff.IsZero() && e.Start.After(cutoff) {
			continue // too far out
		}
		upcoming = append(upcoming, e)
	}
	return upcoming
}

// SortByDate sorts events in place by start date ascending. Events without a
// parseable date sort last; ties break by name.
func SortByDate(events []*Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return compareByDate(events[i], events[j])
	})
}

// compareByDate reports whether event i should come before event j
func compareByDate(i, j *Event) bool {
	// If both dates are valid, compare them
	if !i.Start.IsZero() && !j.Start.IsZero() {
		if !i.Start.Equal(j.Start) {
			return i.Start.Before(j.Start)
		}
		return strings.ToLower(i.Name) < strings.ToLower(j.Name)
	}

	// If only one date is valid, put the valid one first
	if !i.Start.IsZero() {
		return true
	}
	if !j.Start.IsZero() {
		return false
	}

	// Neither has a valid date, sort by name
	return strings.ToLower(i.Name) < strings.ToLower(j.Name)
}

// Split partitions events into domestic (Japan) and international slices,
// preserving order.
func Split(events []*Event) (japan, international []*Event) {
	for _, e := range events {
		if e.Japan {
			japan = append(japan, e)
		} else {
			international = append(international, e)
		}
	}
	return japan, international
}
