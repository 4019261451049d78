package event

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate attempts to parse a spreadsheet date cell into a time.Time.
// Returns time.Time{} (zero value) if parsing fails.
// Supports formats: "2025/8/2", "2025-8-2", "2025.8.2", "2025年8月2日"
func ParseDate(text string) time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}
	}

	// Try "2025/8/2" format (also matches zero-padded "2025/08/02")
	t, err := time.Parse("2006/1/2", text)
	if err == nil {
		return t
	}

	// Try "2025-8-2" format
	t, err = time.Parse("2006-1-2", text)
	if err == nil {
		return t
	}

	// Try "2025.8.2" format
	t, err = time.Parse("2006.1.2", text)
	if err == nil {
		return t
	}

	// Try "2025年8月2日" format
	t, err = time.Parse("2006年1月2日", text)
	if err == nil {
		return t
	}

	// Could not parse, return zero time
	return time.Time{}
}

// DateRange formats the event's dates for display, localized to the event's
// section: Japanese style for domestic events, English style otherwise.
// Returns "" when the start date is unknown.
func (e *Event) DateRange() string {
	start := e.Start
	if start.IsZero() {
		return ""
	}
	end := e.End
	if end.IsZero() {
		end = start
	}

	if e.Japan {
		switch {
		case end.Equal(start):
			return start.Format("2006年01月02日")
		case start.Year() == end.Year() && start.Month() == end.Month():
			return fmt.Sprintf("%s〜%02d日", start.Format("2006年01月02日"), end.Day())
		default:
			return start.Format("2006年01月02日") + "〜" + end.Format("01月02日")
		}
	}

	switch {
	case end.Equal(start):
		return start.Format("January 02, 2006")
	case start.Year() == end.Year() && start.Month() == end.Month():
		return fmt.Sprintf("%s-%02d, %d", start.Format("January 02"), end.Day(), start.Year())
	default:
		return fmt.Sprintf("%s - %s, %d", start.Format("January 02"), end.Format("January 02"), end.Year())
	}
}
