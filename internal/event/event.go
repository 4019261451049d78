package event

import (
	"crypto/sha1"
	"fmt"
	"time"
)

// Event represents a maker event sourced from the spreadsheet
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Region      string    `json:"region,omitempty"`
	Country     string    `json:"country"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	DateFrom    string    `json:"date_from"`
	DateTo      string    `json:"date_to,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Japan       bool      `json:"japan"`
}

// GenerateID creates a deterministic ID for an event based on stable fields
func GenerateID(name, location, dateFrom string) string {
	h := sha1.New()
	h.Write([]byte(name + "|" + location + "|" + dateFrom))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// New creates a new Event with ID, Start, and End populated.
// Country, Japan, and the optional fields are filled in by the caller.
func New(name, location, region, dateFrom, dateTo string) *Event {
	return &Event{
		ID:       GenerateID(name, location, dateFrom),
		Name:     name,
		Location: location,
		Region:   region,
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Start:    ParseDate(dateFrom),
		End:      ParseDate(dateTo),
	}
}
