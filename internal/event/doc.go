// Package event provides types and functions for managing maker event records.
//
// The event package handles event representation, date parsing, localized date
// display, and upcoming-window filtering. Each event is assigned a deterministic
// SHA1-based ID generated from its name, location, and start date, keeping IDs
// stable across runs for calendar export and announcements.
package event
