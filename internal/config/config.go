// Package config holds the runtime settings for a generation run.
//
// Settings come from defaults, then MAKER_EVENTS_* environment variables,
// then command line flags, in that order. The commands load a .env file
// best-effort before Load runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shinichi-ohki/maker-events/internal/enrich"
	"github.com/shinichi-ohki/maker-events/internal/sheet"
)

const (
	// DefaultBaseURL is where the generated site is published
	DefaultBaseURL = "https://shinichi-ohki.github.io/maker_event/"

	// DefaultDaysAhead bounds the listing window
	DefaultDaysAhead = 730
)

// Config carries the settings for one generation run
type Config struct {
	// Sheet settings
	SheetURL string

	// Site settings
	BaseURL   string
	OutputDir string

	// Listing window in days from today
	DaysAhead int

	// Enrichment settings
	ScrapeDelay time.Duration
	UserAgent   string

	// Optional country mapping YAML path
	CountryMapping string
}

// Load builds a Config from defaults and MAKER_EVENTS_* environment
// variables
func Load() *Config {
	cfg := &Config{
		SheetURL:    sheet.DefaultSheetURL,
		BaseURL:     DefaultBaseURL,
		OutputDir:   ".",
		DaysAhead:   DefaultDaysAhead,
		ScrapeDelay: enrich.DefaultDelay,
		UserAgent:   enrich.UserAgent,
	}

	if v := os.Getenv("MAKER_EVENTS_SHEET_URL"); v != "" {
		cfg.SheetURL = v
	}
	if v := os.Getenv("MAKER_EVENTS_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("MAKER_EVENTS_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("MAKER_EVENTS_DAYS_AHEAD"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.DaysAhead = val
		}
	}
	if v := os.Getenv("MAKER_EVENTS_SCRAPE_DELAY_MS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val >= 0 {
			cfg.ScrapeDelay = time.Duration(val) * time.Millisecond
		}
	}
	if v := os.Getenv("MAKER_EVENTS_COUNTRY_MAPPING"); v != "" {
		cfg.CountryMapping = v
	}
	if v := os.Getenv("MAKER_EVENTS_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}

	return cfg
}

// Validate reports configuration errors that make a run impossible
func (c *Config) Validate() error {
	if c.SheetURL == "" {
		return fmt.Errorf("sheet URL is required")
	}
	if c.DaysAhead <= 0 {
		return fmt.Errorf("days ahead must be positive, got %d", c.DaysAhead)
	}
	return nil
}
