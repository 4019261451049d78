package sheet

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/shinichi-ohki/maker-events/internal/event"
	"github.com/shinichi-ohki/maker-events/internal/region"
)

const (
	// DefaultSheetURL is the public spreadsheet the site is generated from
	DefaultSheetURL = "https://docs.google.com/spreadsheets/d/1a2XqNp01q6hFiyyFjq5hMlYGV66Z9UeOHZP4snSXaz0/edit?gid=0#gid=0"
	UserAgent       = "maker-events-cli/1.0 (github.com/shinichi-ohki/maker-events)"
	Timeout         = 30 * time.Second
)

var sheetIDRe = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// ExportURL converts a Google Sheets URL into its CSV export form.
// URLs that do not point at a spreadsheet pass through unchanged.
func ExportURL(sheetURL string) string {
	if !strings.Contains(sheetURL, "docs.google.com/spreadsheets") {
		return sheetURL
	}
	m := sheetIDRe.FindStringSubmatch(sheetURL)
	if m == nil {
		return sheetURL
	}
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv", m[1])
}

// Client handles fetching and parsing maker events from the spreadsheet
type Client struct {
	client     *http.Client
	url        string
	classifier *region.Classifier
}

// New creates a Client for the given spreadsheet URL
func New(sheetURL string, classifier *region.Classifier) *Client {
	return &Client{
		client: &http.Client{
			Timeout: Timeout,
		},
		url:        sheetURL,
		classifier: classifier,
	}
}

// FetchEvents downloads the spreadsheet as CSV and parses the event rows
func (c *Client) FetchEvents() ([]*event.Event, error) {
	req, err := http.NewRequest("GET", ExportURL(c.url), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching spreadsheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return c.parseCSV(resp.Body)
}
