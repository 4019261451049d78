package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shinichi-ohki/maker-events/internal/event"
	"github.com/shinichi-ohki/maker-events/internal/region"
)

// Spreadsheet column headers
const (
	colName        = "名称"
	colLocation    = "場所"
	colRegion      = "地域"
	colDateFrom    = "から"
	colDateTo      = "まで"
	colURL         = "URL"
	colDescription = "備考"
)

// parseCSV converts spreadsheet rows into events
func (c *Client) parseCSV(r io.Reader) ([]*event.Event, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows may be ragged

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}

	events := make([]*event.Event, 0)
	if len(rows) == 0 {
		return events, nil
	}

	// Google Sheets puts a UTF-8 BOM on the first cell
	rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")

	col := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		col[strings.TrimSpace(h)] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	currentYear := 0
	for _, row := range rows[1:] {
		name := field(row, colName)
		location := field(row, colLocation)
		regionText := field(row, colRegion)
		dateFrom := field(row, colDateFrom)
		dateTo := field(row, colDateTo)

		// Year header rows like "2025年" set the year for the rows below
		if strings.HasSuffix(name, "年") && location == "" && dateFrom == "" {
			if year, err := strconv.Atoi(strings.TrimSuffix(name, "年")); err == nil {
				currentYear = year
			}
			continue
		}

		if name == "" || location == "" {
			continue
		}

		// Rows above the first year header fall back to the current year
		if currentYear == 0 {
			currentYear = time.Now().Year()
		}

		displayLocation := location
		if regionText != "" {
			displayLocation = location + ", " + regionText
		}

		evt := event.New(name, displayLocation, regionText, withYear(dateFrom, currentYear), withYear(dateTo, currentYear))
		evt.URL = field(row, colURL)
		evt.Description = field(row, colDescription)
		evt.Country = "Japan"
		if regionText != "" {
			evt.Country = c.classifier.Country(regionText)
		}
		evt.Japan = region.IsJapan(evt.Country)
		events = append(events, evt)
	}

	return events, nil
}

// withYear prefixes the year onto month/day cells like "8/2". Cells that
// already carry a year pass through unchanged.
func withYear(date string, year int) string {
	if date == "" {
		return ""
	}
	if strings.Count(date, "/") >= 2 {
		return date
	}
	return fmt.Sprintf("%d/%s", year, date)
}
