package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Summary describes one generation run, printed to stdout when the run
// finishes
type Summary struct {
	GeneratedAt         time.Time         `json:"generated_at"`
	TotalEvents         int               `json:"total_events"`
	JapanEvents         int               `json:"japan_events"`
	InternationalEvents int               `json:"international_events"`
	ImagesFound         int               `json:"images_found"`
	ImagesSkipped       bool              `json:"images_skipped,omitempty"`
	Artifacts           map[string]string `json:"artifacts"`
}

// WriteOutput writes the summary in the specified format
func WriteOutput(w io.Writer, result *Summary, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the summary as JSON
func writeJSON(w io.Writer, result *Summary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs the summary as human-readable text
func writeText(w io.Writer, result *Summary, verbose bool) error {
	if result.TotalEvents == 0 {
		fmt.Fprintln(w, "No upcoming events; generated an empty listing.")
	} else {
		fmt.Fprintf(w, "Generated listing with %d upcoming events (%d in Japan, %d international)\n",
			result.TotalEvents, result.JapanEvents, result.InternationalEvents)
	}

	if result.ImagesSkipped {
		fmt.Fprintln(w, "Thumbnails: skipped")
	} else {
		fmt.Fprintf(w, "Thumbnails: %d found\n", result.ImagesFound)
	}

	if len(result.Artifacts) > 0 {
		fmt.Fprintln(w, "Artifacts:")
		names := make([]string, 0, len(result.Artifacts))
		for name := range result.Artifacts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "  %s: %s\n", name, result.Artifacts[name])
		}
	}

	if verbose {
		fmt.Fprintf(w, "Generated at: %s\n", result.GeneratedAt.Format(time.RFC3339))
	}

	return nil
}
