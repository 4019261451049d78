package site

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shinichi-ohki/maker-events/internal/event"
)

// Artifact file names within the output directory
const (
	IndexFile    = "index.html"
	ImageFile    = "ogp_image.png"
	EventsFile   = "events.json"
	CalendarFile = "events.ics"
)

// Writer persists the generated artifacts into the output directory
type Writer struct {
	dir string
}

// New creates a Writer rooted at dir. A leading ~/ is expanded to the
// home directory and the directory is created if it does not exist.
func New(dir string) (*Writer, error) {
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, dir[2:])
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{dir: dir}, nil
}

// Dir returns the resolved output directory
func (w *Writer) Dir() string {
	return w.dir
}

// Path returns the location of a named artifact inside the output
// directory
func (w *Writer) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// WriteIndex writes the rendered index page
func (w *Writer) WriteIndex(html []byte) (string, error) {
	return w.write(IndexFile, html)
}

// WriteImage writes the encoded timeline image
func (w *Writer) WriteImage(png []byte) (string, error) {
	return w.write(ImageFile, png)
}

// WriteCalendar writes the iCalendar feed
func (w *Writer) WriteCalendar(ics string) (string, error) {
	return w.write(CalendarFile, []byte(ics))
}

// WriteEvents writes the indented JSON feed consumed by the announce
// command
func (w *Writer) WriteEvents(events []*event.Event) (string, error) {
	if events == nil {
		events = []*event.Event{}
	}
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding events: %w", err)
	}
	return w.write(EventsFile, data)
}

func (w *Writer) write(name string, data []byte) (string, error) {
	path := w.Path(name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return path, nil
}
