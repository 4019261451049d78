// Package render produces the static index page from a list of events.
//
// The page is a single self-contained HTML document: OGP and Twitter card
// metadata, an inline stylesheet, a section of events in Japan followed by
// international events, the timeline image, and a last-updated footer in
// Japanese time.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shinichi-ohki/maker-events/internal/event"
)

// OGPImageName is the filename of the timeline image referenced by the page
const OGPImageName = "ogp_image.png"

//go:embed index.html.tmpl
var indexTemplate string

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"truncate": truncate,
}).Parse(indexTemplate))

type pageData struct {
	JapanEvents         []*event.Event
	InternationalEvents []*event.Event
	TotalEvents         int
	BaseURL             string
	OGPImageURL         string
	LastUpdated         string
}

// jst is used for the footer timestamp regardless of the host timezone
var jst = time.FixedZone("JST", 9*60*60)

// Renderer renders the index page for a configured site base URL
type Renderer struct {
	baseURL string
	now     func() time.Time
}

// New creates a Renderer. baseURL is the public URL the site is served
// from and is used for the og:url and og:image tags.
func New(baseURL string) *Renderer {
	return &Renderer{
		baseURL: baseURL,
		now:     time.Now,
	}
}

// RenderIndex renders the full index page for the given events. Events
// are split into the Japan and international sections in their given
// order.
func (r *Renderer) RenderIndex(events []*event.Event) ([]byte, error) {
	japan, international := event.Split(events)

	data := pageData{
		JapanEvents:         japan,
		InternationalEvents: international,
		TotalEvents:         len(events),
		BaseURL:             r.baseURL,
		OGPImageURL:         r.ogpImageURL(),
		LastUpdated:         r.now().In(jst).Format("2006-01-02 15:04") + " JST",
	}

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering index page: %w", err)
	}
	return buf.Bytes(), nil
}

// ogpImageURL resolves the timeline image against the site base URL
func (r *Renderer) ogpImageURL() string {
	return strings.TrimSuffix(r.baseURL, "/") + "/" + OGPImageName
}

// truncate shortens s to at most max runes, appending an ellipsis when
// anything was cut
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
