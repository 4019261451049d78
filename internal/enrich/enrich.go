package enrich

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/shinichi-ohki/maker-events/internal/event"
	"github.com/shinichi-ohki/maker-events/internal/logger"
)

const (
	// UserAgent mimics a desktop browser: several event sites refuse
	// requests from obvious bot agents.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	Timeout      = 10 * time.Second
	DefaultDelay = 500 * time.Millisecond
)

// Enricher scrapes event websites for preview images
type Enricher struct {
	client    *http.Client
	delay     time.Duration
	userAgent string
}

// New creates an Enricher that pauses delay between consecutive requests.
// A delay of 0 disables the pause; an empty userAgent selects the default
// browser agent.
func New(delay time.Duration, userAgent string) *Enricher {
	if userAgent == "" {
		userAgent = UserAgent
	}
	return &Enricher{
		client: &http.Client{
			Timeout: Timeout,
		},
		delay:     delay,
		userAgent: userAgent,
	}
}

// EnrichAll fetches thumbnail images for events that link a website but have
// no image yet. Pages are fetched strictly one at a time with a fixed pause
// between requests; a failed fetch logs a warning and skips that event.
// Returns the number of images found.
func (e *Enricher) EnrichAll(events []*event.Event) int {
	var pending []*event.Event
	for _, evt := range events {
		if evt.URL != "" && evt.ImageURL == "" {
			pending = append(pending, evt)
		}
	}
	if len(pending) == 0 {
		return 0
	}

	logger.Info("fetching event thumbnails", logger.Fields{"count": len(pending)})

	found := 0
	for i, evt := range pending {
		if i > 0 && e.delay > 0 {
			time.Sleep(e.delay)
		}

		imageURL, err := e.Fetch(evt.URL)
		if err != nil {
			logger.Warn("thumbnail fetch failed, skipping", logger.Fields{
				"event": evt.Name,
				"url":   evt.URL,
				"error": err.Error(),
			})
			logger.IncrCounter("images.failed")
			continue
		}
		if imageURL == "" {
			logger.Debug("no thumbnail on page", logger.Fields{"event": evt.Name, "url": evt.URL})
			continue
		}

		evt.ImageURL = imageURL
		found++
		logger.IncrCounter("images.found")
	}

	return found
}

// Fetch retrieves the page at pageURL and extracts its preview image URL.
// Returns "" with a nil error when the page has no usable image.
func (e *Enricher) Fetch(pageURL string) (string, error) {
	if !strings.HasPrefix(pageURL, "http") {
		return "", fmt.Errorf("unsupported URL scheme: %s", pageURL)
	}

	req, err := http.NewRequest("GET", pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return extractImage(resp.Body, pageURL)
}

// extractImage pulls the best available image URL out of page HTML,
// preferring the OGP image, then the Twitter Card image, then the favicon
func extractImage(r io.Reader, pageURL string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	metaSelectors := []string{
		`meta[property="og:image"]`,
		`meta[name="twitter:image"]`,
		`meta[property="twitter:image"]`,
	}
	for _, sel := range metaSelectors {
		if content, ok := doc.Find(sel).First().Attr("content"); ok && strings.TrimSpace(content) != "" {
			return resolveURL(pageURL, strings.TrimSpace(content)), nil
		}
	}

	// Favicon as a last resort
	iconSelectors := []string{
		`link[rel="icon"]`,
		`link[rel="shortcut icon"]`,
	}
	for _, sel := range iconSelectors {
		if href, ok := doc.Find(sel).First().Attr("href"); ok && strings.TrimSpace(href) != "" {
			return resolveURL(pageURL, strings.TrimSpace(href)), nil
		}
	}

	return "", nil
}

// resolveURL makes a candidate image URL absolute against the page URL
func resolveURL(pageURL, candidate string) string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return candidate
	}
	ref, err := url.Parse(candidate)
	if err != nil {
		return candidate
	}
	return base.ResolveReference(ref).String()
}
