package fontpack

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/image/font/opentype"

	"github.com/shinichi-ohki/maker-events/internal/logger"
)

const (
	// FontFileName is the downloaded font artifact kept in the output
	// directory alongside the rendered site files
	FontFileName = "NotoSansJP-Regular.ttf"

	// FontCSSURL serves the Noto Sans JP stylesheet; the TTF URLs are
	// scraped out of the response body
	FontCSSURL = "https://fonts.googleapis.com/css2?family=Noto+Sans+JP:wght@400&display=swap"

	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	Timeout   = 30 * time.Second

	// MinFontBytes guards against HTML error pages saved as fonts
	MinFontBytes = 100000
)

var gstaticRe = regexp.MustCompile(`https://fonts\.gstatic\.com[^)]+\.ttf`)

// fallbackFontURLs are tried when the CSS scrape yields nothing
var fallbackFontURLs = []string{
	"https://fonts.gstatic.com/s/notosansjp/v54/-F6jfjtqLzI2JPCgQBnw7HFyzSD-AsregP8VFBEj75s.ttf",
	"https://fonts.gstatic.com/s/notosansjp/v54/-F6jfjtqLzI2JPCgQBnw7HFyzSD-AsregP8VFPYk75s.ttf",
}

// Loader downloads and caches the Japanese display font
type Loader struct {
	client    *http.Client
	dir       string
	cssURL    string
	fallbacks []string
}

// NewLoader creates a Loader that keeps the font artifact in dir
func NewLoader(dir string) *Loader {
	return &Loader{
		client: &http.Client{
			Timeout: Timeout,
		},
		dir:       dir,
		cssURL:    FontCSSURL,
		fallbacks: fallbackFontURLs,
	}
}

// Load returns the font pack, reusing the cached artifact when present and
// otherwise downloading Noto Sans JP. Failures degrade to the bundled
// fallback faces; Load never fails the run.
func (l *Loader) Load() *Pack {
	path := filepath.Join(l.dir, FontFileName)

	if data, err := os.ReadFile(path); err == nil {
		if f, err := opentype.Parse(data); err == nil {
			logger.Debug("using cached font artifact", logger.Fields{"path": path})
			return newPack(f)
		}
		logger.Warn("cached font artifact is not a valid font, re-downloading", logger.Fields{"path": path})
	}

	if f := l.download(path); f != nil {
		return newPack(f)
	}

	logger.Warn("font download failed, using bundled fallback font", nil)
	return newPack(nil)
}

// download tries each candidate font URL until one yields a plausible font
func (l *Loader) download(path string) *opentype.Font {
	urls := l.fontURLs()

	for i, fontURL := range urls {
		data, err := l.fetchFont(fontURL)
		if err != nil {
			logger.Warn("font URL failed", logger.Fields{
				"url":   fontURL,
				"index": fmt.Sprintf("%d/%d", i+1, len(urls)),
				"error": err.Error(),
			})
			continue
		}

		f, err := opentype.Parse(data)
		if err != nil {
			logger.Warn("downloaded data is not a valid font", logger.Fields{
				"url":   fontURL,
				"error": err.Error(),
			})
			continue
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			logger.Warn("could not save font artifact", logger.Fields{
				"path":  path,
				"error": err.Error(),
			})
		} else {
			logger.Info("font downloaded", logger.Fields{"path": path, "bytes": len(data)})
		}
		return f
	}

	return nil
}

// fontURLs scrapes the Google Fonts CSS for TTF URLs, falling back to a
// fixed list when the scrape fails
func (l *Loader) fontURLs() []string {
	req, err := http.NewRequest("GET", l.cssURL, nil)
	if err != nil {
		return l.fallbacks
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		logger.Warn("font CSS fetch failed", logger.Fields{"error": err.Error()})
		return l.fallbacks
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("font CSS fetch failed", logger.Fields{"status": resp.StatusCode})
		return l.fallbacks
	}

	css, err := io.ReadAll(resp.Body)
	if err != nil {
		return l.fallbacks
	}

	urls := extractFontURLs(string(css))
	if len(urls) == 0 {
		return l.fallbacks
	}
	return urls
}

// extractFontURLs pulls fonts.gstatic.com TTF URLs out of CSS text
func extractFontURLs(css string) []string {
	return gstaticRe.FindAllString(css, -1)
}

// fetchFont downloads a candidate font file, rejecting responses that are
// clearly not fonts
func (l *Loader) fetchFont(fontURL string) ([]byte, error) {
	req, err := http.NewRequest("GET", fontURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading font: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "font") && !strings.Contains(contentType, "octet-stream") {
		return nil, fmt.Errorf("unexpected content type: %s", contentType)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading font data: %w", err)
	}

	if len(data) < MinFontBytes {
		return nil, fmt.Errorf("font file too small: %d bytes", len(data))
	}

	return data, nil
}
