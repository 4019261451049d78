// Package enrich fills in missing event thumbnails by scraping each event's
// linked website for its OGP preview image.
//
// Lookups prefer the og:image meta tag, then the Twitter Card image, then the
// site favicon. Pages are fetched one at a time with a fixed pause between
// requests, and any failure skips that event rather than failing the run.
package enrich
