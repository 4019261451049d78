// Package cli implements the command-line interface for maker-events.
//
// The cli package provides the Cobra-based CLI that runs the generation
// pipeline end to end: fetching and classifying the spreadsheet rows,
// scraping thumbnails, rendering the page, composing the OGP timeline
// image, and writing the artifacts. The run summary is printed to stdout
// as text or JSON; logs go to stderr.
package cli
