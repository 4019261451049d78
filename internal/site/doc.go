// Package site writes the generated artifacts into the output directory.
//
// A run produces four artifacts: the index page (index.html), the social
// preview image (ogp_image.png), the events feed (events.json) consumed by
// the announce command, and the iCalendar feed (events.ics). The font file
// cached by fontpack lives in the same directory. Nothing else is persisted
// between runs.
package site
