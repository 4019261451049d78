package main

import (
	"fmt"
	"os"
	"time"

	"github.com/shinichi-ohki/maker-events/internal/event"
	"github.com/shinichi-ohki/maker-events/internal/fontpack"
	"github.com/shinichi-ohki/maker-events/internal/ogpcard"
)

func main() {
	// Sample events spread over a few months for eyeballing the layout.
	// The bundled fallback font has no Japanese glyphs, so the sample
	// names are Latin.
	base := time.Now().AddDate(0, 0, 14)
	sample := []*event.Event{
		{Name: "Maker Faire Tokyo", Start: base, End: base.AddDate(0, 0, 1), Japan: true},
		{Name: "Mini Maker Meetup Osaka", Start: base.AddDate(0, 0, 20), Japan: true},
		{Name: "Maker Faire Bay Area", Start: base.AddDate(0, 1, 5), End: base.AddDate(0, 1, 7)},
		{Name: "Electronics Swap Meet with a Deliberately Long Name", Start: base.AddDate(0, 2, 0), Japan: true},
	}

	card := ogpcard.New(fontpack.Bundled())
	data, err := card.Render(sample)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering card: %v\n", err)
		os.Exit(1)
	}

	filename := "preview-ogp.png"
	if err := os.WriteFile(filename, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Wrote %s (%d bytes)\n", filename, len(data))
	fmt.Println("Open it in an image viewer to check the timeline layout.")
}
