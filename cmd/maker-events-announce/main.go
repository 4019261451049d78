// Command maker-events-announce posts the refreshed listing to a social
// channel. It reads the events.json artifact written by maker-events (from
// a file or stdin) and announces the upcoming events on Twitter or as a
// Telegram digest.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/shinichi-ohki/maker-events/internal/event"
	"github.com/shinichi-ohki/maker-events/internal/notifier"
)

var (
	eventsFile    = flag.String("events-file", "", "Path to events.json (or read from stdin)")
	channel       = flag.String("channel", "twitter", "Channel to announce on: twitter or telegram")
	dryRun        = flag.Bool("dry-run", false, "Print posts without sending")
	maxPosts      = flag.Int("max", 10, "Maximum number of events to announce")
	countryFilter = flag.String("country", "", "Only announce events in this country")
	japanOnly     = flag.Bool("japan-only", false, "Only announce events in Japan")
)

// readEvents reads the events.json artifact from file or stdin
func readEvents(filePath string) ([]*event.Event, error) {
	var reader io.Reader
	if filePath != "" {
		f, err := os.Open(filePath)
		if err != nil {
			return nil, fmt.Errorf("opening events file: %w", err)
		}
		defer f.Close()
		reader = f
	} else {
		reader = os.Stdin
	}

	var events []*event.Event
	if err := json.NewDecoder(reader).Decode(&events); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return events, nil
}

// filterByCountry keeps events whose country matches, case-insensitively
func filterByCountry(events []*event.Event, country string) []*event.Event {
	if country == "" {
		return events
	}
	filtered := make([]*event.Event, 0)
	for _, evt := range events {
		if strings.EqualFold(evt.Country, country) {
			filtered = append(filtered, evt)
		}
	}
	return filtered
}

// filterJapan keeps only domestic events
func filterJapan(events []*event.Event) []*event.Event {
	filtered := make([]*event.Event, 0)
	for _, evt := range events {
		if evt.Japan {
			filtered = append(filtered, evt)
		}
	}
	return filtered
}

func main() {
	_ = godotenv.Load()
	flag.Parse()

	events, err := readEvents(*eventsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading events: %v\n", err)
		os.Exit(1)
	}

	// Apply filters
	events = filterByCountry(events, *countryFilter)
	if *japanOnly {
		events = filterJapan(events)
	}
	if len(events) > *maxPosts {
		events = events[:*maxPosts]
	}

	if len(events) == 0 {
		fmt.Println("No events to announce")
		os.Exit(0)
	}

	switch *channel {
	case "twitter":
		var n notifier.Notifier
		if *dryRun {
			n = notifier.NewDryRunNotifier()
			fmt.Printf("DRY RUN MODE - Would post %d events:\n\n", len(events))
		} else {
			client, err := notifier.NewTwitterNotifier()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error initializing Twitter client: %v\n", err)
				os.Exit(1)
			}
			n = client
		}
		if err := n.Notify(events); err != nil {
			fmt.Fprintf(os.Stderr, "Error posting: %v\n", err)
			os.Exit(1)
		}
		if !*dryRun {
			fmt.Printf("Successfully posted %d events\n", len(events))
		}

	case "telegram":
		if *dryRun {
			fmt.Println("DRY RUN MODE - Would send digest:")
			fmt.Println()
			fmt.Println(notifier.FormatDigest(events))
			os.Exit(0)
		}
		client, err := notifier.NewTelegramNotifier()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing Telegram client: %v\n", err)
			os.Exit(1)
		}
		if err := client.Notify(events); err != nil {
			fmt.Fprintf(os.Stderr, "Error sending digest: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Successfully sent digest covering %d events\n", len(events))

	default:
		fmt.Fprintf(os.Stderr, "Error: unknown channel %q (must be 'twitter' or 'telegram')\n", *channel)
		os.Exit(1)
	}
}
