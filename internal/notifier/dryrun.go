package notifier

import (
	"fmt"
	"unicode/utf8"

	"github.com/shinichi-ohki/maker-events/internal/event"
)

// DryRunNotifier prints what would be posted without contacting any API
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Notify prints the posts that would be published
func (n *DryRunNotifier) Notify(events []*event.Event) error {
	for i, evt := range events {
		post := formatTweet(evt)
		fmt.Printf("--- Post %d/%d ---\n", i+1, len(events))
		fmt.Println(post)
		fmt.Printf("\n(Length: %d runes)\n\n", utf8.RuneCountInString(post))
	}
	return nil
}
