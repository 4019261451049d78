package notifier

import (
	"fmt"
	"os"
	"time"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"

	"github.com/shinichi-ohki/maker-events/internal/event"
)

// postInterval is the pause between consecutive posts
const postInterval = 2 * time.Second

// TwitterNotifier posts one message per event
type TwitterNotifier struct {
	client *twitter.Client
}

// NewTwitterNotifier creates a Twitter notifier using environment variables.
// Required environment variables:
// - TWITTER_API_KEY
// - TWITTER_API_SECRET
// - TWITTER_ACCESS_TOKEN
// - TWITTER_ACCESS_SECRET
func NewTwitterNotifier() (*TwitterNotifier, error) {
	apiKey := os.Getenv("TWITTER_API_KEY")
	apiSecret := os.Getenv("TWITTER_API_SECRET")
	accessToken := os.Getenv("TWITTER_ACCESS_TOKEN")
	accessSecret := os.Getenv("TWITTER_ACCESS_SECRET")

	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	httpClient := config.Client(oauth1.NoContext, token)
	client := twitter.NewClient(httpClient)

	return &TwitterNotifier{client: client}, nil
}

// Notify posts one message per event, pausing between posts
func (n *TwitterNotifier) Notify(events []*event.Event) error {
	for i, evt := range events {
		post := formatTweet(evt)

		_, _, err := n.client.Statuses.Update(post, nil)
		if err != nil {
			return fmt.Errorf("posting event %s: %w", evt.ID, err)
		}

		if i < len(events)-1 {
			time.Sleep(postInterval)
		}
	}

	return nil
}
