package notifier

import (
	"github.com/shinichi-ohki/maker-events/internal/event"
)

// Notifier defines the interface for announcing events on a channel
type Notifier interface {
	// Notify announces the given events
	Notify(events []*event.Event) error
}
