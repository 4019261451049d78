package notifier

import (
	"fmt"
	"html"
	"strings"

	"github.com/shinichi-ohki/maker-events/internal/event"
)

const (
	// tweetMaxRunes is the post length limit, counted in runes so that
	// Japanese text is not cut mid-character
	tweetMaxRunes = 280

	listingURL = "https://shinichi-ohki.github.io/maker_event/"
)

// formatTweet renders one event as a post. Events in Japan are announced
// in Japanese, everything else in English.
func formatTweet(evt *event.Event) string {
	var msg strings.Builder

	if evt.Japan {
		msg.WriteString("🛠️ 今後のメイカーイベント\n\n")
	} else {
		msg.WriteString("🛠️ Upcoming Maker Event\n\n")
	}

	msg.WriteString(fmt.Sprintf("📍 %s\n", evt.Name))
	if !evt.Start.IsZero() {
		msg.WriteString(fmt.Sprintf("📅 %s\n", evt.DateRange()))
	}
	if evt.Location != "" {
		msg.WriteString(fmt.Sprintf("🏢 %s\n", evt.Location))
	}
	if evt.URL != "" {
		msg.WriteString(fmt.Sprintf("\n🔗 %s\n", evt.URL))
	}

	if evt.Japan {
		msg.WriteString("\n#メイカーイベント #MakerFaire")
	} else {
		msg.WriteString("\n#MakerEvents #MakerFaire")
	}

	return truncateRunes(msg.String(), tweetMaxRunes)
}

// FormatDigest renders the whole listing as a single HTML message for the
// Telegram channel, grouped into the same domestic and international
// sections as the page.
func FormatDigest(events []*event.Event) string {
	if len(events) == 0 {
		return "現在、今後のイベント情報はありません。\nNo upcoming events are currently scheduled."
	}

	japan, international := event.Split(events)

	var msg strings.Builder
	msg.WriteString("🛠️ <b>今後のメイカーイベント | Upcoming Maker Events</b>\n\n")
	msg.WriteString(fmt.Sprintf("全%d件（日本 %d件・海外 %d件）\n\n", len(events), len(japan), len(international)))

	if len(japan) > 0 {
		msg.WriteString(fmt.Sprintf("🇯🇵 <b>日本のイベント</b> (%d)\n", len(japan)))
		for _, evt := range japan {
			msg.WriteString(digestLine(evt))
		}
		msg.WriteString("\n")
	}

	if len(international) > 0 {
		msg.WriteString(fmt.Sprintf("🌍 <b>International Events</b> (%d)\n", len(international)))
		for _, evt := range international {
			msg.WriteString(digestLine(evt))
		}
		msg.WriteString("\n")
	}

	msg.WriteString(fmt.Sprintf("🔗 <a href=\"%s\">%s</a>", listingURL, listingURL))

	return msg.String()
}

// digestLine renders one event as a bullet line. Field values flow into
// an HTML parse_mode message and must be escaped.
func digestLine(evt *event.Event) string {
	line := "  • " + html.EscapeString(evt.Name)
	if !evt.Start.IsZero() {
		line += fmt.Sprintf(" (%s)", evt.DateRange())
	}
	if evt.Location != "" {
		line += " - " + html.EscapeString(evt.Location)
	}
	return line + "\n"
}

// truncateRunes shortens s to at most max runes, appending an ellipsis
// when anything was cut
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
