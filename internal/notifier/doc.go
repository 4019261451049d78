// Package notifier announces the refreshed listing on outside channels.
//
// Two channels are supported: Twitter posts one localized message per
// event (Japanese wording for events in Japan, English otherwise), and
// Telegram posts a single HTML digest via the Bot API. A dry-run notifier
// prints what would be posted. Credentials come from environment
// variables.
package notifier
