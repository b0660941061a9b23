// Package notify delivers release announcements to chat webhooks.
// Slack and Discord are supported; every configured webhook is posted to
// concurrently.
package notify

import "time"

// DefaultTimeout bounds a single webhook request when none is configured.
const DefaultTimeout = 10 * time.Second

// Config holds webhook settings loaded from the config hierarchy
// (env > project > user > defaults).
type Config struct {
	// SlackWebhook is a Slack incoming-webhook URL.
	SlackWebhook string `koanf:"slack_webhook" validate:"omitempty,url"`

	// DiscordWebhook is a Discord webhook URL.
	DiscordWebhook string `koanf:"discord_webhook" validate:"omitempty,url"`

	// Timeout bounds each webhook request (default: 10s)
	Timeout time.Duration `koanf:"timeout" validate:"gte=0"`
}

// Enabled reports whether at least one webhook is configured.
func (c Config) Enabled() bool {
	return c.SlackWebhook != "" || c.DiscordWebhook != ""
}

// Announcement is a single release message to dispatch.
type Announcement struct {
	// Version is the released version, used for logging.
	Version string

	// Message is the body posted to every webhook.
	Message string
}
