package notify

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ariel-frischer/changeloggen/internal/logfields"
	"golang.org/x/sync/errgroup"
)

// Notifier fans an announcement out to every configured sender.
type Notifier struct {
	senders []Sender
	timeout time.Duration
	logger  *slog.Logger
}

// NewNotifier creates a notifier with a sender for each configured webhook.
func NewNotifier(cfg Config, logger *slog.Logger) *Notifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := &http.Client{Timeout: timeout}

	var senders []Sender
	if cfg.SlackWebhook != "" {
		senders = append(senders, NewSlackSender(cfg.SlackWebhook, client))
	}
	if cfg.DiscordWebhook != "" {
		senders = append(senders, NewDiscordSender(cfg.DiscordWebhook, client))
	}
	return NewNotifierWithSenders(timeout, logger, senders...)
}

// NewNotifierWithSenders creates a notifier over explicit senders (for testing).
func NewNotifierWithSenders(timeout time.Duration, logger *slog.Logger, senders ...Sender) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{senders: senders, timeout: timeout, logger: logger}
}

// Senders returns the number of configured destinations.
func (n *Notifier) Senders() int {
	return len(n.senders)
}

// Notify posts the announcement to all senders concurrently. The first
// failure cancels the remaining requests and is returned.
func (n *Notifier) Notify(ctx context.Context, a Announcement) error {
	if len(n.senders) == 0 {
		n.logger.Debug("no webhooks configured, skipping notification")
		return nil
	}

	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, s := range n.senders {
		s := s
		g.Go(func() error {
			start := time.Now()
			err := s.Send(ctx, a.Message)
			if err != nil {
				n.logger.Warn("webhook delivery failed",
					logfields.Webhook(s.Name()), logfields.Version(a.Version), logfields.Error(err))
				return err
			}
			n.logger.Info("webhook delivered",
				logfields.Webhook(s.Name()), logfields.Version(a.Version), logfields.Duration(time.Since(start)))
			return nil
		})
	}
	return g.Wait()
}
