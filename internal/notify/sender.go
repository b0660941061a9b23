package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Sender posts a message to one destination.
type Sender interface {
	// Name identifies the destination in logs and errors.
	Name() string

	// Send delivers the message. A non-2xx response is an error.
	Send(ctx context.Context, message string) error
}

// WebhookSender posts a JSON object with a single text field to a URL.
type WebhookSender struct {
	name   string
	url    string
	field  string
	client *http.Client
}

// NewSlackSender posts {"text": message} to a Slack incoming webhook.
func NewSlackSender(url string, client *http.Client) *WebhookSender {
	return newWebhookSender("slack", url, "text", client)
}

// NewDiscordSender posts {"content": message} to a Discord webhook.
func NewDiscordSender(url string, client *http.Client) *WebhookSender {
	return newWebhookSender("discord", url, "content", client)
}

func newWebhookSender(name, url, field string, client *http.Client) *WebhookSender {
	if client == nil {
		client = http.DefaultClient
	}
	return &WebhookSender{name: name, url: url, field: field, client: client}
}

// Name returns the destination name.
func (s *WebhookSender) Name() string {
	return s.name
}

// Send posts the message as JSON.
func (s *WebhookSender) Send(ctx context.Context, message string) error {
	body, err := json.Marshal(map[string]string{s.field: message})
	if err != nil {
		return fmt.Errorf("encoding %s payload: %w", s.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating %s request: %w", s.name, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting to %s webhook: %w", s.name, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Sender: s.name, StatusCode: resp.StatusCode}
	}
	return nil
}

// StatusError reports a webhook that answered with a non-2xx status.
type StatusError struct {
	Sender     string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s webhook returned status %d", e.Sender, e.StatusCode)
}
