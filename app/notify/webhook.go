package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/randumduck/upsc-daily-news-digest/app/cfg"
)

// WebhookNotifier posts a readiness message to a configured webhook
// (e.g., Discord or Slack). Like email, delivery is best-effort.
type WebhookNotifier struct {
	enabled bool
	url     string
	client  *resty.Client
}

// NewWebhookNotifier creates a webhook notifier from the run configuration
func NewWebhookNotifier(c *cfg.Cfg) *WebhookNotifier {
	return &WebhookNotifier{
		enabled: c.EnableWebhook,
		url:     c.WebhookURL,
		client:  resty.New().SetTimeout(30 * time.Second),
	}
}

type webhookPayload struct {
	Content string `json:"content"`
}

// Send posts the notification message as a JSON payload.
func (n *WebhookNotifier) Send(ctx context.Context, message string) error {
	if !n.enabled || n.url == "" {
		log.Printf("Webhook delivery not configured or disabled, skipping")
		return nil
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(webhookPayload{Content: message}).
		Post(n.url)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode())
	}

	log.Printf("Webhook notification sent")
	return nil
}
