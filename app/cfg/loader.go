package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Pipeline configuration
	FeedsFile       string `long:"feeds-file" env:"FEEDS_FILE" default:"./feeds.yaml" description:"YAML file listing feed sources (name and URL pairs)"`
	DBPath          string `long:"db-path" env:"DB_PATH" default:"./data/news_archive.db" description:"Path to the SQLite article archive"`
	OutputDir       string `long:"output-dir" env:"OUTPUT_DIR" default:"./docs" description:"Directory for digest artifacts and the archive index"`
	ArticlesPerFeed int    `long:"articles-per-feed" env:"ARTICLES_PER_FEED" default:"10" description:"Maximum number of articles per source in the digest"`
	FetchTimeout    int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"30" description:"HTTP timeout per feed in seconds"`
	UserAgent       string `long:"user-agent" env:"USER_AGENT" default:"Daily News Digest/1.0" description:"User agent string for HTTP requests"`

	// Email delivery
	EnableEmail    bool   `long:"enable-email" env:"ENABLE_EMAIL_DELIVERY" description:"Enable email delivery of the digest"`
	SMTPServer     string `long:"smtp-server" env:"SMTP_SERVER" description:"SMTP server hostname"`
	SMTPPort       int    `long:"smtp-port" env:"SMTP_PORT" default:"587" description:"SMTP server port"`
	SenderEmail    string `long:"sender-email" env:"SENDER_EMAIL" description:"Sender email address"`
	SenderPassword string `long:"sender-password" env:"SENDER_PASSWORD" description:"Sender email password"`
	RecipientEmail string `long:"recipient-email" env:"RECIPIENT_EMAIL" description:"Recipient email address"`

	// Webhook delivery
	EnableWebhook bool   `long:"enable-webhook" env:"ENABLE_WEBHOOK_DELIVERY" description:"Enable webhook notification after a run"`
	WebhookURL    string `long:"webhook-url" env:"WEBHOOK_URL" description:"Webhook URL for notifications (e.g., Discord, Slack)"`

	// Preview server
	Serve bool   `long:"serve" env:"SERVE" description:"Serve the output directory over HTTP after the run"`
	Port  string `long:"port" env:"PORT" default:"8080" description:"HTTP port for the preview server"`
}

// Load parses configuration from command-line flags and environment
// variables. Returns (nil, nil) when help output was requested.
func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if raw.ArticlesPerFeed <= 0 {
		return nil, fmt.Errorf("articles-per-feed must be positive, got %d", raw.ArticlesPerFeed)
	}
	if raw.FetchTimeout <= 0 {
		return nil, fmt.Errorf("fetch-timeout must be positive, got %d", raw.FetchTimeout)
	}

	cfg := &Cfg{
		FeedsFile:       raw.FeedsFile,
		DBPath:          raw.DBPath,
		OutputDir:       raw.OutputDir,
		ArticlesPerFeed: raw.ArticlesPerFeed,
		FetchTimeout:    raw.FetchTimeout,
		UserAgent:       raw.UserAgent,
		EnableEmail:     raw.EnableEmail,
		SMTPServer:      raw.SMTPServer,
		SMTPPort:        raw.SMTPPort,
		SenderEmail:     raw.SenderEmail,
		SenderPassword:  raw.SenderPassword,
		RecipientEmail:  raw.RecipientEmail,
		EnableWebhook:   raw.EnableWebhook,
		WebhookURL:      raw.WebhookURL,
		Serve:           raw.Serve,
		Port:            raw.Port,
		Version:         GetVersion(),
	}

	return cfg, nil
}
