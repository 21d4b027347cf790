package cfg

type Cfg struct {
	// Pipeline configuration
	FeedsFile       string
	DBPath          string
	OutputDir       string
	ArticlesPerFeed int
	FetchTimeout    int // seconds
	UserAgent       string

	// Email delivery (disabled unless fully configured)
	EnableEmail    bool
	SMTPServer     string
	SMTPPort       int
	SenderEmail    string
	SenderPassword string
	RecipientEmail string

	// Webhook delivery
	EnableWebhook bool
	WebhookURL    string

	// Preview server
	Serve bool
	Port  string

	Version string
}
