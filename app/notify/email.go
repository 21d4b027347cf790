package notify

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/randumduck/upsc-daily-news-digest/app/cfg"
)

// EmailNotifier delivers the rendered digest over SMTP. Delivery is
// best-effort: a disabled flag or incomplete credentials mean the send is
// skipped, never failed.
type EmailNotifier struct {
	enabled   bool
	server    string
	port      int
	sender    string
	password  string
	recipient string
}

// NewEmailNotifier creates an email notifier from the run configuration
func NewEmailNotifier(c *cfg.Cfg) *EmailNotifier {
	return &EmailNotifier{
		enabled:   c.EnableEmail,
		server:    c.SMTPServer,
		port:      c.SMTPPort,
		sender:    c.SenderEmail,
		password:  c.SenderPassword,
		recipient: c.RecipientEmail,
	}
}

// configured reports whether every field needed to send is present
func (n *EmailNotifier) configured() bool {
	return n.server != "" && n.sender != "" && n.password != "" && n.recipient != ""
}

// Send emails the digest as an HTML message.
func (n *EmailNotifier) Send(subject, htmlBody string) error {
	if !n.enabled || !n.configured() {
		log.Printf("Email delivery not configured or disabled, skipping")
		return nil
	}

	addr := fmt.Sprintf("%s:%d", n.server, n.port)
	auth := smtp.PlainAuth("", n.sender, n.password, n.server)
	msg := n.message(subject, htmlBody)

	if err := smtp.SendMail(addr, auth, n.sender, []string{n.recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("Email sent to %s", n.recipient)
	return nil
}

// message assembles the MIME envelope around the HTML body
func (n *EmailNotifier) message(subject, htmlBody string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s\r\n", n.sender))
	b.WriteString(fmt.Sprintf("To: %s\r\n", n.recipient))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return b.String()
}
