package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const (
	noTitlePlaceholder   = "No Title"
	noLinkPlaceholder    = "#"
	noSummaryPlaceholder = "No summary available."
)

// Parser fetches RSS/Atom feeds over HTTP and normalizes their entries
type Parser struct {
	gofeedParser *gofeed.Parser
	client       *http.Client
	userAgent    string
}

// NewParser creates a new feed parser with a bounded HTTP timeout
func NewParser(timeout time.Duration, userAgent string) *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				MaxIdleConnsPerHost: 5,
			},
		},
		userAgent: userAgent,
	}
}

// ValidateURL reports whether the URL carries both a scheme and a host.
// Anything else is rejected before a network call is attempted.
func ValidateURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Fetch retrieves the feed at the given URL and returns its entries in
// feed-native order. Any failure (network, HTTP status, parse) is returned
// as an error; the caller decides how to isolate it.
func (p *Parser) Fetch(ctx context.Context, feedURL string) ([]Entry, error) {
	data, err := p.fetchFeed(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	feed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	now := time.Now()
	entries := make([]Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		entries = append(entries, p.normalizeItem(item, now))
	}

	return entries, nil
}

// normalizeItem converts a gofeed.Item into an Entry, applying placeholder
// fallbacks and summary cleanup. A missing or unparseable published date
// silently falls back to the ingestion time.
func (p *Parser) normalizeItem(item *gofeed.Item, now time.Time) Entry {
	entry := Entry{
		Title:     coalesce(item.Title, noTitlePlaceholder),
		Link:      coalesce(item.Link, noLinkPlaceholder),
		Summary:   CleanSummary(coalesce(item.Description, item.Content, noSummaryPlaceholder)),
		Published: now,
	}

	if item.PublishedParsed != nil {
		entry.Published = *item.PublishedParsed
	}

	return entry
}

// CleanSummary strips escaped paragraph tags and unescapes ampersands, so a
// summary of "&lt;p&gt;Hello&amp;World&lt;/p&gt;" is stored as "Hello&World".
func CleanSummary(s string) string {
	s = strings.ReplaceAll(s, "&lt;p&gt;", "")
	s = strings.ReplaceAll(s, "&lt;/p&gt;", "")
	return strings.ReplaceAll(s, "&amp;", "&")
}

// fetchFeed fetches raw feed data from the given URL
func (p *Parser) fetchFeed(ctx context.Context, feedURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	return data, nil
}

// coalesce returns the first non-empty string from the provided values
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
