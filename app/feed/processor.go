package feed

import (
	"context"
	"log"
	"time"

	"github.com/randumduck/upsc-daily-news-digest/app/config"
	"github.com/randumduck/upsc-daily-news-digest/app/database"
	"github.com/randumduck/upsc-daily-news-digest/app/parser"
)

// Fetcher pulls and normalizes the entries of a single feed URL.
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) ([]parser.Entry, error)
}

// Stats summarizes an ingestion run.
type Stats struct {
	Sources       int
	FailedSources int
	Entries       int
	Inserted      int
	Skipped       int
	Duration      time.Duration
}

// Processor pulls every configured source into the article archive. A
// failing source or record is logged and skipped; it never halts the batch.
type Processor struct {
	fetcher Fetcher
	store   database.ArticleStore
}

// NewProcessor creates a new ingestion processor
func NewProcessor(fetcher Fetcher, store database.ArticleStore) *Processor {
	return &Processor{
		fetcher: fetcher,
		store:   store,
	}
}

// Run processes all sources in order and returns run statistics.
func (p *Processor) Run(ctx context.Context, sources []config.Source) Stats {
	startTime := time.Now()
	stats := Stats{Sources: len(sources)}

	for _, source := range sources {
		if !parser.ValidateURL(source.URL) {
			log.Printf("Skipping invalid URL for %s: %s", source.Name, source.URL)
			stats.FailedSources++
			continue
		}

		log.Printf("Fetching news from %s...", source.Name)
		entries, err := p.fetcher.Fetch(ctx, source.URL)
		if err != nil {
			log.Printf("Error fetching feed for %s: %v", source.Name, err)
			stats.FailedSources++
			continue
		}

		if len(entries) == 0 {
			log.Printf("No entries found for %s", source.Name)
			continue
		}

		stats.Entries += len(entries)
		inserted := 0
		for _, entry := range entries {
			ok, err := p.store.InsertIfNew(source.Name, entry)
			if err != nil {
				log.Printf("Error saving article %q from %s: %v",
					truncate(entry.Title, 50), source.Name, err)
				continue
			}
			if ok {
				inserted++
			} else {
				stats.Skipped++
			}
		}

		if inserted > 0 {
			log.Printf("Fetched %d new articles for %s", inserted, source.Name)
		}
		stats.Inserted += inserted
	}

	stats.Duration = time.Since(startTime)
	log.Printf("Ingestion complete: %d sources (%d failed), %d entries, %d new, %d already archived in %v",
		stats.Sources, stats.FailedSources, stats.Entries, stats.Inserted, stats.Skipped, stats.Duration)

	return stats
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
