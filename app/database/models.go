package database

import (
	"time"
)

// Article is a stored news article. Link is unique across the whole archive
// and is the deduplication key. FetchedDate is assigned once, at first
// insertion, and drives the daily digest window; PublishedDate is whatever
// the feed reported (or the ingestion time when it reported nothing usable).
type Article struct {
	ID            int64
	Source        string
	Title         string
	Link          string
	Summary       string
	PublishedDate time.Time
	FetchedDate   time.Time
}
