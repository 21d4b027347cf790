package database

import (
	"time"

	"github.com/randumduck/upsc-daily-news-digest/app/parser"
)

// ArticleStore is the narrow persistence surface the pipeline depends on.
type ArticleStore interface {
	InsertIfNew(source string, entry parser.Entry) (bool, error)
	GetFetchedSince(since time.Time) ([]Article, error)
}
