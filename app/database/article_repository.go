package database

import (
	"fmt"
	"time"

	"github.com/randumduck/upsc-daily-news-digest/app/parser"
)

// ArticleRepository handles database operations for archived articles
type ArticleRepository struct {
	db *DB
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// InsertIfNew stores the entry unless an article with the same link already
// exists. Returns true when a row was inserted, false when the link was
// already archived. The fetched date is assigned here, exactly once; a later
// duplicate attempt leaves the existing row untouched.
func (r *ArticleRepository) InsertIfNew(source string, entry parser.Entry) (bool, error) {
	result, err := r.db.Exec(`
		INSERT INTO articles (source, title, link, summary, published_date, fetched_date)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (link) DO NOTHING
	`, source, entry.Title, entry.Link, entry.Summary, entry.Published, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to insert article: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected > 0, nil
}

// GetFetchedSince returns all articles first stored at or after the given
// time, most recently fetched first. Equal fetch times fall back to insertion
// order, newest first, so the ordering is deterministic.
func (r *ArticleRepository) GetFetchedSince(since time.Time) ([]Article, error) {
	rows, err := r.db.Query(`
		SELECT id, source, title, link, COALESCE(summary, ''),
		       published_date, fetched_date
		FROM articles
		WHERE fetched_date >= ?
		ORDER BY fetched_date DESC, id DESC
	`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get articles: %w", err)
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		var article Article
		err := rows.Scan(
			&article.ID, &article.Source, &article.Title, &article.Link,
			&article.Summary, &article.PublishedDate, &article.FetchedDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article rows: %w", err)
	}

	return articles, nil
}

// GetArticleCount returns the total number of archived articles
func (r *ArticleRepository) GetArticleCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM articles").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get article count: %w", err)
	}
	return count, nil
}
