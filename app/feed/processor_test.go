package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/randumduck/upsc-daily-news-digest/app/config"
	"github.com/randumduck/upsc-daily-news-digest/app/database"
	"github.com/randumduck/upsc-daily-news-digest/app/parser"
)

// fakeFetcher returns canned entries or errors per feed URL
type fakeFetcher struct {
	entries map[string][]parser.Entry
	errs    map[string]error
	calls   []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, feedURL string) ([]parser.Entry, error) {
	f.calls = append(f.calls, feedURL)
	if err, ok := f.errs[feedURL]; ok {
		return nil, err
	}
	return f.entries[feedURL], nil
}

// fakeStore is an in-memory ArticleStore deduplicating by link
type fakeStore struct {
	byLink     map[string]database.Article
	insertErrs map[string]error
	nextID     int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{byLink: make(map[string]database.Article)}
}

func (s *fakeStore) InsertIfNew(source string, entry parser.Entry) (bool, error) {
	if err, ok := s.insertErrs[entry.Link]; ok {
		return false, err
	}
	if _, exists := s.byLink[entry.Link]; exists {
		return false, nil
	}
	s.nextID++
	s.byLink[entry.Link] = database.Article{
		ID:            s.nextID,
		Source:        source,
		Title:         entry.Title,
		Link:          entry.Link,
		Summary:       entry.Summary,
		PublishedDate: entry.Published,
		FetchedDate:   time.Now(),
	}
	return true, nil
}

func (s *fakeStore) GetFetchedSince(since time.Time) ([]database.Article, error) {
	var articles []database.Article
	for _, a := range s.byLink {
		if !a.FetchedDate.Before(since) {
			articles = append(articles, a)
		}
	}
	return articles, nil
}

func entriesFor(n int, prefix string) []parser.Entry {
	entries := make([]parser.Entry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, parser.Entry{
			Title:     prefix,
			Link:      prefix + string(rune('a'+i)),
			Summary:   "summary",
			Published: time.Now(),
		})
	}
	return entries
}

func TestRunGracefulDegradation(t *testing.T) {
	// One source errors, one is empty, one returns 5 valid entries;
	// the run must complete with exactly the 5 good articles stored.
	fetcher := &fakeFetcher{
		entries: map[string][]parser.Entry{
			"https://empty.example.com/feed": {},
			"https://good.example.com/feed":  entriesFor(5, "https://good.example.com/"),
		},
		errs: map[string]error{
			"https://down.example.com/feed": errors.New("connection refused"),
		},
	}
	store := newFakeStore()

	sources := []config.Source{
		{Name: "Down", URL: "https://down.example.com/feed"},
		{Name: "Empty", URL: "https://empty.example.com/feed"},
		{Name: "Good", URL: "https://good.example.com/feed"},
	}

	stats := NewProcessor(fetcher, store).Run(context.Background(), sources)

	if stats.Sources != 3 {
		t.Errorf("Expected 3 sources, got %d", stats.Sources)
	}
	if stats.FailedSources != 1 {
		t.Errorf("Expected 1 failed source, got %d", stats.FailedSources)
	}
	if stats.Inserted != 5 {
		t.Errorf("Expected 5 inserted articles, got %d", stats.Inserted)
	}
	if len(store.byLink) != 5 {
		t.Errorf("Expected 5 stored articles, got %d", len(store.byLink))
	}

	// All three sources were attempted despite the first failing
	if len(fetcher.calls) != 3 {
		t.Errorf("Expected 3 fetch attempts, got %d", len(fetcher.calls))
	}
}

func TestRunSkipsInvalidURLWithoutFetching(t *testing.T) {
	fetcher := &fakeFetcher{
		entries: map[string][]parser.Entry{
			"https://good.example.com/feed": entriesFor(1, "https://good.example.com/"),
		},
	}
	store := newFakeStore()

	sources := []config.Source{
		{Name: "Broken", URL: "not-a-url"},
		{Name: "Good", URL: "https://good.example.com/feed"},
	}

	stats := NewProcessor(fetcher, store).Run(context.Background(), sources)

	if stats.FailedSources != 1 {
		t.Errorf("Expected 1 failed source, got %d", stats.FailedSources)
	}
	if stats.Inserted != 1 {
		t.Errorf("Expected 1 inserted article, got %d", stats.Inserted)
	}
	for _, call := range fetcher.calls {
		if call == "not-a-url" {
			t.Error("Invalid URL must not reach the fetcher")
		}
	}
}

func TestRunReportsSkippedDuplicates(t *testing.T) {
	entries := entriesFor(3, "https://news.example.com/")
	fetcher := &fakeFetcher{
		entries: map[string][]parser.Entry{
			"https://news.example.com/feed": entries,
		},
	}
	store := newFakeStore()
	sources := []config.Source{{Name: "News", URL: "https://news.example.com/feed"}}

	processor := NewProcessor(fetcher, store)

	first := processor.Run(context.Background(), sources)
	if first.Inserted != 3 || first.Skipped != 0 {
		t.Errorf("Expected first run 3 inserted / 0 skipped, got %d / %d", first.Inserted, first.Skipped)
	}

	second := processor.Run(context.Background(), sources)
	if second.Inserted != 0 || second.Skipped != 3 {
		t.Errorf("Expected second run 0 inserted / 3 skipped, got %d / %d", second.Inserted, second.Skipped)
	}
}

func TestRunContinuesAfterRecordFailure(t *testing.T) {
	entries := entriesFor(3, "https://news.example.com/")
	fetcher := &fakeFetcher{
		entries: map[string][]parser.Entry{
			"https://news.example.com/feed": entries,
		},
	}
	store := newFakeStore()
	store.insertErrs = map[string]error{
		entries[1].Link: errors.New("disk I/O error"),
	}
	sources := []config.Source{{Name: "News", URL: "https://news.example.com/feed"}}

	stats := NewProcessor(fetcher, store).Run(context.Background(), sources)

	// The bad record is dropped, the rest of the batch goes through
	if stats.Inserted != 2 {
		t.Errorf("Expected 2 inserted articles, got %d", stats.Inserted)
	}
	if len(store.byLink) != 2 {
		t.Errorf("Expected 2 stored articles, got %d", len(store.byLink))
	}
}
