package digest

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/randumduck/upsc-daily-news-digest/app/database"
)

// Assembler renders the daily digest document from the article archive.
type Assembler struct {
	store           database.ArticleStore
	articlesPerFeed int
}

// NewAssembler creates a new digest assembler
func NewAssembler(store database.ArticleStore, articlesPerFeed int) *Assembler {
	return &Assembler{
		store:           store,
		articlesPerFeed: articlesPerFeed,
	}
}

// BuildDaily renders the digest of articles first fetched on the calendar
// day containing now. The window opens at local midnight; published dates
// play no part in the selection.
func (a *Assembler) BuildDaily(now time.Time) (string, error) {
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	articles, err := a.store.GetFetchedSince(todayStart)
	if err != nil {
		return "", fmt.Errorf("failed to load today's articles: %w", err)
	}

	return a.render(now, articles), nil
}

// render builds the full HTML document. Sources appear in lexicographic
// order regardless of fetch timing; within a source the most recently
// fetched articles come first, capped at articlesPerFeed.
func (a *Assembler) render(now time.Time, articles []database.Article) string {
	pageTitle := fmt.Sprintf("Daily News Digest - %s", FormatDate(now))

	grouped := make(map[string][]database.Article)
	for _, article := range articles {
		grouped[article.Source] = append(grouped[article.Source], article)
	}

	sources := make([]string, 0, len(grouped))
	for source := range grouped {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	var buf bytes.Buffer
	WritePageOpen(&buf, pageTitle)
	buf.WriteString(fmt.Sprintf("<h1>%s</h1>", pageTitle))

	if len(sources) == 0 {
		buf.WriteString("<p>No new articles fetched today.</p>")
	} else {
		for _, source := range sources {
			buf.WriteString(fmt.Sprintf("<h2>%s</h2>", source))
			buf.WriteString("<ul>")

			group := grouped[source]
			if len(group) > a.articlesPerFeed {
				group = group[:a.articlesPerFeed]
			}
			for _, article := range group {
				buf.WriteString(fmt.Sprintf("<li><a href='%s'><strong>%s</strong></a><br><p>%s</p></li>",
					article.Link, article.Title, article.Summary))
			}

			buf.WriteString("</ul>")
		}
	}

	WritePageClose(&buf, "Generated by the Daily News Feeder.")
	return buf.String()
}

// FormatDate renders a date the way digest titles and notifications carry
// it, e.g. "03 July, 2023".
func FormatDate(t time.Time) string {
	return t.Format("02 January, 2006")
}
