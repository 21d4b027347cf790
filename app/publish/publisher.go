package publish

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/randumduck/upsc-daily-news-digest/app/digest"
)

const artifactSuffix = "_daily_digest.html"

// Publisher writes digest artifacts into the output directory and keeps the
// archive index page in sync with what is on disk.
type Publisher struct {
	outputDir string
}

// NewPublisher creates a new publisher
func NewPublisher(outputDir string) *Publisher {
	return &Publisher{outputDir: outputDir}
}

// WriteDigest saves the rendered digest under a date-derived filename and
// regenerates the archive index. Running twice on the same calendar day
// overwrites that day's artifact.
func (p *Publisher) WriteDigest(html string, date time.Time) error {
	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	name := date.Format("2006-01-02") + artifactSuffix
	path := filepath.Join(p.outputDir, name)
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write digest: %w", err)
	}
	log.Printf("Daily digest saved to %s", path)

	if err := p.rebuildIndex(); err != nil {
		return fmt.Errorf("failed to rebuild index: %w", err)
	}

	return nil
}

// rebuildIndex lists every digest artifact in the output directory, newest
// date first (the filename embeds a sortable date), and rewrites index.html.
func (p *Publisher) rebuildIndex() error {
	entries, err := os.ReadDir(p.outputDir)
	if err != nil {
		return fmt.Errorf("failed to read output directory: %w", err)
	}

	var digests []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), artifactSuffix) {
			digests = append(digests, entry.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(digests)))

	title := "Daily News Digests Archive"
	var buf bytes.Buffer
	digest.WritePageOpen(&buf, title)
	buf.WriteString(fmt.Sprintf("<h1>%s</h1>\n<ul>\n", title))
	for _, name := range digests {
		label := strings.TrimSuffix(name, artifactSuffix)
		buf.WriteString(fmt.Sprintf("<li><a href='./%s'>Daily Digest for %s</a></li>\n", name, label))
	}
	buf.WriteString("</ul>\n")
	digest.WritePageClose(&buf, "")

	indexPath := filepath.Join(p.outputDir, "index.html")
	if err := os.WriteFile(indexPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	log.Printf("index.html updated (%d digests listed)", len(digests))

	return nil
}
