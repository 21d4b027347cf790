package publish

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWriteDigest(t *testing.T) {
	dir := t.TempDir()
	publisher := NewPublisher(dir)

	date := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)
	if err := publisher.WriteDigest("<html>digest one</html>", date); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	artifact := filepath.Join(dir, "2024-01-01_daily_digest.html")
	content, err := os.ReadFile(artifact)
	if err != nil {
		t.Fatalf("Expected artifact to exist: %v", err)
	}
	if string(content) != "<html>digest one</html>" {
		t.Errorf("Unexpected artifact content: %s", content)
	}

	if _, err := os.Stat(filepath.Join(dir, "index.html")); err != nil {
		t.Errorf("Expected index.html to be written: %v", err)
	}
}

func TestWriteDigestCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "docs")
	publisher := NewPublisher(dir)

	if err := publisher.WriteDigest("<html></html>", time.Now()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Expected output directory to be created: %v", err)
	}
}

func TestWriteDigestOverwritesSameDay(t *testing.T) {
	dir := t.TempDir()
	publisher := NewPublisher(dir)

	date := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)
	if err := publisher.WriteDigest("first run", date); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := publisher.WriteDigest("second run", date); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "2024-01-01_daily_digest.html"))
	if err != nil {
		t.Fatalf("Expected artifact to exist: %v", err)
	}
	if string(content) != "second run" {
		t.Errorf("Expected same-day rerun to overwrite, got: %s", content)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read output dir: %v", err)
	}
	// One artifact plus index.html
	if len(entries) != 2 {
		t.Errorf("Expected 2 files in output dir, got %d", len(entries))
	}
}

func TestIndexListsNewestFirst(t *testing.T) {
	dir := t.TempDir()
	publisher := NewPublisher(dir)

	older := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)
	newer := time.Date(2024, 1, 2, 8, 0, 0, 0, time.Local)

	// Written oldest-last to prove the index sorts by name, not write order
	if err := publisher.WriteDigest("newer", newer); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := publisher.WriteDigest("older", older); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("Expected index.html to exist: %v", err)
	}
	html := string(index)

	newerIdx := strings.Index(html, "2024-01-02_daily_digest.html")
	olderIdx := strings.Index(html, "2024-01-01_daily_digest.html")
	if newerIdx == -1 || olderIdx == -1 {
		t.Fatal("Expected both artifacts in the index")
	}
	if newerIdx > olderIdx {
		t.Error("Expected 2024-01-02 to be listed before 2024-01-01")
	}

	if !strings.Contains(html, "Daily Digest for 2024-01-02") {
		t.Error("Expected human-readable label for the newer digest")
	}
}

func TestIndexIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	publisher := NewPublisher(dir)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("scratch"), 0644); err != nil {
		t.Fatalf("Failed to write foreign file: %v", err)
	}

	if err := publisher.WriteDigest("digest", time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("Expected index.html to exist: %v", err)
	}
	if strings.Contains(string(index), "notes.txt") {
		t.Error("Expected non-digest files to be excluded from the index")
	}
}
