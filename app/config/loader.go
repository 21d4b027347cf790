package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of the feed sources file
type Loader struct {
	path string
}

// NewLoader creates a new sources loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the YAML sources file and returns the sources in file order.
func (l *Loader) Load() ([]Source, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var file SourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := l.validate(file.Sources); err != nil {
		return nil, fmt.Errorf("invalid sources file %s: %w", l.path, err)
	}

	log.Printf("Loaded %d feed sources from %s", len(file.Sources), l.path)
	return file.Sources, nil
}

// validate validates the source list
func (l *Loader) validate(sources []Source) error {
	if len(sources) == 0 {
		return fmt.Errorf("no feed sources configured")
	}

	seen := make(map[string]bool, len(sources))
	for i, source := range sources {
		if source.Name == "" {
			return fmt.Errorf("source at index %d has no name", i)
		}
		if source.URL == "" {
			return fmt.Errorf("source %q has no URL", source.Name)
		}
		if seen[source.Name] {
			return fmt.Errorf("duplicate source name: %q", source.Name)
		}
		seen[source.Name] = true
	}

	return nil
}
