package config

// Source is a single configured feed: a display name and its RSS/Atom URL.
type Source struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// SourcesFile is the on-disk shape of the feed sources file. Sources are a
// list rather than a mapping so file order is preserved.
type SourcesFile struct {
	Sources []Source `yaml:"sources"`
}
