package parser

import "time"

// Entry is a normalized feed entry, a candidate for insertion into the
// article archive. Missing fields carry fixed placeholders so an entry is
// always storable.
type Entry struct {
	Title     string
	Link      string
	Summary   string
	Published time.Time
}
