package cfg

import (
	"time"
)

// GetFetchTimeout returns the per-feed HTTP timeout as time.Duration
func (c *Cfg) GetFetchTimeout() time.Duration {
	if c.FetchTimeout <= 0 {
		return 30 * time.Second // default 30 seconds
	}
	return time.Duration(c.FetchTimeout) * time.Second
}
