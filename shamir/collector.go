package shamir

import (
	"fmt"
	"sync"
)

// Collector gathers shares one at a time and recovers the secret once the
// threshold is met. It is safe for concurrent use.
type Collector struct {
	threshold int
	opts      Options
	collected []*Share
	mu        sync.Mutex
}

// NewCollector creates a collector for a given threshold.
func NewCollector(threshold int, opts Options) (*Collector, error) {
	if threshold < 1 {
		return nil, fmt.Errorf("%w: k = %d", ErrInvalidThreshold, threshold)
	}
	return &Collector{threshold: threshold, opts: opts}, nil
}

// Add adds a share. Once threshold shares are collected it recovers the
// secret, returns it and clears the collected shares. Otherwise it returns a
// nil Recovery and no error, meaning more shares are needed.
func (c *Collector) Add(share *Share) (*Recovery, error) {
	if share == nil || share.X == nil || share.Y == nil {
		return nil, fmt.Errorf("%w: cannot be nil", ErrInvalidShare)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.collected {
		if existing.X.Cmp(share.X) == 0 {
			return nil, fmt.Errorf("%w: index %s already received", ErrDuplicateShare, share.X)
		}
	}
	c.collected = append(c.collected, share)
	if len(c.collected) < c.threshold {
		return nil, nil
	}
	shares := c.collected
	c.collected = nil
	return Recover(shares, c.threshold, c.opts)
}

// Pending returns the number of shares collected so far.
func (c *Collector) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.collected)
}
