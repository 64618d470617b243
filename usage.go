package storelingo

import "sync"

// UsageCounter accumulates token consumption across a service instance. Both
// counters are monotonic; only Reset clears them. Safe for concurrent readers
// (progress and telemetry) alongside the sequential translation caller.
type UsageCounter struct {
	mu          sync.Mutex
	totalTokens int64
	requests    int64
}

// NewUsageCounter creates a zeroed counter.
func NewUsageCounter() *UsageCounter {
	return &UsageCounter{}
}

// Add records the usage of one completed upstream call.
func (c *UsageCounter) Add(u TokenUsage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.totalTokens += int64(u.TotalTokens)
	c.requests++
}

// TotalTokens returns the accumulated token count.
func (c *UsageCounter) TotalTokens() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalTokens
}

// Requests returns the number of recorded upstream calls.
func (c *UsageCounter) Requests() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requests
}

// Reset zeroes both counters. Intended for explicit user action only.
func (c *UsageCounter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.totalTokens = 0
	c.requests = 0
}
