package client

import (
	"context"
	"sync"
	"time"
)

// Throttle is the interface for client-side rate limiting strategies applied
// by HTTPTransport before each request.
type Throttle interface {
	// Acquire blocks until a request slot is available.
	Acquire(ctx context.Context) error
	// Reset clears the throttle state.
	Reset()
}

// SlidingWindowThrottle allows at most limit requests in any window.
type SlidingWindowThrottle struct {
	mu         sync.Mutex
	limit      int
	window     time.Duration
	timestamps []time.Time
}

// NewSlidingWindowThrottle creates a new sliding window throttle.
// Defaults are 100 requests per 10 seconds.
func NewSlidingWindowThrottle(limit int, window time.Duration) *SlidingWindowThrottle {
	if limit <= 0 {
		limit = 100
	}
	if window <= 0 {
		window = 10 * time.Second
	}
	return &SlidingWindowThrottle{
		limit:      limit,
		window:     window,
		timestamps: make([]time.Time, 0, limit),
	}
}

// Acquire waits until a request slot is available.
func (t *SlidingWindowThrottle) Acquire(ctx context.Context) error {
	for {
		t.mu.Lock()
		now := time.Now()
		windowStart := now.Add(-t.window)

		// Remove timestamps outside the window
		kept := t.timestamps[:0]
		for _, ts := range t.timestamps {
			if ts.After(windowStart) {
				kept = append(kept, ts)
			}
		}
		t.timestamps = kept

		if len(t.timestamps) < t.limit {
			t.timestamps = append(t.timestamps, now)
			t.mu.Unlock()
			return nil
		}

		// Wait until the oldest request exits the window
		waitTime := t.timestamps[0].Add(t.window).Sub(now)
		t.mu.Unlock()

		if waitTime <= 0 {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

// GetWindowCount returns the number of requests in the current window.
func (t *SlidingWindowThrottle) GetWindowCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	windowStart := time.Now().Add(-t.window)
	count := 0
	for _, ts := range t.timestamps {
		if ts.After(windowStart) {
			count++
		}
	}
	return count
}

// GetRemaining returns remaining requests available in the current window.
func (t *SlidingWindowThrottle) GetRemaining() int {
	return max(0, t.limit-t.GetWindowCount())
}

// Reset clears the throttle state.
func (t *SlidingWindowThrottle) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.timestamps = t.timestamps[:0]
}

// NoOpThrottle is a throttle that does nothing (for when throttling is disabled).
type NoOpThrottle struct{}

// NewNoOpThrottle creates a no-op throttle.
func NewNoOpThrottle() *NoOpThrottle {
	return &NoOpThrottle{}
}

// Acquire does nothing and returns immediately.
func (t *NoOpThrottle) Acquire(ctx context.Context) error {
	return nil
}

// Reset does nothing.
func (t *NoOpThrottle) Reset() {}
