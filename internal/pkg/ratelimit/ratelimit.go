package ratelimit

import (
	"sync"
	"time"
)

// Limiter implements a per-identifier sliding-window request counter.
// Safe for concurrent use.
type Limiter struct {
	windows map[string]*window
	mu      sync.Mutex

	maxRequests int
	windowSize  time.Duration

	cleanupTicker *time.Ticker
	stopCleanup   chan struct{}
	stopOnce      sync.Once
}

// window tracks request timestamps for a single identifier.
type window struct {
	timestamps []time.Time
}

// NewLimiter creates a limiter allowing maxRequests per windowSize for each
// identifier (typically a client IP). A background goroutine drops idle
// identifiers; call Stop when the limiter is no longer needed.
func NewLimiter(maxRequests int, windowSize time.Duration) *Limiter {
	l := &Limiter{
		windows:     make(map[string]*window),
		maxRequests: maxRequests,
		windowSize:  windowSize,
		stopCleanup: make(chan struct{}),
	}

	l.cleanupTicker = time.NewTicker(10 * time.Minute)
	go l.cleanup()

	return l
}

// Allow reports whether a request from the given identifier is within the
// configured limit, counting it when it is.
func (l *Limiter) Allow(identifier string) bool {
	now := time.Now()
	cutoff := now.Add(-l.windowSize)

	l.mu.Lock()
	defer l.mu.Unlock()

	w, exists := l.windows[identifier]
	if !exists {
		w = &window{}
		l.windows[identifier] = w
	}

	// Drop timestamps that slid out of the window
	kept := w.timestamps[:0]
	for _, ts := range w.timestamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	w.timestamps = kept

	if len(w.timestamps) >= l.maxRequests {
		return false
	}

	w.timestamps = append(w.timestamps, now)
	return true
}

// Stop terminates the background cleanup goroutine.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		l.cleanupTicker.Stop()
		close(l.stopCleanup)
	})
}

// cleanup periodically removes identifiers with no requests in the window.
func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupTicker.C:
			cutoff := time.Now().Add(-l.windowSize)
			l.mu.Lock()
			for id, w := range l.windows {
				active := false
				for _, ts := range w.timestamps {
					if ts.After(cutoff) {
						active = true
						break
					}
				}
				if !active {
					delete(l.windows, id)
				}
			}
			l.mu.Unlock()
		case <-l.stopCleanup:
			return
		}
	}
}
