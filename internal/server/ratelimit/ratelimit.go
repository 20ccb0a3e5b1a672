// Package ratelimit provides a token bucket limiter for throttling
// expensive analysis requests per client.
package ratelimit

import (
	"sync"
	"time"
)

// Config holds limiter settings. A zero Limit disables limiting.
type Config struct {
	Limit  int           // Requests allowed per Window
	Window time.Duration // Refill window
	Burst  int           // Bucket capacity; defaults to Limit when <= 0
}

// Info reports the limiter state for a client after a decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// Limiter tracks a token bucket per client ID.
type Limiter struct {
	mu      sync.Mutex
	cfg     Config
	rate    float64 // tokens per second
	buckets map[string]*bucket
	stop    chan struct{}
}

// NewLimiter creates a limiter and starts a background sweep that drops
// buckets idle for more than an hour.
func NewLimiter(cfg Config) *Limiter {
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.Limit
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	l := &Limiter{
		cfg:     cfg,
		rate:    float64(cfg.Limit) / cfg.Window.Seconds(),
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
	}
	if cfg.Limit > 0 {
		go l.sweep()
	}
	return l
}

// Allow consumes a token for clientID if one is available.
func (l *Limiter) Allow(clientID string) Info {
	if l.cfg.Limit <= 0 {
		return Info{Allowed: true}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{tokens: float64(l.cfg.Burst)}
		l.buckets[clientID] = b
	} else {
		b.tokens += now.Sub(b.lastSeen).Seconds() * l.rate
		if b.tokens > float64(l.cfg.Burst) {
			b.tokens = float64(l.cfg.Burst)
		}
	}
	b.lastSeen = now

	info := Info{Limit: l.cfg.Limit}
	if b.tokens >= 1.0 {
		b.tokens--
		info.Allowed = true
		info.Remaining = int(b.tokens)
		return info
	}

	info.Remaining = 0
	info.RetryAfter = time.Duration((1.0 - b.tokens) / l.rate * float64(time.Second))
	return info
}

// Stop terminates the background sweep.
func (l *Limiter) Stop() {
	close(l.stop)
}

func (l *Limiter) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-time.Hour)
			l.mu.Lock()
			for id, b := range l.buckets {
				if b.lastSeen.Before(cutoff) {
					delete(l.buckets, id)
				}
			}
			l.mu.Unlock()
		case <-l.stop:
			return
		}
	}
}
