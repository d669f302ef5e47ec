package infrastructure

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	DefaultMessageLimit  = 30
	DefaultMessageWindow = time.Minute
)

// MessageRateLimiter implements fixed-window rate limiting per client key.
// Windows live in a go-cache store so idle clients are swept by its janitor.
type MessageRateLimiter struct {
	mu      sync.Mutex
	windows *gocache.Cache
	limit   int
	window  time.Duration
	now     func() time.Time
}

type rateWindow struct {
	count   int
	resetAt time.Time
}

// NewMessageRateLimiter allows limit requests per window for every key.
func NewMessageRateLimiter(limit int, window time.Duration) *MessageRateLimiter {
	if limit <= 0 {
		limit = DefaultMessageLimit
	}
	if window <= 0 {
		window = DefaultMessageWindow
	}
	return &MessageRateLimiter{
		windows: gocache.New(window, 5*window),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// Allow counts a request for key. When the window is exhausted it returns
// false and the time left until the window resets.
func (rl *MessageRateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	v, found := rl.windows.Get(key)
	w, _ := v.(*rateWindow)
	if !found || w == nil || now.After(w.resetAt) {
		rl.windows.Set(key, &rateWindow{count: 1, resetAt: now.Add(rl.window)}, rl.window)
		return true, 0
	}

	w.count++
	if w.count > rl.limit {
		return false, w.resetAt.Sub(now)
	}
	return true, 0
}

// Reset removes rate limit state for a key.
func (rl *MessageRateLimiter) Reset(key string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.windows.Delete(key)
}

// GetStats returns rate limiter statistics
func (rl *MessageRateLimiter) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"active_clients": rl.windows.ItemCount(),
		"limit":          rl.limit,
		"window_seconds": rl.window.Seconds(),
	}
}
