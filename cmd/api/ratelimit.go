package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const limiterCleanupInterval = 5 * time.Minute

// FixedWindowLimiter limits requests per client address with a fixed
// window counter: the first request of a window starts it, and the
// counter resets when the window elapses. Stale windows are cleaned
// inline during Allow calls.
type FixedWindowLimiter struct {
	mu          sync.Mutex
	window      time.Duration
	max         int
	counters    map[string]*windowCounter
	lastCleanup time.Time
	now         func() time.Time
}

type windowCounter struct {
	count       int
	windowStart time.Time
}

// NewFixedWindowLimiter creates a limiter allowing max requests per key
// per window.
func NewFixedWindowLimiter(window time.Duration, max int) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		window:      window,
		max:         max,
		counters:    make(map[string]*windowCounter),
		lastCleanup: time.Now(),
		now:         time.Now,
	}
}

// Allow records a request for the key and reports whether it fits the
// current window.
func (l *FixedWindowLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	// Periodic cleanup of expired windows
	if now.Sub(l.lastCleanup) > limiterCleanupInterval {
		for k, c := range l.counters {
			if now.Sub(c.windowStart) >= l.window {
				delete(l.counters, k)
			}
		}
		l.lastCleanup = now
	}

	c, ok := l.counters[key]
	if !ok || now.Sub(c.windowStart) >= l.window {
		l.counters[key] = &windowCounter{count: 1, windowStart: now}
		return true
	}

	c.count++
	return c.count <= l.max
}

// RateLimit returns middleware that rejects requests over the limit with
// 429 and the given message.
func RateLimit(l *FixedWindowLimiter, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": message})
			return
		}
		c.Next()
	}
}
