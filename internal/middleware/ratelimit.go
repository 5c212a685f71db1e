package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter counts requests per key in fixed windows. Used to slow down
// password guessing against the admin login; state is per process.
type RateLimiter struct {
	mu     sync.Mutex
	counts map[string]*windowCount
	limit  int
	window time.Duration
}

type windowCount struct {
	start time.Time
	n     int
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		counts: make(map[string]*windowCount),
		limit:  limit,
		window: window,
	}
}

func (r *RateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()

	w := r.counts[key]
	if w == nil || now.Sub(w.start) >= r.window {
		r.counts[key] = &windowCount{start: now, n: 1}
		r.evictStale(now)
		return true
	}
	if w.n >= r.limit {
		return false
	}
	w.n++
	return true
}

// evictStale drops expired windows so the map does not grow with every
// client IP ever seen. Called with the lock held.
func (r *RateLimiter) evictStale(now time.Time) {
	for k, w := range r.counts {
		if now.Sub(w.start) >= r.window {
			delete(r.counts, k)
		}
	}
}

// RateLimit limits by client IP.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
