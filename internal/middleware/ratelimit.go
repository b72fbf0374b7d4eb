package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/Butterfli-Software/sanki-yedim/internal/util"

	"github.com/gin-gonic/gin"
)

type rateBucket struct {
	count   int
	resetAt time.Time
}

// RateLimiter is a fixed-window in-process limiter keyed by client
// address. State lives in memory only: it does not persist across
// restarts, and multiple instances each enforce the limit independently.
type RateLimiter struct {
	mu      sync.Mutex
	window  time.Duration
	max     int
	now     func() time.Time
	buckets map[string]*rateBucket
}

// NewRateLimiter builds a limiter allowing max requests per window.
// A nil now func uses the wall clock.
func NewRateLimiter(window time.Duration, max int, now func() time.Time) *RateLimiter {
	if now == nil {
		now = time.Now
	}
	return &RateLimiter{
		window:  window,
		max:     max,
		now:     now,
		buckets: make(map[string]*rateBucket),
	}
}

// Allow records one request for key and reports whether it is within the
// window's budget.
func (r *RateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	b, ok := r.buckets[key]
	if !ok || b.resetAt.Before(now) {
		r.buckets[key] = &rateBucket{count: 1, resetAt: now.Add(r.window)}
		return true
	}

	b.count++
	return b.count <= r.max
}

// Sweep drops expired buckets.
func (r *RateLimiter) Sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for key, b := range r.buckets {
		if b.resetAt.Before(now) {
			delete(r.buckets, key)
		}
	}
}

// StartSweeping sweeps expired buckets on an interval for the life of the
// process.
func (r *RateLimiter) StartSweeping(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			r.Sweep()
		}
	}()
}

// Middleware throttles requests by client IP, answering 429 over budget.
func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.Allow(c.ClientIP()) {
			util.Error(c, http.StatusTooManyRequests, util.CodeRateLimit,
				"Too many requests, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
