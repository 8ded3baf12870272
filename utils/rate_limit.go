package utils

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	cmap "github.com/orcaman/concurrent-map/v2"
)

type clientWindow struct {
	mu       sync.Mutex
	started  time.Time
	requests int
}

// RateLimiter counts mutating requests per client IP in fixed one minute windows
type RateLimiter struct {
	PerMinute int
	clients   cmap.ConcurrentMap[string, *clientWindow]
	now       func() time.Time
}

const rateLimitWindow = time.Minute

func NewRateLimiter(perMinute int) *RateLimiter {
	return &RateLimiter{
		PerMinute: perMinute,
		clients:   cmap.New[*clientWindow](),
		now:       time.Now,
	}
}

// Allow registers one request for ip and reports if it is within the limit
func (rl *RateLimiter) Allow(ip string) bool {
	if rl.PerMinute <= 0 {
		return true
	}
	now := rl.now()
	window := rl.clients.Upsert(ip, nil, func(exist bool, valueInMap, _ *clientWindow) *clientWindow {
		if exist {
			return valueInMap
		}
		return &clientWindow{started: now}
	})
	window.mu.Lock()
	defer window.mu.Unlock()
	if now.Sub(window.started) > rateLimitWindow {
		window.started = now
		window.requests = 0
	}
	window.requests++
	return window.requests <= rl.PerMinute
}

// Cleanup drops clients idle for more than two windows
func (rl *RateLimiter) Cleanup() {
	now := rl.now()
	for _, ip := range rl.clients.Keys() {
		rl.clients.RemoveCb(ip, func(_ string, w *clientWindow, exists bool) bool {
			if !exists {
				return false
			}
			w.mu.Lock()
			defer w.mu.Unlock()
			return now.Sub(w.started) > 2*rateLimitWindow
		})
	}
}

// Handler limits only non-GET requests, pages stay readable
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			c.Next()
			return
		}
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
