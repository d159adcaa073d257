package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"alumet/api/internal/config"
)

const (
	limiterCleanupInterval = 10 * time.Minute
	limiterMaxIdle         = 30 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a per-client token bucket to the public form
// submission endpoints. State is in-memory; a multi-instance deployment
// gets a per-instance budget, which is acceptable for abuse damping.
type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	rate      rate.Limit
	burst     int
	lastSweep time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		clients:   make(map[string]*clientLimiter),
		rate:      rate.Limit(cfg.Rate),
		burst:     cfg.Burst,
		lastSweep: time.Now(),
	}
}

func (rl *RateLimiter) allow(clientKey string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.sweepLocked()

	client, ok := rl.clients[clientKey]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.clients[clientKey] = client
	}
	client.lastSeen = time.Now()
	return client.limiter.Allow()
}

// sweepLocked drops idle client buckets. Running it inline on the request
// path keeps the limiter free of background goroutines; the sweep is
// throttled to once per interval. Caller holds rl.mu.
func (rl *RateLimiter) sweepLocked() {
	if time.Since(rl.lastSweep) < limiterCleanupInterval {
		return
	}
	rl.lastSweep = time.Now()
	for key, client := range rl.clients {
		if time.Since(client.lastSeen) > limiterMaxIdle {
			delete(rl.clients, key)
		}
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
