package middleware

import (
	"sync"
	"time"

	"github.com/GSSolutions-CPT/GSS-OS/internal/error/code"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/response"

	"github.com/gin-gonic/gin"
)

// TokenBucket is a simple token bucket rate limiter
type TokenBucket struct {
	rate       float64 // tokens added per second
	capacity   int
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

// NewTokenBucket creates a new token bucket limiter
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Allow attempts to take one token
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

var (
	keyLimiters   = make(map[string]*TokenBucket)
	keyLimitersMu sync.RWMutex
)

// RateLimiterConfig configures a rate limiting middleware
type RateLimiterConfig struct {
	Rate      float64 // requests allowed per second
	Burst     int
	LimitType string // "ip", "path" or "combined"
}

// DefaultRateLimiterConfig is the fallback limiter configuration
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:      1,
	Burst:     5,
	LimitType: "ip",
}

func getLimiter(key string, cfg RateLimiterConfig) *TokenBucket {
	keyLimitersMu.RLock()
	limiter, exists := keyLimiters[key]
	keyLimitersMu.RUnlock()

	if !exists {
		limiter = NewTokenBucket(cfg.Rate, cfg.Burst)
		keyLimitersMu.Lock()
		keyLimiters[key] = limiter
		keyLimitersMu.Unlock()
	}

	return limiter
}

// RateLimiter creates a rate limiting middleware
func RateLimiter(config ...RateLimiterConfig) gin.HandlerFunc {
	cfg := DefaultRateLimiterConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRateLimiterConfig.Rate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimiterConfig.Burst
	}
	if cfg.LimitType == "" {
		cfg.LimitType = DefaultRateLimiterConfig.LimitType
	}

	return func(c *gin.Context) {
		var key string
		switch cfg.LimitType {
		case "path":
			key = "path:" + c.Request.URL.Path
		case "combined":
			key = c.ClientIP() + ":" + c.Request.URL.Path
		default:
			key = c.ClientIP()
		}

		if !getLimiter(key, cfg).Allow() {
			response.FailWithMessage(c, code.ErrTooManyRequests, "Too many requests, please try again later", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// IPRateLimiter limits per client IP
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{Rate: rate, Burst: burst, LimitType: "ip"})
}

// PathRateLimiter limits per request path
func PathRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{Rate: rate, Burst: burst, LimitType: "path"})
}

// Idle limiters are discarded wholesale; buckets refill instantly on the next
// request so dropping state is harmless
func init() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			keyLimitersMu.Lock()
			keyLimiters = make(map[string]*TokenBucket)
			keyLimitersMu.Unlock()
		}
	}()
}
