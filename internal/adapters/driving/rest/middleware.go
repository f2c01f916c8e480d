package rest

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kuradex-labs/kuradex/internal/adapters/driven/config/file"
	"github.com/kuradex-labs/kuradex/internal/logger"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware assigns each request a UUID, honouring one supplied
// by the client so upstream proxies can correlate.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// LoggingMiddleware logs one structured line per request.
func LoggingMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Info("request",
			zap.String("requestId", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", logger.Sanitize(path)),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()))
	}
}

// RecoveryMiddleware converts panics into 500 responses.
func RecoveryMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", logger.Sanitize(c.Request.URL.Path)))
				errorResponse(c, http.StatusInternalServerError, "internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}

// CORSMiddleware allows browser access from any origin. The API is
// read-only apart from rebuild, which is idempotent.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// SecurityHeadersMiddleware sets response headers on everything, file
// responses included.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Next()
	}
}

// clientLimiters tracks one token bucket per client IP. Entries idle past
// the expiry are dropped on the next sweep.
type clientLimiters struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	rps      rate.Limit
	burst    int
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const limiterExpiry = 10 * time.Minute

func (cl *clientLimiters) get(ip string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := time.Now()
	entry, ok := cl.limiters[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(cl.rps, cl.burst)}
		cl.limiters[ip] = entry
		cl.sweep(now)
	}
	entry.lastSeen = now
	return entry.limiter
}

// sweep drops stale entries; called with the lock held.
func (cl *clientLimiters) sweep(now time.Time) {
	for ip, entry := range cl.limiters {
		if now.Sub(entry.lastSeen) > limiterExpiry {
			delete(cl.limiters, ip)
		}
	}
}

// RateLimitMiddleware throttles each client IP to the configured rate.
func RateLimitMiddleware(cfg file.RateLimitConfig) gin.HandlerFunc {
	limiters := &clientLimiters{
		limiters: make(map[string]*limiterEntry),
		rps:      rate.Limit(cfg.RequestsPerSecond),
		burst:    cfg.Burst,
	}

	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP()).Allow() {
			errorResponse(c, http.StatusTooManyRequests, "rate limit exceeded")
			c.Abort()
			return
		}
		c.Next()
	}
}
