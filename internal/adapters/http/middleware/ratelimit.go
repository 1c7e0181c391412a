package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/commerce/internal/core/logger"
)

type RateDecision struct {
	Allowed    bool
	Remaining  int
	ResetAfter time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (RateDecision, error)
}

// RateLimit throttles a route per caller. Authenticated callers are keyed by
// user id, everyone else by client IP. Limiter failures let the request through.
func RateLimit(limiter RateLimiter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := c.GetHeader(UserIDHeader)
		if caller == "" {
			caller = c.ClientIP()
		}
		key := fmt.Sprintf("%s:%s:%s", c.Request.Method, c.FullPath(), caller)

		decision, err := limiter.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.Error(c.Request.Context(), "rate limiter unavailable", err, map[string]any{
				"http.route": c.FullPath(),
			})
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			retryAfter := int(math.Ceil(decision.ResetAfter.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
