package mazeapi

import (
	"fmt"
	"net/http"

	"github.com/beka-birhanu/vinom-maze/api/identity"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

// RateLimit rejects requests once the caller's window is full. Callers are identified by
// their token's userID, falling back to the client IP.
func RateLimit(limiter i.RateLimiter, logger i.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := identity.UserID(c)
		if !ok {
			key = "ip:" + c.ClientIP()
		}

		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Error(fmt.Sprintf("Checking rate limit for %s: %s", key, err))
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "rate limiter unavailable"})
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many maze builds, try again later"})
			return
		}
		c.Next()
	}
}
