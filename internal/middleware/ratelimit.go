package middleware

import (
	"github.com/gin-gonic/gin"

	"research-chatbot/pkg/response"
)

// RateLimit applies a token-bucket limit across all clients. Disabled when
// rate limiting is off in config.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		if !m.limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: rejecting %s", c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
