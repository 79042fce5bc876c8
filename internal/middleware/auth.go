package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"research-chatbot/pkg/response"
)

// HeaderAPIKey carries the optional client API key.
const HeaderAPIKey = "X-API-Key"

// Auth checks the client API key when one is configured. With no key
// configured the endpoint is open.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			c.Next()
			return
		}

		provided := c.GetHeader(HeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.apiKey)) != 1 {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
