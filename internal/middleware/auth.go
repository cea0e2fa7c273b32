package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"quickentry/pkg/response"
)

const apiKeyHeader = "X-API-Key"

// Auth rejects requests without the configured API key. A blank configured
// key turns this into a pass-through.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			c.Next()
			return
		}

		got := c.GetHeader(apiKeyHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.apiKey)) != 1 {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
