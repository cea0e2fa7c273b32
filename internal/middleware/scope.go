package middleware

import (
	"github.com/gin-gonic/gin"

	"quickentry/internal/model"
)

const (
	userIDHeader = "X-User-ID"
	scopeKey     = "quickentry.scope"

	// DefaultUserID is used when no user header is present; the service is
	// single-user by default.
	DefaultUserID = "local"
)

// Scope resolves the request's user scope from the X-User-ID header.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			userID = DefaultUserID
		}
		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// ScopeFrom extracts the scope set by the Scope middleware.
func ScopeFrom(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{UserID: DefaultUserID}
}
