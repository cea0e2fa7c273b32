package http

import (
	"github.com/gin-gonic/gin"

	"quickentry/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	vars := rg.Group("/variables", mw.Auth(), mw.Scope())
	{
		vars.POST("", h.Create)
		vars.GET("", h.List)
		vars.GET("/:id", h.Detail)
		vars.PUT("/:id", h.Update)
		vars.DELETE("/:id", h.Delete)
	}
}
