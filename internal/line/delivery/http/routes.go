package http

import (
	"github.com/gin-gonic/gin"

	"quickentry/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	lines := rg.Group("/lines", mw.Auth(), mw.Scope())
	{
		lines.POST("", h.Add)
		lines.GET("", h.List)
		lines.PUT("/:id", h.UpdateText)
		lines.DELETE("/:id", h.Remove)
		lines.PUT("/:id/override", h.SetOverride)
		lines.POST("/commit", h.CommitAll)
		lines.GET("/events", h.Events)
	}

	work := rg.Group("/work", mw.Auth(), mw.Scope())
	{
		work.GET("/session", h.OpenSession)
	}
}
