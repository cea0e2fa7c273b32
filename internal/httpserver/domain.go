package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	lineHTTP "quickentry/internal/line/delivery/http"
	"quickentry/internal/middleware"
	variableHTTP "quickentry/internal/variable/delivery/http"
)

// setupLineDomain registers the line routes: the quick-entry sheet itself.
func (srv HTTPServer) setupLineDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := lineHTTP.New(srv.l, srv.lineUC)
	lineHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Line domain registered")
}

// setupVariableDomain registers the variable CRUD routes.
func (srv HTTPServer) setupVariableDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := variableHTTP.New(srv.l, srv.variableUC)
	variableHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Variable domain registered")
}
