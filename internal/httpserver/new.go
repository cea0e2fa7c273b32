// Package httpserver wires the gin engine, system routes, and the domain
// delivery handlers into one runnable server.
package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"quickentry/internal/line"
	"quickentry/internal/variable"
	"quickentry/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	apiKey      string

	// Domains
	lineUC     line.UseCase
	variableUC variable.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	APIKey      string

	LineUC     line.UseCase
	VariableUC variable.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		apiKey:      cfg.APIKey,
		lineUC:      cfg.LineUC,
		variableUC:  cfg.VariableUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.lineUC == nil {
		return errors.New("line usecase is required")
	}
	if srv.variableUC == nil {
		return errors.New("variable usecase is required")
	}
	return nil
}
