// Package http is the HTTP delivery layer for the line domain.
package http

import (
	"quickentry/internal/line"
	"quickentry/pkg/log"
)

type handler struct {
	l  log.Logger
	uc line.UseCase
}

// New creates a new HTTP handler for the line domain.
func New(l log.Logger, uc line.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
