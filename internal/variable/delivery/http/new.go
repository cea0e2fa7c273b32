// Package http is the HTTP delivery layer for the variable domain.
package http

import (
	"quickentry/internal/variable"
	"quickentry/pkg/log"
)

type handler struct {
	l  log.Logger
	uc variable.UseCase
}

// New creates a new HTTP handler for the variable domain.
func New(l log.Logger, uc variable.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
