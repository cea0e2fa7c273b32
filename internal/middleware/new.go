// Package middleware carries the gin middleware shared by all HTTP routes.
package middleware

import (
	"quickentry/pkg/log"
)

type Middleware struct {
	l      log.Logger
	apiKey string
}

// New creates the middleware set. An empty apiKey disables auth entirely,
// which is the expected mode for a local single-user deployment.
func New(l log.Logger, apiKey string) Middleware {
	return Middleware{
		l:      l,
		apiKey: apiKey,
	}
}
