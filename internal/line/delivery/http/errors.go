package http

import (
	"errors"

	"quickentry/internal/line"
	pkgErrors "quickentry/pkg/errors"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, line.ErrLineNotFound):
		return pkgErrors.NewHTTPError(404, "line not found")
	case errors.Is(err, line.ErrNothingToDo):
		return pkgErrors.NewHTTPError(400, "no non-empty lines to commit")
	case errors.Is(err, line.ErrUnparseable):
		return pkgErrors.NewHTTPError(400, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
