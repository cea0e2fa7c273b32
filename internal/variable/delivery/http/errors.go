package http

import (
	"errors"

	"quickentry/internal/variable"
	pkgErrors "quickentry/pkg/errors"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, variable.ErrNotFound):
		return pkgErrors.NewHTTPError(404, "variable not found")
	case errors.Is(err, variable.ErrNameTaken):
		return pkgErrors.NewHTTPError(409, "variable name already exists")
	case errors.Is(err, variable.ErrEmptyName),
		errors.Is(err, variable.ErrInvalidName),
		errors.Is(err, variable.ErrInvalidKind),
		errors.Is(err, variable.ErrInvalidAmount),
		errors.Is(err, variable.ErrInvalidMeal):
		return pkgErrors.NewHTTPError(400, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
