package variable

import "errors"

// Domain-specific errors for the variable package.
var (
	ErrNotFound      = errors.New("variable not found")
	ErrNameTaken     = errors.New("variable name already exists")
	ErrEmptyName     = errors.New("variable name is empty")
	ErrInvalidName   = errors.New("variable name must be a single word")
	ErrInvalidKind   = errors.New("invalid variable kind")
	ErrInvalidAmount = errors.New("money variables need a non-zero amount and a supported currency")
	ErrInvalidMeal   = errors.New("meal variables need a positive calorie count")
)
