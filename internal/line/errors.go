package line

import "errors"

// Domain-specific errors for the line package.
var (
	ErrLineNotFound = errors.New("line not found")
	ErrUnparseable  = errors.New("could not parse input")
	ErrNothingToDo  = errors.New("no lines to commit")
)
