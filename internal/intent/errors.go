package intent

import "errors"

var (
	// ErrNoMatch indicates the model could not classify the text
	ErrNoMatch = errors.New("no intent matched")

	// ErrUnknownIntent indicates the model returned an intent outside the closed set
	ErrUnknownIntent = errors.New("unknown intent")

	// ErrNoAssembler indicates no assembler is registered for the intent
	ErrNoAssembler = errors.New("no assembler registered for intent")
)
