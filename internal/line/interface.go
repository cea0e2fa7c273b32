// Package line owns the per-line parse lifecycle: the debounced state
// machine that turns raw keystrokes into validated slot predictions, and the
// bulk commit that turns finished lines into entries and side effects.
package line

import (
	"context"

	"quickentry/internal/extract"
	"quickentry/internal/model"
	"quickentry/pkg/gcalendar"
)

// UseCase defines the business logic interface for the line domain.
type UseCase interface {
	// Add creates a new empty line at the end of the sequence.
	Add(ctx context.Context, sc model.Scope, text string) (View, error)

	// UpdateText replaces a line's text. Any in-flight parse for the line
	// is cancelled and, when the text qualifies, a new debounced parse is
	// scheduled.
	UpdateText(ctx context.Context, sc model.Scope, id, text string) (View, error)

	// Remove deletes a line and cancels its in-flight parse.
	Remove(ctx context.Context, sc model.Scope, id string) error

	// List returns all lines in order with their current parse results.
	List(ctx context.Context, sc model.Scope) []View

	// SetOverride attaches a manual (subject, instant) pair to a line.
	SetOverride(ctx context.Context, sc model.Scope, ov model.Override) error

	// CommitAll rebuilds every non-empty line's entry, dispatches the
	// intent-specific side effect, and partitions the lines into succeeded
	// (removed) and failed (retained).
	CommitAll(ctx context.Context, sc model.Scope) (CommitOutput, error)

	// OpenSession returns the currently open work session, if any.
	OpenSession(ctx context.Context, sc model.Scope) (model.WorkSession, bool)

	// Events exposes the state-transition stream. Transitions are emitted
	// best-effort; slow consumers miss events rather than block parsing.
	Events() <-chan Event

	// Close cancels all in-flight parses.
	Close()
}

// Calendar is the slice of the calendar client the commit path needs.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// VariableSource supplies the variable-name snapshot the arithmetic
// shortcut resolves references against. The variable UseCase satisfies it.
type VariableSource interface {
	Resolver(ctx context.Context, sc model.Scope) (extract.VariableResolver, error)
}
