// Package variable manages user-named recurring tokens (meals, expenses,
// incomes) with fixed numeric payloads, referenced by name inside arithmetic
// shortcut lines.
package variable

import (
	"context"

	"quickentry/internal/extract"
	"quickentry/internal/model"
)

// UseCase defines the business logic interface for the variable domain.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Variable, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Variable, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	Detail(ctx context.Context, sc model.Scope, id string) (model.Variable, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Resolver snapshots the scope's variables for name lookups inside the
	// arithmetic shortcut. The snapshot is immutable once taken.
	Resolver(ctx context.Context, sc model.Scope) (extract.VariableResolver, error)
}
