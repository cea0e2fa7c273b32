// Package repository defines the persistence contract for variables.
package repository

import (
	"context"
	"errors"

	"quickentry/internal/model"
)

// ErrNotFound is returned when no variable matches the lookup.
var ErrNotFound = errors.New("variable not found in store")

// Repository persists variables per user scope.
type Repository interface {
	Create(ctx context.Context, sc model.Scope, v model.Variable) error
	Update(ctx context.Context, sc model.Scope, v model.Variable) error
	Delete(ctx context.Context, sc model.Scope, id string) error
	GetByID(ctx context.Context, sc model.Scope, id string) (model.Variable, error)
	GetByName(ctx context.Context, sc model.Scope, name string) (model.Variable, error)
	List(ctx context.Context, sc model.Scope, kind model.VariableKind, limit, offset int) ([]model.Variable, int, error)
}
