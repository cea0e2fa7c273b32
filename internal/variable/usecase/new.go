// Package usecase implements the variable domain logic.
package usecase

import (
	"quickentry/internal/variable/repository"
	pkgLog "quickentry/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

// New creates a new variable UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
