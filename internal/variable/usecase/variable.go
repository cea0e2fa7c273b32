package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"quickentry/internal/extract"
	"quickentry/internal/model"
	"quickentry/internal/variable"
	"quickentry/internal/variable/repository"
)

// Names must be usable as bare tokens inside arithmetic lines ("+kahve -50"),
// so they are single words starting with a letter.
var nameRe = regexp.MustCompile(`^\p{L}[\p{L}\d]*$`)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input variable.CreateInput) (model.Variable, error) {
	name, err := normalizeName(input.Name)
	if err != nil {
		return model.Variable{}, err
	}
	if err := validatePayload(input.Kind, input.Calories, input.Amount, input.Currency); err != nil {
		return model.Variable{}, err
	}

	if _, err := uc.repo.GetByName(ctx, sc, name); err == nil {
		return model.Variable{}, variable.ErrNameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return model.Variable{}, fmt.Errorf("check name: %w", err)
	}

	now := time.Now()
	v := model.Variable{
		ID:        uuid.New().String(),
		Name:      name,
		Kind:      input.Kind,
		Calories:  input.Calories,
		Grams:     input.Grams,
		Amount:    input.Amount,
		Currency:  strings.ToUpper(input.Currency),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, sc, v); err != nil {
		return model.Variable{}, fmt.Errorf("create variable: %w", err)
	}

	uc.l.Infof(ctx, "variable created name=%s kind=%s", v.Name, v.Kind)
	return v, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input variable.UpdateInput) (model.Variable, error) {
	v, err := uc.Detail(ctx, sc, input.ID)
	if err != nil {
		return model.Variable{}, err
	}

	if input.Name != "" {
		name, err := normalizeName(input.Name)
		if err != nil {
			return model.Variable{}, err
		}
		if name != v.Name {
			if _, err := uc.repo.GetByName(ctx, sc, name); err == nil {
				return model.Variable{}, variable.ErrNameTaken
			} else if !errors.Is(err, repository.ErrNotFound) {
				return model.Variable{}, fmt.Errorf("check name: %w", err)
			}
		}
		v.Name = name
	}
	if input.Calories != 0 {
		v.Calories = input.Calories
	}
	if input.Grams != 0 {
		v.Grams = input.Grams
	}
	if input.Amount != 0 {
		v.Amount = input.Amount
	}
	if input.Currency != "" {
		v.Currency = strings.ToUpper(input.Currency)
	}

	if err := validatePayload(v.Kind, v.Calories, v.Amount, v.Currency); err != nil {
		return model.Variable{}, err
	}

	v.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, sc, v); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Variable{}, variable.ErrNotFound
		}
		return model.Variable{}, fmt.Errorf("update variable: %w", err)
	}
	return v, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return variable.ErrNotFound
		}
		return fmt.Errorf("delete variable: %w", err)
	}
	return nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Variable, error) {
	v, err := uc.repo.GetByID(ctx, sc, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Variable{}, variable.ErrNotFound
		}
		return model.Variable{}, fmt.Errorf("get variable: %w", err)
	}
	return v, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input variable.ListInput) (variable.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	vars, total, err := uc.repo.List(ctx, sc, input.Kind, limit, offset)
	if err != nil {
		return variable.ListOutput{}, fmt.Errorf("list variables: %w", err)
	}
	return variable.ListOutput{
		Variables: vars,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}, nil
}

// mapResolver is an immutable name index over one scope's variables.
type mapResolver map[string]model.Variable

func (r mapResolver) ByName(name string) (model.Variable, bool) {
	v, ok := r[strings.ToLower(name)]
	return v, ok
}

func (uc *implUseCase) Resolver(ctx context.Context, sc model.Scope) (extract.VariableResolver, error) {
	vars, _, err := uc.repo.List(ctx, sc, "", 1000, 0)
	if err != nil {
		return nil, fmt.Errorf("snapshot variables: %w", err)
	}
	idx := make(mapResolver, len(vars))
	for _, v := range vars {
		idx[v.Name] = v
	}
	return idx, nil
}

func normalizeName(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", variable.ErrEmptyName
	}
	if !nameRe.MatchString(name) {
		return "", fmt.Errorf("%w: %q", variable.ErrInvalidName, name)
	}
	return name, nil
}

func validatePayload(kind model.VariableKind, calories int, amount float64, currency string) error {
	switch kind {
	case model.VariableMeal:
		if calories <= 0 {
			return variable.ErrInvalidMeal
		}
	case model.VariableExpense, model.VariableIncome:
		if amount == 0 || !extract.IsSupportedCurrency(currency) {
			return variable.ErrInvalidAmount
		}
	default:
		return fmt.Errorf("%w: %q", variable.ErrInvalidKind, kind)
	}
	return nil
}
