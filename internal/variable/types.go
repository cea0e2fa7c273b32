package variable

import "quickentry/internal/model"

// CreateInput carries a new variable definition. Exactly one payload shape
// applies: calories+grams for meal kinds, amount+currency for money kinds.
type CreateInput struct {
	Name     string
	Kind     model.VariableKind
	Calories int
	Grams    int
	Amount   float64
	Currency string
}

// UpdateInput is a partial update; zero values leave fields untouched.
type UpdateInput struct {
	ID       string
	Name     string
	Calories int
	Grams    int
	Amount   float64
	Currency string
}

// ListInput filters the variable listing.
type ListInput struct {
	Kind   model.VariableKind // optional
	Limit  int
	Offset int
}

// ListOutput is the paginated listing result.
type ListOutput struct {
	Variables []model.Variable
	Total     int
	Limit     int
	Offset    int
}
