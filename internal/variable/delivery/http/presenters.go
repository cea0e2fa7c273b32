package http

import (
	"time"

	"quickentry/internal/model"
	"quickentry/internal/variable"
)

// --- Request DTOs ---

type createReq struct {
	Name     string  `json:"name"     binding:"required,min=1,max=64"`
	Kind     string  `json:"kind"     binding:"required,oneof=meal expense income"`
	Calories int     `json:"calories" binding:"omitempty,min=0"`
	Grams    int     `json:"grams"    binding:"omitempty,min=0"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency" binding:"omitempty,len=3"`
}

func (r createReq) toInput() variable.CreateInput {
	return variable.CreateInput{
		Name:     r.Name,
		Kind:     model.VariableKind(r.Kind),
		Calories: r.Calories,
		Grams:    r.Grams,
		Amount:   r.Amount,
		Currency: r.Currency,
	}
}

type updateReq struct {
	ID       string  `json:"-"` // populated from URI param
	Name     string  `json:"name"     binding:"omitempty,min=1,max=64"`
	Calories int     `json:"calories" binding:"omitempty,min=0"`
	Grams    int     `json:"grams"    binding:"omitempty,min=0"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency" binding:"omitempty,len=3"`
}

func (r updateReq) toInput() variable.UpdateInput {
	return variable.UpdateInput{
		ID:       r.ID,
		Name:     r.Name,
		Calories: r.Calories,
		Grams:    r.Grams,
		Amount:   r.Amount,
		Currency: r.Currency,
	}
}

type listReq struct {
	Kind   string `form:"kind"   binding:"omitempty,oneof=meal expense income"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() variable.ListInput {
	return variable.ListInput{
		Kind:   model.VariableKind(r.Kind),
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

// --- Response DTOs ---

type variableResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Calories  int       `json:"calories,omitempty"`
	Grams     int       `json:"grams,omitempty"`
	Amount    float64   `json:"amount,omitempty"`
	Currency  string    `json:"currency,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newVariableResp(v model.Variable) variableResp {
	return variableResp{
		ID:        v.ID,
		Name:      v.Name,
		Kind:      string(v.Kind),
		Calories:  v.Calories,
		Grams:     v.Grams,
		Amount:    v.Amount,
		Currency:  v.Currency,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

type listResp struct {
	Variables []variableResp `json:"variables"`
	Total     int            `json:"total"`
	Limit     int            `json:"limit"`
	Offset    int            `json:"offset"`
}

func (h *handler) newListResp(out variable.ListOutput) listResp {
	vars := make([]variableResp, len(out.Variables))
	for i, v := range out.Variables {
		vars[i] = newVariableResp(v)
	}
	return listResp{
		Variables: vars,
		Total:     out.Total,
		Limit:     out.Limit,
		Offset:    out.Offset,
	}
}
