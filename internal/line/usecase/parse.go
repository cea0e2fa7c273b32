package usecase

import (
	"context"
	"errors"
	"strconv"

	"quickentry/internal/extract"
	"quickentry/internal/intent"
	"quickentry/internal/line"
	"quickentry/internal/model"
	"quickentry/internal/normalize"
)

// emptyResolver backs parsing when the variable snapshot fails; arithmetic
// still works for plain numeric lines.
type emptyResolver struct{}

func (emptyResolver) ByName(string) (model.Variable, bool) { return model.Variable{}, false }

// parse runs one full parse attempt: normalize, try the arithmetic
// shortcut, and only on failure dispatch to the intent model. Returns the
// slot predictions and an error message for slot-less failures.
func (uc *implUseCase) parse(ctx context.Context, sc model.Scope, id, text string) ([]model.SlotPrediction, string) {
	now := uc.now()
	normalized := normalize.Normalize(text, now)

	var vars extract.VariableResolver = emptyResolver{}
	if uc.variables != nil {
		if resolver, err := uc.variables.Resolver(ctx, sc); err == nil {
			vars = resolver
		} else {
			uc.l.Warnf(ctx, "variable snapshot failed, parsing without names: %v", err)
		}
	}

	if res, ok := extract.Arithmetic(normalized, vars); ok {
		return arithmeticSlots(res, text), ""
	}

	pred, err := uc.model.Predict(ctx, normalized)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, ""
		}
		if errors.Is(err, intent.ErrNoMatch) || errors.Is(err, intent.ErrUnknownIntent) {
			return nil, line.ErrUnparseable.Error()
		}
		uc.l.Errorf(ctx, "intent model failed for line %s: %v", id, err)
		return nil, line.ErrUnparseable.Error()
	}

	slots, err := uc.registry.Assemble(pred, normalized, id)
	if err != nil {
		return nil, line.ErrUnparseable.Error()
	}
	return slots, ""
}

// arithmeticSlots maps a shortcut result onto slot predictions, tagged with
// the pattern source.
func arithmeticSlots(res extract.ArithmeticResult, text string) []model.SlotPrediction {
	slots := []model.SlotPrediction{{
		Field:  model.SlotIntent,
		Value:  string(res.Intent),
		Valid:  true,
		Source: model.SourcePattern,
	}}

	if res.Intent == model.IntentMeal {
		slots = append(slots, model.SlotPrediction{
			Field:  model.SlotCalories,
			Value:  strconv.Itoa(res.Calories),
			Valid:  res.Calories != 0,
			Source: model.SourcePattern,
		})
		return slots
	}

	amount := model.SlotPrediction{
		Field:    model.SlotAmount,
		Value:    text,
		RawValue: strconv.FormatFloat(res.Amount, 'f', -1, 64),
		Valid:    res.Amount != 0,
		Source:   model.SourcePattern,
	}
	if !amount.Valid {
		amount.Message = "amount must be non-zero"
	}
	slots = append(slots, amount)

	if res.Currency != "" {
		slots = append(slots, model.SlotPrediction{
			Field:  model.SlotCurrency,
			Value:  res.Currency,
			Valid:  true,
			Source: model.SourcePattern,
		})
	}
	return slots
}
