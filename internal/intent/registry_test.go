package intent

import (
	"errors"
	"testing"

	"quickentry/internal/model"
)

func pred(intent model.Intent, conf float64, slots map[string]string) Prediction {
	return Prediction{Intent: intent, Slots: slots, Confidence: conf}
}

func fieldValue(t *testing.T, slots []model.SlotPrediction, field model.SlotField) model.SlotPrediction {
	t.Helper()
	for _, s := range slots {
		if s.Field == field {
			return s
		}
	}
	t.Fatalf("slot %q not produced", field)
	return model.SlotPrediction{}
}

func TestAssembleEvent(t *testing.T) {
	r := NewRegistry(RegistryConfig{})
	slots, err := r.Assemble(pred(model.IntentEvent, 0.9, map[string]string{
		KeySubject:  "Meeting",
		KeyDay:      "tomorrow",
		KeyTime:     "15:00",
		KeyLocation: "office",
	}), "Meeting tomorrow at 15:00 in the office", "line-1")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	day := fieldValue(t, slots, model.SlotEventDay)
	if !day.Valid || day.Value != "tomorrow" {
		t.Errorf("event day: %+v", day)
	}
	tm := fieldValue(t, slots, model.SlotEventTime)
	if !tm.Valid || tm.Value != "15:00" {
		t.Errorf("event time: %+v", tm)
	}
	if s := fieldValue(t, slots, model.SlotLocation); s.Value != "office" {
		t.Errorf("location: %+v", s)
	}
	if s := fieldValue(t, slots, model.SlotIntent); *s.Confidence != 0.9 || s.Source != model.SourceModel {
		t.Errorf("intent slot: %+v", s)
	}
}

func TestAssembleEventInvalidDayKeepsSlot(t *testing.T) {
	r := NewRegistry(RegistryConfig{})
	slots, err := r.Assemble(pred(model.IntentEvent, 0.6, map[string]string{
		KeyDay: "someday",
	}), "meet someday", "line-1")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	day := fieldValue(t, slots, model.SlotEventDay)
	if day.Valid || day.Message == "" {
		t.Errorf("invalid day must carry a message: %+v", day)
	}
}

func TestAssembleExpense(t *testing.T) {
	r := NewRegistry(RegistryConfig{})
	slots, err := r.Assemble(pred(model.IntentExpense, 0.8, map[string]string{
		KeySubject:  "lunch",
		KeyAmount:   "-12.5",
		KeyCurrency: "eur",
	}), "lunch 12.5 euro", "line-1")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	amount := fieldValue(t, slots, model.SlotAmount)
	if !amount.Valid || amount.RawValue != "12.5" {
		t.Errorf("amount: %+v", amount)
	}
	currency := fieldValue(t, slots, model.SlotCurrency)
	if !currency.Valid {
		t.Errorf("currency: %+v", currency)
	}
}

func TestAssembleExpenseFallsBackToTextCurrency(t *testing.T) {
	r := NewRegistry(RegistryConfig{})
	slots, err := r.Assemble(pred(model.IntentExpense, 0.8, map[string]string{
		KeyAmount: "80",
	}), "taxi 80 try", "line-1")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	currency := fieldValue(t, slots, model.SlotCurrency)
	if !currency.Valid || currency.Value != "TRY" {
		t.Errorf("currency from text: %+v", currency)
	}
}

func TestAssembleMealPerItemCalories(t *testing.T) {
	r := NewRegistry(RegistryConfig{})
	slots, err := r.Assemble(pred(model.IntentMeal, 0.7, map[string]string{
		KeySubject:                  "omelette, toast",
		ItemCaloriePrefix + "omelette": "300",
		ItemCaloriePrefix + "toast":    "120",
	}), "omelette and toast", "line-1")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if s := fieldValue(t, slots, model.ItemCaloriesField("omelette")); s.Value != "300" || !s.Valid {
		t.Errorf("omelette calories: %+v", s)
	}
	if s := fieldValue(t, slots, model.ItemCaloriesField("toast")); s.Value != "120" || !s.Valid {
		t.Errorf("toast calories: %+v", s)
	}
}

func TestAssembleActivityEstimatesCalories(t *testing.T) {
	r := NewRegistry(RegistryConfig{BodyWeightKg: 70})
	slots, err := r.Assemble(pred(model.IntentActivity, 0.85, map[string]string{}),
		"ran 5 km", "line-1")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if s := fieldValue(t, slots, model.SlotDistance); s.Value != "5" {
		t.Errorf("distance: %+v", s)
	}
	// 5 km x 70 kg x 1.03 kcal/kg/km
	if s := fieldValue(t, slots, model.SlotCalories); s.Value != "360" {
		t.Errorf("calories: %+v", s)
	}
}

func TestAssembleCalorieAdjustmentAllowsNegative(t *testing.T) {
	r := NewRegistry(RegistryConfig{})
	slots, err := r.Assemble(pred(model.IntentCalorieAdjst, 0.9, map[string]string{
		KeyCalories: "-150",
	}), "-150 kcal correction", "line-1")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if s := fieldValue(t, slots, model.SlotCalories); !s.Valid {
		t.Errorf("negative adjustment must stay valid: %+v", s)
	}
}

func TestAssembleUnknownIntent(t *testing.T) {
	r := NewRegistry(RegistryConfig{})
	if _, err := r.Assemble(pred(model.Intent("grocery"), 0.9, nil), "x", "line-1"); !errors.Is(err, ErrNoAssembler) {
		t.Errorf("err = %v, want ErrNoAssembler", err)
	}
}
