package intent

import (
	"fmt"
	"strconv"
	"strings"

	"quickentry/internal/extract"
	"quickentry/internal/model"
	"quickentry/internal/validate"
)

// RegistryConfig tunes assembler behavior.
type RegistryConfig struct {
	// BodyWeightKg feeds the activity calorie estimate when the model did
	// not supply a calorie count.
	BodyWeightKg float64
}

// Registry maps the closed intent set to per-intent assemblers.
type Registry struct {
	assemblers map[model.Intent]Assembler
	cfg        RegistryConfig
}

// NewRegistry builds the registry with the default assembler per intent.
func NewRegistry(cfg RegistryConfig) *Registry {
	if cfg.BodyWeightKg <= 0 {
		cfg.BodyWeightKg = 70
	}
	r := &Registry{cfg: cfg}
	r.assemblers = map[model.Intent]Assembler{
		model.IntentReminder:     r.assembleReminder,
		model.IntentEvent:        r.assembleEvent,
		model.IntentExpense:      r.assembleMoney,
		model.IntentIncome:       r.assembleMoney,
		model.IntentMeal:         r.assembleMeal,
		model.IntentActivity:     r.assembleActivity,
		model.IntentWorkStart:    r.assembleWork,
		model.IntentWorkEnd:      r.assembleWork,
		model.IntentJournal:      r.assembleJournal,
		model.IntentCalorieAdjst: r.assembleCalorieAdjustment,
	}
	return r
}

// Assemble dispatches the prediction to its intent's assembler.
func (r *Registry) Assemble(pred Prediction, text, lineID string) ([]model.SlotPrediction, error) {
	assembler, ok := r.assemblers[pred.Intent]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoAssembler, pred.Intent)
	}
	return assembler(pred, text, lineID), nil
}

func (r *Registry) assembleReminder(pred Prediction, text, _ string) []model.SlotPrediction {
	slots := []model.SlotPrediction{intentSlot(pred)}
	slots = appendSubject(slots, pred)
	slots = appendDayTime(slots, pred, model.SlotReminderDay, model.SlotReminderTime)
	return slots
}

func (r *Registry) assembleEvent(pred Prediction, text, _ string) []model.SlotPrediction {
	slots := []model.SlotPrediction{intentSlot(pred)}
	slots = appendSubject(slots, pred)
	slots = appendDayTime(slots, pred, model.SlotEventDay, model.SlotEventTime)
	if v := pred.Slot(KeyLocation); v != "" {
		slots = append(slots, modelSlot(model.SlotLocation, v, pred, true, ""))
	}
	if v := pred.Slot(KeyURL); v != "" {
		slots = append(slots, modelSlot(model.SlotURL, v, pred, true, ""))
	}
	return slots
}

func (r *Registry) assembleMoney(pred Prediction, text, _ string) []model.SlotPrediction {
	slots := []model.SlotPrediction{intentSlot(pred)}
	slots = appendSubject(slots, pred)

	amount := pred.Slot(KeyAmount)
	if amount == "" {
		amount = text
	}
	ok, msg := validate.Amount(amount)
	s := modelSlot(model.SlotAmount, amount, pred, ok, msg)
	if v, found := extract.FirstNumber(amount); found {
		if v < 0 {
			v = -v
		}
		s.RawValue = strconv.FormatFloat(v, 'f', -1, 64)
	}
	slots = append(slots, s)

	currency := pred.Slot(KeyCurrency)
	if currency == "" {
		if c, found := extract.FindCurrency(text); found {
			currency = c
		}
	}
	if currency != "" {
		ok, msg := validate.Currency(currency)
		slots = append(slots, modelSlot(model.SlotCurrency, currency, pred, ok, msg))
	}
	return slots
}

func (r *Registry) assembleMeal(pred Prediction, text, _ string) []model.SlotPrediction {
	slots := []model.SlotPrediction{intentSlot(pred)}
	slots = appendSubject(slots, pred)

	if v := pred.Slot(KeyCalories); v != "" {
		ok, msg := validate.PositiveNumber(v, 0)
		slots = append(slots, modelSlot(model.SlotCalories, v, pred, ok, msg))
	}
	for key, v := range pred.Slots {
		if !strings.HasPrefix(key, ItemCaloriePrefix) {
			continue
		}
		item := strings.TrimSpace(strings.TrimPrefix(key, ItemCaloriePrefix))
		if item == "" {
			continue
		}
		ok, msg := validate.PositiveNumber(v, 0)
		slots = append(slots, modelSlot(model.ItemCaloriesField(item), v, pred, ok, msg))
	}
	return slots
}

func (r *Registry) assembleActivity(pred Prediction, text, _ string) []model.SlotPrediction {
	slots := []model.SlotPrediction{intentSlot(pred)}
	slots = appendSubject(slots, pred)

	duration := pred.Slot(KeyDuration)
	if duration == "" {
		if v, ok := extract.DurationMinutes(text); ok {
			duration = strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	if duration != "" {
		ok, msg := validate.PositiveNumber(duration, 0)
		slots = append(slots, modelSlot(model.SlotDuration, duration, pred, ok, msg))
	}

	distance := pred.Slot(KeyDistance)
	if distance == "" {
		if v, ok := extract.DistanceKilometers(text); ok {
			distance = strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	if distance != "" {
		ok, msg := validate.PositiveNumber(distance, 0)
		slots = append(slots, modelSlot(model.SlotDistance, distance, pred, ok, msg))
	}

	calories := pred.Slot(KeyCalories)
	if calories == "" {
		if act, ok := extract.ActivityFromText(text); ok {
			distKm, _ := extract.FirstNumber(distance)
			durMin, _ := extract.FirstNumber(duration)
			if kcal, ok := extract.ActivityCalories(act, distKm, durMin, r.cfg.BodyWeightKg); ok {
				calories = strconv.Itoa(kcal)
			}
		}
	}
	if calories != "" {
		ok, msg := validate.PositiveNumber(calories, 0)
		slots = append(slots, modelSlot(model.SlotCalories, calories, pred, ok, msg))
	}
	return slots
}

func (r *Registry) assembleWork(pred Prediction, text, _ string) []model.SlotPrediction {
	slots := []model.SlotPrediction{intentSlot(pred)}
	if v := pred.Slot(KeyTime); v != "" {
		ok, msg := validate.Time(v)
		slots = append(slots, modelSlot(model.SlotReminderTime, v, pred, ok, msg))
	}
	return slots
}

func (r *Registry) assembleJournal(pred Prediction, text, _ string) []model.SlotPrediction {
	slots := []model.SlotPrediction{intentSlot(pred)}
	subject := pred.Slot(KeySubject)
	if subject == "" {
		subject = text
	}
	slots = append(slots, modelSlot(model.SlotSubject, subject, pred, subject != "", "subject is empty"))
	if v := pred.Slot(KeyMood); v != "" {
		slots = append(slots, modelSlot(model.SlotMood, v, pred, true, ""))
	}
	return slots
}

func (r *Registry) assembleCalorieAdjustment(pred Prediction, text, _ string) []model.SlotPrediction {
	slots := []model.SlotPrediction{intentSlot(pred)}
	calories := pred.Slot(KeyCalories)
	if calories == "" {
		calories = text
	}
	// Adjustments may be negative; only zero and non-numeric are rejected.
	ok, msg := validate.Amount(calories)
	slots = append(slots, modelSlot(model.SlotCalories, calories, pred, ok, msg))
	return slots
}

func intentSlot(pred Prediction) model.SlotPrediction {
	return modelSlot(model.SlotIntent, string(pred.Intent), pred, true, "")
}

func appendSubject(slots []model.SlotPrediction, pred Prediction) []model.SlotPrediction {
	subject := pred.Slot(KeySubject)
	if subject == "" {
		return slots
	}
	return append(slots, modelSlot(model.SlotSubject, subject, pred, true, ""))
}

func appendDayTime(slots []model.SlotPrediction, pred Prediction, dayField, timeField model.SlotField) []model.SlotPrediction {
	if v := pred.Slot(KeyDay); v != "" {
		ok, msg := validate.Day(v)
		slots = append(slots, modelSlot(dayField, v, pred, ok, msg))
	}
	if v := pred.Slot(KeyTime); v != "" {
		ok, msg := validate.Time(v)
		slots = append(slots, modelSlot(timeField, v, pred, ok, msg))
	}
	return slots
}

func modelSlot(field model.SlotField, value string, pred Prediction, valid bool, msg string) model.SlotPrediction {
	conf := pred.Confidence
	s := model.SlotPrediction{
		Field:      field,
		Value:      value,
		Valid:      valid,
		Confidence: &conf,
		Source:     model.SourceModel,
	}
	if !valid {
		s.Message = msg
	}
	return s
}
