package intent

import "quickentry/internal/model"

// Raw slot keys the model is asked to emit. Per-item meal calories use the
// ItemCaloriePrefix followed by the item name.
const (
	KeySubject  = "subject"
	KeyDay      = "day"
	KeyTime     = "time"
	KeyAmount   = "amount"
	KeyCurrency = "currency"
	KeyCalories = "calories"
	KeyDuration = "duration"
	KeyDistance = "distance"
	KeyLocation = "location"
	KeyURL      = "url"
	KeyMood     = "mood"

	ItemCaloriePrefix = "calories."
)

// Prediction is the raw model output before slot assembly.
type Prediction struct {
	Intent     model.Intent
	Slots      map[string]string
	Confidence float64
}

// Slot returns the named raw slot value, empty when absent.
func (p Prediction) Slot(key string) string {
	return p.Slots[key]
}

// Assembler turns a raw prediction into validated slot predictions for one
// line. The line id is carried for assemblers that need per-line context.
type Assembler func(pred Prediction, text string, lineID string) []model.SlotPrediction
