// Package entry maps heterogeneous slot-prediction lists into the one
// canonical ParsedEntry record and its one-line preview string.
package entry

import (
	"strconv"
	"strings"

	"quickentry/internal/extract"
	"quickentry/internal/model"
	"quickentry/pkg/datemath"
)

// MealItemDelimiter splits a multi-item meal subject into its items.
const MealItemDelimiter = ","

// Convert assembles a ParsedEntry from a line's slot predictions. Slots
// marked invalid still contribute their values; validity gates only the
// preview templates and the commit decision.
func Convert(slots []model.SlotPrediction, originalText string) model.ParsedEntry {
	e := model.ParsedEntry{OriginalText: originalText}

	for _, s := range slots {
		value := s.Value
		if s.RawValue != "" {
			value = s.RawValue
		}
		switch {
		case s.Field == model.SlotIntent:
			e.Intent = model.Intent(value)
		case s.Field == model.SlotSubject:
			e.Subject = value
		case s.Field == model.SlotReminderDay:
			e.ReminderDay = value
		case s.Field == model.SlotReminderTime:
			e.ReminderTime = value
		case s.Field == model.SlotEventDay:
			e.EventDay = value
		case s.Field == model.SlotEventTime:
			e.EventTime = value
		case s.Field == model.SlotAmount:
			if v, ok := extract.FirstNumber(value); ok {
				e.Amount = v
			}
		case s.Field == model.SlotCurrency:
			e.Currency = strings.ToUpper(value)
		case s.Field == model.SlotCalories:
			if v, ok := extract.FirstNumber(value); ok {
				e.Calories = int(v)
			}
		case s.Field == model.SlotDuration:
			if v, ok := extract.FirstNumber(value); ok {
				e.Duration = v
			}
		case s.Field == model.SlotDistance:
			if v, ok := extract.FirstNumber(value); ok {
				e.Distance = v
			}
		case s.Field == model.SlotLocation:
			e.Location = value
		case s.Field == model.SlotURL:
			e.URL = value
		case s.Field == model.SlotMood:
			e.Mood = value
		}
	}

	return e
}

// ApplyOverride applies a manual (subject, instant) pair on top of the
// derived entry. The instant lands on both the reminder-shaped and the
// event-shaped day/time pairs so the edit survives reclassification.
func ApplyOverride(e model.ParsedEntry, ov *model.Override) model.ParsedEntry {
	if ov == nil {
		return e
	}
	if ov.Subject != nil {
		e.Subject = *ov.Subject
	}
	if ov.Instant != nil {
		day := datemath.FormatDay(*ov.Instant)
		clock := datemath.FormatClock(*ov.Instant)
		e.ReminderDay, e.ReminderTime = day, clock
		e.EventDay, e.EventTime = day, clock
	}
	return e
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
