package entry

import (
	"fmt"
	"strings"
	"time"

	"quickentry/internal/extract"
	"quickentry/internal/model"
	"quickentry/pkg/datemath"
)

// Summary renders the one-line preview for a slot-prediction list using the
// fixed per-intent templates. Day, time, and subject parts are each gated
// on the individual slot's validity.
func Summary(slots []model.SlotPrediction, originalText string, now time.Time) string {
	intent := model.Intent(slotValue(slots, model.SlotIntent))

	switch intent {
	case model.IntentWorkStart, model.IntentWorkEnd:
		return originalText + " - " + workClock(slots, now)

	case model.IntentIncome:
		return "+" + strippedAmount(slots)
	case model.IntentExpense:
		return "-" + strippedAmount(slots)

	case model.IntentMeal:
		return mealSummary(slots)

	case model.IntentReminder:
		return scheduledSummary("Reminder", slots, model.SlotReminderDay, model.SlotReminderTime)
	case model.IntentEvent:
		return scheduledSummary("Event", slots, model.SlotEventDay, model.SlotEventTime)

	case model.IntentActivity:
		if cal := slotValue(slots, model.SlotCalories); cal != "" {
			return fmt.Sprintf("%s - %s kcal", originalText, cal)
		}
	}

	return originalText
}

// workClock picks the first valid of the reminder/event time slots, falling
// back to the current clock.
func workClock(slots []model.SlotPrediction, now time.Time) string {
	for _, field := range []model.SlotField{model.SlotReminderTime, model.SlotEventTime} {
		if s, ok := findSlot(slots, field); ok && s.Valid {
			return s.Value
		}
	}
	return datemath.FormatClock(now)
}

// strippedAmount returns the amount with any sign and currency residue
// removed from the raw slot value.
func strippedAmount(slots []model.SlotPrediction) string {
	s, ok := findSlot(slots, model.SlotAmount)
	if !ok {
		return "0"
	}
	raw := s.RawValue
	if raw == "" {
		raw = s.Value
	}
	if v, ok := extract.FirstNumber(raw); ok {
		if v < 0 {
			v = -v
		}
		return formatAmount(v)
	}
	return strings.TrimLeft(raw, "+- ")
}

// mealSummary renders "<subject> <calories>" for single items. A subject
// containing the item delimiter is split, pairing each item with its
// per-item calorie slot, falling back to the item name alone.
func mealSummary(slots []model.SlotPrediction) string {
	subject := slotValue(slots, model.SlotSubject)
	if subject == "" {
		return slotValue(slots, model.SlotCalories)
	}

	if !strings.Contains(subject, MealItemDelimiter) {
		if cal := slotValue(slots, model.SlotCalories); cal != "" {
			return subject + " " + cal
		}
		return subject
	}

	items := strings.Split(subject, MealItemDelimiter)
	parts := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if s, ok := findSlot(slots, model.ItemCaloriesField(item)); ok {
			parts = append(parts, item+" "+s.Value)
			continue
		}
		parts = append(parts, item)
	}
	return strings.Join(parts, ", ")
}

// scheduledSummary renders "<Noun> will be created" with day, time, and
// subject appended independently when their slots are valid.
func scheduledSummary(noun string, slots []model.SlotPrediction, dayField, timeField model.SlotField) string {
	var b strings.Builder
	b.WriteString(noun)
	b.WriteString(" will be created")
	if s, ok := findSlot(slots, dayField); ok && s.Valid {
		b.WriteString(" on ")
		b.WriteString(s.Value)
	}
	if s, ok := findSlot(slots, timeField); ok && s.Valid {
		b.WriteString(" at ")
		b.WriteString(s.Value)
	}
	if s, ok := findSlot(slots, model.SlotSubject); ok && s.Valid && s.Value != "" {
		b.WriteString(" - ")
		b.WriteString(s.Value)
	}
	return b.String()
}

func findSlot(slots []model.SlotPrediction, field model.SlotField) (model.SlotPrediction, bool) {
	for _, s := range slots {
		if s.Field == field {
			return s, true
		}
	}
	return model.SlotPrediction{}, false
}

func slotValue(slots []model.SlotPrediction, field model.SlotField) string {
	s, ok := findSlot(slots, field)
	if !ok {
		return ""
	}
	return s.Value
}
