package model

import "time"

// Intent is the coarse category a line is classified into.
type Intent string

const (
	IntentReminder     Intent = "reminder"
	IntentEvent        Intent = "event"
	IntentExpense      Intent = "expense"
	IntentIncome       Intent = "income"
	IntentMeal         Intent = "meal"
	IntentActivity     Intent = "activity"
	IntentWorkStart    Intent = "work_start"
	IntentWorkEnd      Intent = "work_end"
	IntentJournal      Intent = "journal"
	IntentCalorieAdjst Intent = "calorie_adjustment"
)

// Intents is the closed set of supported intents.
var Intents = []Intent{
	IntentReminder, IntentEvent, IntentExpense, IntentIncome, IntentMeal,
	IntentActivity, IntentWorkStart, IntentWorkEnd, IntentJournal,
	IntentCalorieAdjst,
}

// ParsedEntry is the canonical structured record assembled from a line's
// slot predictions at commit time. Immutable once built.
type ParsedEntry struct {
	Intent       Intent
	Subject      string
	ReminderDay  string // "YYYY-MM-DD" or day-label token
	ReminderTime string // "HH:MM"
	EventDay     string
	EventTime    string
	Amount       float64
	Currency     string
	Calories     int
	Duration     float64 // minutes
	Distance     float64 // kilometers
	Location     string
	URL          string
	Mood         string
	OriginalText string
}

// Override is a manual (subject, instant) pair attached to a line that takes
// precedence over model- or pattern-derived fields. Applied identically to
// reminder-shaped and event-shaped entries so a manual edit survives
// reclassification.
type Override struct {
	LineID  string
	Subject *string
	Instant *time.Time
}

// Scope carries request-scoped identity.
type Scope struct {
	UserID string
}
