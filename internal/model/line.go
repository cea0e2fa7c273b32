package model

// LineStatus is the lifecycle state of an input line.
type LineStatus string

const (
	LineStatusIdle    LineStatus = "idle"
	LineStatusLoading LineStatus = "loading"
	LineStatusSuccess LineStatus = "success"
	LineStatusError   LineStatus = "error"
)

// Line is one free-form input line being edited by the user.
type Line struct {
	ID       string
	Text     string
	Status   LineStatus
	Position int // order within the entry sheet
}

// SlotField names a typed field extracted from a line.
type SlotField string

const (
	SlotIntent       SlotField = "Intent"
	SlotSubject      SlotField = "Subject"
	SlotReminderTime SlotField = "Reminder Time"
	SlotReminderDay  SlotField = "Reminder Day"
	SlotEventTime    SlotField = "Event Time"
	SlotEventDay     SlotField = "Event Day"
	SlotAmount       SlotField = "Amount"
	SlotCurrency     SlotField = "Currency"
	SlotCalories     SlotField = "Calories"
	SlotDuration     SlotField = "Duration"
	SlotDistance     SlotField = "Distance"
	SlotLocation     SlotField = "Location"
	SlotURL          SlotField = "URL"
	SlotMood         SlotField = "Mood"

	// SlotCaloriesItemPrefix keys per-item calorie slots for multi-item
	// meals: "Calories - " + item name.
	SlotCaloriesItemPrefix = "Calories - "
)

// SlotSource tags where a prediction came from.
type SlotSource string

const (
	SourcePattern SlotSource = "pattern"
	SourceModel   SlotSource = "model"
	SourceManual  SlotSource = "manual"
)

// SlotPrediction is a single predicted field for a line. A new successful
// parse of the same line supersedes the previous prediction set wholesale.
type SlotPrediction struct {
	Field      SlotField
	Value      string // display value
	RawValue   string // underlying value when it differs from display
	Valid      bool
	Message    string   // validation message when invalid
	Confidence *float64 // in [0,1] when present
	Source     SlotSource
}

// ItemCaloriesField returns the slot field keying calories for a named
// meal item.
func ItemCaloriesField(item string) SlotField {
	return SlotField(SlotCaloriesItemPrefix + item)
}
