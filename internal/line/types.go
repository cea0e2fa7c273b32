package line

import (
	"time"

	"quickentry/internal/model"
)

// Timings are the debounce guards between keystrokes and parsing.
type Timings struct {
	// Throttle is how long typing must pause before the line enters
	// loading.
	Throttle time.Duration
	// Settle is the additional quiet period before the parse actually
	// runs.
	Settle time.Duration
	// MinLength is the minimum trimmed rune count worth parsing.
	MinLength int
}

// DefaultTimings mirror an interactive typing cadence.
var DefaultTimings = Timings{
	Throttle:  250 * time.Millisecond,
	Settle:    700 * time.Millisecond,
	MinLength: 3,
}

// View is a line with its current parse results.
type View struct {
	Line    model.Line
	Slots   []model.SlotPrediction
	Summary string
	Message string // set when Status is error
}

// Event is one state transition of one line.
type Event struct {
	LineID  string
	Status  model.LineStatus
	Slots   []model.SlotPrediction
	Summary string
	Message string
}

// CommitFailure is one line that could not be committed.
type CommitFailure struct {
	LineID string
	Text   string
	Reason string
}

// CommitOutput partitions a bulk commit. Succeeded lines are removed;
// failed lines are retained and the first failure receives focus.
type CommitOutput struct {
	Succeeded   []model.ParsedEntry
	Failed      []CommitFailure
	FocusLineID string
}
