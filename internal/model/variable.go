package model

import "time"

// VariableKind is what a user-named recurring token stands for.
type VariableKind string

const (
	VariableMeal    VariableKind = "meal"
	VariableExpense VariableKind = "expense"
	VariableIncome  VariableKind = "income"
)

// Variable is a user-named recurring token with a fixed numeric payload,
// usable inside arithmetic shortcuts by name ("+kahve -50").
// Lifecycle is independent from lines.
type Variable struct {
	ID   string
	Name string
	Kind VariableKind

	// Meal payload
	Calories int
	Grams    int

	// Expense/income payload
	Amount   float64
	Currency string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkSession is a started work block, closed by a matching work_end commit.
type WorkSession struct {
	Start time.Time
	End   *time.Time
	Label string
}

// Elapsed returns the session duration, using now for open sessions.
func (ws WorkSession) Elapsed(now time.Time) time.Duration {
	if ws.End != nil {
		return ws.End.Sub(ws.Start)
	}
	return now.Sub(ws.Start)
}
