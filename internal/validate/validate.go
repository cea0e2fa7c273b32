// Package validate holds the pure slot predicates. Nothing here raises:
// every check returns a validity flag plus a message for invalid input.
package validate

import (
	"fmt"
	"strings"

	"quickentry/internal/extract"
	"quickentry/pkg/datemath"
)

// Time reports whether s is an acceptable time slot: a canonical in-range
// "HH:MM", anything the temporal feasibility check accepts, or a natural
// day-part word.
func Time(s string) (bool, string) {
	if strings.TrimSpace(s) == "" {
		return false, "time is empty"
	}
	if datemath.FeasibleTime(s) {
		return true, ""
	}
	return false, fmt.Sprintf("%q is not a valid time", s)
}

// Day reports whether s is an acceptable day slot: an absolute parseable
// date or a member of the relative/weekday vocabulary.
func Day(s string) (bool, string) {
	if strings.TrimSpace(s) == "" {
		return false, "day is empty"
	}
	if datemath.FeasibleDay(s) {
		return true, ""
	}
	return false, fmt.Sprintf("%q is not a valid day", s)
}

// Currency reports whether s (any casing) is in the fixed supported set.
func Currency(s string) (bool, string) {
	if extract.IsSupportedCurrency(s) {
		return true, ""
	}
	return false, fmt.Sprintf("unsupported currency %q", s)
}

// Amount reports whether s holds a non-zero numeric amount.
func Amount(s string) (bool, string) {
	v, ok := extract.FirstNumber(s)
	if !ok {
		return false, fmt.Sprintf("%q is not a number", s)
	}
	if v == 0 {
		return false, "amount must be non-zero"
	}
	return true, ""
}

// PositiveNumber reports whether s holds a number strictly greater than the
// exclusive floor.
func PositiveNumber(s string, floor float64) (bool, string) {
	v, ok := extract.FirstNumber(s)
	if !ok {
		return false, fmt.Sprintf("%q is not a number", s)
	}
	if v <= floor {
		return false, fmt.Sprintf("value must be greater than %v", floor)
	}
	return true, ""
}
