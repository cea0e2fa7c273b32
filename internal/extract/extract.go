// Package extract pulls numeric quantities, units, and currencies out of a
// free-form line, and carries the deterministic arithmetic shortcut that
// bypasses the intent model for numbers-only input.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var firstNumberRe = regexp.MustCompile(`-?\d+(?:[.,]\d+)?`)

// FirstNumber returns the first number in s, accepting "." or "," as the
// decimal separator.
func FirstNumber(s string) (float64, bool) {
	m := firstNumberRe.FindString(s)
	if m == "" {
		return 0, false
	}
	return parseNumber(m)
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
