package extract

import (
	"regexp"
	"strings"
)

// Unit parsing converts the many accepted spellings to canonical units:
// grams for weight, centimeters for height, kilometers for distance,
// minutes for duration.

var (
	weightRe = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(kg|kilo|kilos|kilogram|kilograms|lb|lbs|pound|pounds|gr|gram|grams|g)\b`)
	heightRe = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(cm|santim|santimetre|centimeter|centimeters|metre|meter|meters|m)\b`)
	// Dedicated feet-and-inches height pattern: 5'11 or 5'11".
	feetInchRe = regexp.MustCompile(`(\d)\s*'\s*(\d{1,2})\s*"?`)
	distanceRe = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(km|kilometre|kilometres|kilometer|kilometers|mi|mil|mile|miles|metre|meters|m)\b`)
	durationRe = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(min|mins|minute|minutes|dakika|dk|h|hr|hrs|hour|hours|saat)\b`)
)

// WeightGrams parses a body/food weight mention, canonical unit grams.
func WeightGrams(s string) (int, bool) {
	m := weightRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, ok := parseNumber(m[1])
	if !ok {
		return 0, false
	}
	switch unit := strings.ToLower(m[2]); unit {
	case "kg", "kilo", "kilos", "kilogram", "kilograms":
		return int(v * 1000), true
	case "lb", "lbs", "pound", "pounds":
		return int(v * 453.592), true
	default: // g, gr, gram, grams
		return int(v), true
	}
}

// HeightCentimeters parses a height mention, canonical unit centimeters.
// Feet-and-inches takes priority over metric spellings.
func HeightCentimeters(s string) (float64, bool) {
	if m := feetInchRe.FindStringSubmatch(s); m != nil {
		ft, _ := parseNumber(m[1])
		in, _ := parseNumber(m[2])
		if in < 12 {
			return ft*30.48 + in*2.54, true
		}
	}
	m := heightRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, ok := parseNumber(m[1])
	if !ok {
		return 0, false
	}
	switch unit := strings.ToLower(m[2]); unit {
	case "m", "metre", "meter", "meters":
		return v * 100, true
	default:
		return v, true
	}
}

// DistanceKilometers parses a distance mention, canonical unit kilometers.
func DistanceKilometers(s string) (float64, bool) {
	m := distanceRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, ok := parseNumber(m[1])
	if !ok {
		return 0, false
	}
	switch unit := strings.ToLower(m[2]); unit {
	case "mi", "mil", "mile", "miles":
		return v * 1.60934, true
	case "m", "metre", "meters":
		return v / 1000, true
	default:
		return v, true
	}
}

// DurationMinutes parses a duration mention, canonical unit minutes.
func DurationMinutes(s string) (float64, bool) {
	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, ok := parseNumber(m[1])
	if !ok {
		return 0, false
	}
	switch unit := strings.ToLower(m[2]); unit {
	case "h", "hr", "hrs", "hour", "hours", "saat":
		return v * 60, true
	default:
		return v, true
	}
}
