package datemath

import "strings"

// FeasibleDay reports whether s could represent a day at all, without
// producing an instant: absolute dates, natural dates in either token
// order, today/tomorrow synonyms, and the weekday vocabulary.
func FeasibleDay(s string) bool {
	label := strings.ToLower(strings.TrimSpace(s))
	if label == "" {
		return false
	}
	if absoluteRe.MatchString(label) || numericRe.MatchString(label) {
		return true
	}
	if todaySynonyms[label] || tomorrowSynonyms[label] {
		return true
	}
	if m := dayFirstRe.FindStringSubmatch(label); m != nil {
		if _, ok := monthByName(m[2]); ok {
			return true
		}
	}
	if m := monthFirst.FindStringSubmatch(label); m != nil {
		if _, ok := monthByName(m[1]); ok {
			return true
		}
	}
	return feasibleWeekday(label)
}

func feasibleWeekday(label string) bool {
	word := label
	switch {
	case strings.HasPrefix(label, "next_"):
		word = strings.TrimPrefix(label, "next_")
	case strings.HasPrefix(label, "weekday_"):
		word = strings.TrimPrefix(label, "weekday_")
	default:
		if fields := strings.Fields(label); len(fields) == 2 {
			for _, marker := range nextWeekMarkers {
				if fields[0] == marker {
					word = fields[1]
					break
				}
			}
		}
	}
	_, ok := weekdayIndex(word)
	return ok
}

// FeasibleTime reports whether s could represent a time of day: a valid
// in-range clock pair, or a natural day-part word (morning, akşam, ...)
// that never resolves to an exact clock value.
func FeasibleTime(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}
	if _, _, err := ParseClock(trimmed); err == nil {
		return true
	}
	return IsDayPartWord(trimmed)
}
