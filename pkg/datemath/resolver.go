package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Canonical output formats.
const (
	DayFormat   = "2006-01-02"
	ClockFormat = "15:04"
)

var (
	// ErrUnresolvedDay is returned when no resolution strategy matches a
	// day label.
	ErrUnresolvedDay = errors.New("day label could not be resolved")
	// ErrInvalidClock is returned for time strings that are not a valid
	// in-range "H:MM" pair.
	ErrInvalidClock = errors.New("invalid clock time")
)

// Resolver turns day labels and clock strings into absolute instants in a
// fixed timezone.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string,
// e.g. "Europe/Istanbul".
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// Location returns the resolver's timezone.
func (r *Resolver) Location() *time.Location { return r.location }

var (
	absoluteRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})(?:[ T](\d{2}):(\d{2})(?::(\d{2}))?)?$`)
	numericRe  = regexp.MustCompile(`^(\d{1,2})[./](\d{1,2})(?:[./](\d{4}|\d{2}))?$`)
	dayFirstRe = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)?\.?\s+(\p{L}+)(?:\s+(\d{4}))?$`)
	monthFirst = regexp.MustCompile(`^(\p{L}+)\s+(\d{1,2})(?:st|nd|rd|th)?(?:\s+(\d{4}))?$`)
	clockRe    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// Resolve turns an optional day label and an optional canonical "HH:MM"
// time string into an absolute instant relative to now.
//
// Resolution order: absolute date (with optional embedded timestamp),
// natural date across locale token orders, weekday vocabulary, default to
// the start of today. When no day label was given and the final instant is
// strictly before now, the result rolls forward one day; an explicitly
// supplied day is honored verbatim even in the past.
func (r *Resolver) Resolve(dayLabel, timeStr string, now time.Time) (time.Time, error) {
	return r.ResolveOpt(dayLabel, timeStr, now, true)
}

// ResolveOpt is Resolve with explicit allow-today semantics for bare
// weekday labels.
func (r *Resolver) ResolveOpt(dayLabel, timeStr string, now time.Time, allowToday bool) (time.Time, error) {
	now = now.In(r.location)

	var (
		day         time.Time
		dayExplicit bool
		embeddedClk bool
	)

	label := strings.ToLower(strings.TrimSpace(dayLabel))
	if label == "" {
		day = r.startOfDay(now)
	} else {
		resolved, hasClock, err := r.resolveDay(label, now, allowToday)
		if err != nil {
			return time.Time{}, err
		}
		day = resolved
		dayExplicit = true
		embeddedClk = hasClock
	}

	if ts := strings.TrimSpace(timeStr); ts != "" {
		hour, minute, err := ParseClock(ts)
		if err != nil {
			return time.Time{}, err
		}
		day = time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, r.location)
	} else if !embeddedClk {
		day = r.startOfDay(day)
	}

	// Rollover: only when the caller gave no explicit day.
	if !dayExplicit && day.Before(now) {
		day = day.AddDate(0, 0, 1)
	}

	return day, nil
}

// resolveDay resolves a non-empty lowercased day label to the start of the
// matching day (or a full timestamp, in which case hasClock is true).
func (r *Resolver) resolveDay(label string, now time.Time, allowToday bool) (t time.Time, hasClock bool, err error) {
	if m := absoluteRe.FindStringSubmatch(label); m != nil {
		return r.absoluteFromMatch(m)
	}

	if todaySynonyms[label] {
		return r.startOfDay(now), false, nil
	}
	if tomorrowSynonyms[label] {
		return r.startOfDay(now.AddDate(0, 0, 1)), false, nil
	}

	if d, ok := r.naturalDate(label, now); ok {
		return d, false, nil
	}

	if d, ok := r.weekdayDate(label, now, allowToday); ok {
		return d, false, nil
	}

	return time.Time{}, false, fmt.Errorf("%w: %q", ErrUnresolvedDay, label)
}

func (r *Resolver) absoluteFromMatch(m []string) (time.Time, bool, error) {
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	dom, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 || dom < 1 || dom > 31 {
		return time.Time{}, false, fmt.Errorf("%w: %s", ErrUnresolvedDay, m[0])
	}
	if m[4] == "" {
		return time.Date(year, time.Month(month), dom, 0, 0, 0, 0, r.location), false, nil
	}
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])
	sec := 0
	if m[6] != "" {
		sec, _ = strconv.Atoi(m[6])
	}
	if hour > 23 || minute > 59 || sec > 59 {
		return time.Time{}, false, fmt.Errorf("%w: %s", ErrInvalidClock, m[0])
	}
	return time.Date(year, time.Month(month), dom, hour, minute, sec, 0, r.location), true, nil
}

// naturalDate tries numeric and spelled-month patterns in both day-month
// and month-day token orders. Without an explicit year the current year is
// assumed, rolling forward a year when the date already passed.
func (r *Resolver) naturalDate(label string, now time.Time) (time.Time, bool) {
	if m := numericRe.FindStringSubmatch(label); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		day, month := a, b
		if month > 12 && day <= 12 {
			day, month = month, day
		}
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, false
		}
		if m[3] != "" {
			year, _ := strconv.Atoi(m[3])
			if year < 100 {
				year += 2000
			}
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, r.location), true
		}
		return r.yearInferred(time.Month(month), day, now), true
	}

	if m := dayFirstRe.FindStringSubmatch(label); m != nil {
		if month, ok := monthByName(m[2]); ok {
			return r.spelledDate(m[1], m[3], month, now)
		}
	}
	if m := monthFirst.FindStringSubmatch(label); m != nil {
		if month, ok := monthByName(m[1]); ok {
			return r.spelledDate(m[2], m[3], month, now)
		}
	}
	return time.Time{}, false
}

func (r *Resolver) spelledDate(dayStr, yearStr string, month time.Month, now time.Time) (time.Time, bool) {
	day, _ := strconv.Atoi(dayStr)
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	if yearStr != "" {
		year, _ := strconv.Atoi(yearStr)
		return time.Date(year, month, day, 0, 0, 0, 0, r.location), true
	}
	return r.yearInferred(month, day, now), true
}

// yearInferred builds a date in the current year, rolling to next year when
// the resulting day lies strictly before today.
func (r *Resolver) yearInferred(month time.Month, day int, now time.Time) time.Time {
	candidate := time.Date(now.Year(), month, day, 0, 0, 0, 0, r.location)
	if candidate.Before(r.startOfDay(now)) {
		candidate = candidate.AddDate(1, 0, 0)
	}
	return candidate
}

// weekdayDate resolves weekday vocabulary: bare synonyms, the canonical
// weekday_<name> and next_<name> tokens, and "<marker> <weekday>" phrases.
// next_ never returns the current week's occurrence: it adds exactly 7 days
// on top of the normal forward delta.
func (r *Resolver) weekdayDate(label string, now time.Time, allowToday bool) (time.Time, bool) {
	followingWeek := false
	word := label

	switch {
	case strings.HasPrefix(label, "next_"):
		word = strings.TrimPrefix(label, "next_")
		followingWeek = true
	case strings.HasPrefix(label, "weekday_"):
		word = strings.TrimPrefix(label, "weekday_")
		allowToday = true
	default:
		if fields := strings.Fields(label); len(fields) == 2 {
			for _, marker := range nextWeekMarkers {
				if fields[0] == marker {
					word = fields[1]
					followingWeek = true
					break
				}
			}
		}
	}

	target, ok := weekdayIndex(word)
	if !ok {
		return time.Time{}, false
	}

	current := isoWeekday(now)
	delta := (target - current + 7) % 7
	if followingWeek {
		delta += 7
	} else if delta == 0 && !allowToday {
		delta = 7
	}

	return r.startOfDay(now.AddDate(0, 0, delta)), true
}

// ParseClock validates and splits a canonical "H:MM" / "HH:MM" string.
func ParseClock(s string) (hour, minute int, err error) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return hour, minute, nil
}

// FormatDay renders t in the canonical absolute-day format.
func FormatDay(t time.Time) string { return t.Format(DayFormat) }

// FormatClock renders t in the canonical zero-padded 24-hour format.
func FormatClock(t time.Time) string { return t.Format(ClockFormat) }

func (r *Resolver) startOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}

// isoWeekday maps time.Weekday to a 1-7 index with Monday=1.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
