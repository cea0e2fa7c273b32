// Package normalize rewrites informal time phrases into canonical
// zero-padded 24-hour clock tokens. A single ordered pass, idempotent:
// applying it to its own output is a no-op.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	// Rule 1: relative offsets, computed from the current wall clock.
	relHoursRe   = regexp.MustCompile(`(?i)\bin (\d{1,3}) hours?\b`)
	relMinutesRe = regexp.MustCompile(`(?i)\bin (\d{1,3}) minutes?\b`)
	relHoursTrRe = regexp.MustCompile(`(?i)\b(\d{1,3}) saat sonra\b`)
	relMinsTrRe  = regexp.MustCompile(`(?i)\b(\d{1,3}) dakika sonra\b`)

	// Rule 2: half/quarter phrases with a short lookahead for am/pm.
	halfPastRe    = regexp.MustCompile(`(?i)\bhalf past (\d{1,2})(?:\s*(am|pm))?\b`)
	quarterPastRe = regexp.MustCompile(`(?i)\bquarter past (\d{1,2})(?:\s*(am|pm))?\b`)
	quarterToRe   = regexp.MustCompile(`(?i)\bquarter to (\d{1,2})(?:\s*(am|pm))?\b`)
	halfPastTrRe  = regexp.MustCompile(`(?i)\b(\d{1,2}) buçuk`)
	quarterPastTr = regexp.MustCompile(`(?i)\b(\d{1,2})(?:'\p{L}+)? çeyrek geçe`)
	quarterToTr   = regexp.MustCompile(`(?i)\b(\d{1,2})(?:'\p{L}+)? çeyrek kala`)

	// Rule 3: bare "H[:MM] am/pm".
	meridiemRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
)

// Normalize applies the ordered rewrite pass to text. Order is load-bearing:
// relative offsets run first (they reference now), then half/quarter phrases,
// then the final am/pm normalization, which must not re-match tokens already
// rewritten into 24-hour form.
func Normalize(text string, now time.Time) string {
	// 1. Relative offsets -> absolute clock, wrapping at 24.
	for _, re := range []*regexp.Regexp{relHoursRe, relHoursTrRe} {
		text = rewrite(text, re, func(g []string) string {
			n, _ := strconv.Atoi(g[1])
			return now.Add(time.Duration(n) * time.Hour).Format("15:04")
		})
	}
	for _, re := range []*regexp.Regexp{relMinutesRe, relMinsTrRe} {
		text = rewrite(text, re, func(g []string) string {
			n, _ := strconv.Atoi(g[1])
			return now.Add(time.Duration(n) * time.Minute).Format("15:04")
		})
	}

	// 2. Half/quarter phrases.
	text = rewrite(text, halfPastRe, func(g []string) string {
		return clockToken(atoi(g[1]), 30, g[2])
	})
	text = rewrite(text, halfPastTrRe, func(g []string) string {
		return clockToken(atoi(g[1]), 30, "")
	})
	text = rewrite(text, quarterPastRe, func(g []string) string {
		return clockToken(atoi(g[1]), 15, g[2])
	})
	text = rewrite(text, quarterPastTr, func(g []string) string {
		return clockToken(atoi(g[1]), 15, "")
	})
	text = rewrite(text, quarterToRe, func(g []string) string {
		return clockToken(wrapHourDown(atoi(g[1])), 45, g[2])
	})
	text = rewrite(text, quarterToTr, func(g []string) string {
		return clockToken(wrapHourDown(atoi(g[1])), 45, "")
	})

	// 3. Bare am/pm times.
	text = rewrite(text, meridiemRe, func(g []string) string {
		minute := 0
		if g[2] != "" {
			minute = atoi(g[2])
		}
		if minute > 59 {
			return g[0] // leave malformed minutes untouched
		}
		return fmt.Sprintf("%02d:%02d", meridiemHour(atoi(g[1]), g[3]), minute)
	})

	return text
}

// rewrite replaces every match of re right-to-left (highest offset first) so
// earlier offsets remain valid after length-changing substitution.
func rewrite(text string, re *regexp.Regexp, fn func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		loc := matches[i]
		groups := make([]string, 0, len(loc)/2)
		for j := 0; j < len(loc); j += 2 {
			if loc[j] < 0 {
				groups = append(groups, "")
				continue
			}
			groups = append(groups, text[loc[j]:loc[j+1]])
		}
		text = text[:loc[0]] + fn(groups) + text[loc[1]:]
	}
	return text
}

// clockToken renders an hour/minute pair as a canonical 24-hour token,
// inferring the meridiem when the phrase carried none: hours 6-11 lean PM
// (evening bias), everything else is AM.
func clockToken(hour12, minute int, suffix string) string {
	return fmt.Sprintf("%02d:%02d", meridiemHour(hour12, suffix), minute)
}

// meridiemHour maps a 12-hour value plus an optional am/pm suffix to a
// 24-hour value. Without a suffix, hours 6-11 default to PM.
func meridiemHour(hour12 int, suffix string) int {
	switch normalizeSuffix(suffix) {
	case "pm":
		return hour12%12 + 12
	case "am":
		return hour12 % 12
	default:
		if hour12 >= 6 && hour12 <= 11 {
			return hour12 + 12
		}
		return hour12 % 12
	}
}

func normalizeSuffix(s string) string {
	switch s {
	case "pm", "PM", "Pm", "pM":
		return "pm"
	case "am", "AM", "Am", "aM":
		return "am"
	}
	return ""
}

// wrapHourDown steps an hour back for "quarter to", wrapping 1 to 12.
func wrapHourDown(h int) int {
	if h <= 1 {
		return 12
	}
	return h - 1
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
