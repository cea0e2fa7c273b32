package datemath

import (
	"strings"
	"time"
)

// Weekday synonyms across locales, mapped to a 1-7 index (Monday=1).
// English and Turkish carry full coverage; German and Spanish partial.
var weekdaySynonyms = map[string]int{
	// English
	"monday": 1, "tuesday": 2, "wednesday": 3, "thursday": 4,
	"friday": 5, "saturday": 6, "sunday": 7,
	"mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6, "sun": 7,

	// Turkish
	"pazartesi": 1, "salı": 2, "sali": 2, "çarşamba": 3, "carsamba": 3,
	"perşembe": 4, "persembe": 4, "cuma": 5, "cumartesi": 6, "pazar": 7,

	// German
	"montag": 1, "dienstag": 2, "mittwoch": 3, "donnerstag": 4,
	"freitag": 5, "samstag": 6, "sonntag": 7,

	// Spanish
	"lunes": 1, "martes": 2, "miércoles": 3, "miercoles": 3, "jueves": 4,
	"viernes": 5, "sábado": 6, "sabado": 6, "domingo": 7,
}

// Markers that push a bare weekday into the following week.
var nextWeekMarkers = []string{
	"next", "coming",
	"gelecek", "önümüzdeki", "onumuzdeki", "haftaya",
	"nächste", "nachste", "próximo", "proximo",
}

var todaySynonyms = map[string]bool{
	"today": true, "bugün": true, "bugun": true, "heute": true, "hoy": true,
}

var tomorrowSynonyms = map[string]bool{
	"tomorrow": true, "yarın": true, "yarin": true,
	"morgen": true, "mañana": true, "manana": true,
}

// Natural day-part words accepted as time-feasible without resolving to a
// clock value.
var dayPartWords = map[string]bool{
	"morning": true, "noon": true, "afternoon": true, "evening": true,
	"night": true, "tonight": true, "midnight": true,
	"sabah": true, "öğle": true, "ogle": true, "öğlen": true, "oglen": true,
	"akşam": true, "aksam": true, "gece": true, "öğleden sonra": true,
	"ogleden sonra": true,
}

// Month names per locale, mapped to time.Month.
var monthSynonyms = map[string]time.Month{
	// English
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November,
	"dec": time.December,

	// Turkish
	"ocak": time.January, "şubat": time.February, "subat": time.February,
	"mart": time.March, "nisan": time.April, "mayıs": time.May,
	"mayis": time.May, "haziran": time.June, "temmuz": time.July,
	"ağustos": time.August, "agustos": time.August, "eylül": time.September,
	"eylul": time.September, "ekim": time.October, "kasım": time.November,
	"kasim": time.November, "aralık": time.December, "aralik": time.December,
}

// weekdayIndex looks up a weekday synonym, returning its 1-7 index.
func weekdayIndex(word string) (int, bool) {
	idx, ok := weekdaySynonyms[strings.ToLower(strings.TrimSpace(word))]
	return idx, ok
}

// monthByName looks up a month synonym.
func monthByName(word string) (time.Month, bool) {
	m, ok := monthSynonyms[strings.ToLower(strings.TrimSpace(word))]
	return m, ok
}

// IsDayPartWord reports whether s is a natural-language day-part word
// (morning, evening, ...) in any supported locale.
func IsDayPartWord(s string) bool {
	return dayPartWords[strings.ToLower(strings.TrimSpace(s))]
}
