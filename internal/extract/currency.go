package extract

import "strings"

// Supported currency codes, the fixed set accepted everywhere.
var SupportedCurrencies = []string{"USD", "EUR", "TRY", "GBP", "JPY", "CNY", "CAD", "AUD"}

// Symbol lookup is ordered so multi-rune symbols win over their suffixes
// (c$ before $).
var currencySymbols = []struct{ sym, code string }{
	{"c$", "CAD"}, {"a$", "AUD"},
	{"$", "USD"}, {"€", "EUR"}, {"₺", "TRY"}, {"£", "GBP"}, {"¥", "JPY"},
}

func symbolCurrency(t string) (string, bool) {
	for _, s := range currencySymbols {
		if s.sym == t {
			return s.code, true
		}
	}
	return "", false
}

var currencyWords = map[string]string{
	"dollar": "USD", "dollars": "USD", "dolar": "USD",
	"euro": "EUR", "euros": "EUR", "avro": "EUR",
	"lira": "TRY", "tl": "TRY",
	"pound": "GBP", "pounds": "GBP", "sterlin": "GBP",
	"yen": "JPY", "yuan": "CNY",
}

// IsSupportedCurrency reports whether code (any casing) belongs to the
// fixed supported set.
func IsSupportedCurrency(code string) bool {
	up := strings.ToUpper(strings.TrimSpace(code))
	for _, c := range SupportedCurrencies {
		if c == up {
			return true
		}
	}
	return false
}

// Currency identifies a currency token: symbols first, then words, then
// 3-letter codes, restricted to the supported set.
func Currency(token string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" {
		return "", false
	}
	if code, ok := symbolCurrency(t); ok {
		return code, true
	}
	if code, ok := currencyWords[t]; ok {
		return code, true
	}
	if len(t) == 3 && IsSupportedCurrency(t) {
		return strings.ToUpper(t), true
	}
	return "", false
}

// FindCurrency scans a whole line for the first currency mention, in the
// same symbol > word > code priority.
func FindCurrency(line string) (string, bool) {
	lower := strings.ToLower(line)
	for _, s := range currencySymbols {
		if strings.Contains(lower, s.sym) {
			return s.code, true
		}
	}
	for _, field := range strings.Fields(lower) {
		field = strings.Trim(field, ".,;:!?")
		if code, ok := currencyWords[field]; ok {
			return code, true
		}
	}
	for _, field := range strings.Fields(lower) {
		field = strings.Trim(field, ".,;:!?")
		if len(field) == 3 && IsSupportedCurrency(field) {
			return strings.ToUpper(field), true
		}
	}
	return "", false
}
