package extract

import (
	"regexp"
	"strings"

	"quickentry/internal/model"
)

// VariableResolver resolves user-named recurring tokens referenced by name
// inside arithmetic lines.
type VariableResolver interface {
	ByName(name string) (model.Variable, bool)
}

// ArithmeticResult is the outcome of the deterministic numbers-only parse
// path that bypasses the intent model.
type ArithmeticResult struct {
	Intent   model.Intent // income, expense, or meal
	Amount   float64      // absolute monetary net
	Currency string
	Calories int // net calories for meal results
}

var (
	// number-led token: optional sign, number, optional trailing unit word
	// or currency symbol.
	numTokenRe = regexp.MustCompile(`([+-])?\s*(\d+(?:[.,]\d+)?)\s*(c\$|a\$|\p{Sc}|\p{L}+)?`)
	// symbol-led token: optional sign, currency symbol, number.
	symTokenRe = regexp.MustCompile(`([+-])?\s*(c\$|a\$|\p{Sc})\s*(\d+(?:[.,]\d+)?)`)
	// signed bare word: candidate variable reference.
	varTokenRe = regexp.MustCompile(`([+-])\s*(\p{L}[\p{L}\d]*)`)

	calorieUnitRe = regexp.MustCompile(`(?i)\b(kcal|cal|cals|calorie|calories|kalori)\b`)
)

type arithToken struct {
	value    float64 // signed
	currency string  // empty for bare numbers and calorie tokens
	calorie  bool
}

// Arithmetic attempts the deterministic arithmetic shortcut on line. It
// fires only when, after removing every signed-number-plus-unit/currency
// token (and known variable references), no non-whitespace residue remains.
// Monetary tokens are summed when every token shares one currency; calorie
// tokens are summed when a calorie unit keyword appears anywhere in the
// line. Bare numbers join whichever sum applies.
func Arithmetic(line string, vars VariableResolver) (ArithmeticResult, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ArithmeticResult{}, false
	}

	consumed := make([]bool, len(line))
	var tokens []arithToken

	for _, m := range symTokenRe.FindAllStringSubmatchIndex(line, -1) {
		if overlaps(consumed, m[0], m[1]) {
			continue
		}
		sign := signOf(group(line, m, 1))
		value, ok := parseNumber(group(line, m, 3))
		if !ok {
			continue
		}
		code, ok := Currency(group(line, m, 2))
		if !ok {
			continue
		}
		mark(consumed, m[0], m[1])
		tokens = append(tokens, arithToken{value: sign * value, currency: code})
	}

	for _, m := range numTokenRe.FindAllStringSubmatchIndex(line, -1) {
		if overlaps(consumed, m[0], m[1]) {
			continue
		}
		sign := signOf(group(line, m, 1))
		value, ok := parseNumber(group(line, m, 2))
		if !ok {
			continue
		}
		unit := group(line, m, 3)
		end := m[1]
		tok := arithToken{value: sign * value}
		switch {
		case unit == "":
		case calorieUnitRe.MatchString(unit):
			tok.calorie = true
		default:
			if code, ok := Currency(unit); ok {
				tok.currency = code
			} else {
				// Trailing word is not a unit: consume the number only.
				end = m[5]
			}
		}
		mark(consumed, m[0], end)
		tokens = append(tokens, tok)
	}

	if vars != nil {
		for _, m := range varTokenRe.FindAllStringSubmatchIndex(line, -1) {
			if overlaps(consumed, m[0], m[1]) {
				continue
			}
			v, ok := vars.ByName(strings.ToLower(group(line, m, 2)))
			if !ok {
				continue
			}
			sign := signOf(group(line, m, 1))
			mark(consumed, m[0], m[1])
			switch v.Kind {
			case model.VariableMeal:
				tokens = append(tokens, arithToken{value: sign * float64(v.Calories), calorie: true})
			default:
				tokens = append(tokens, arithToken{value: sign * v.Amount, currency: v.Currency})
			}
		}
	}

	if len(tokens) == 0 || !residueEmpty(line, consumed) {
		return ArithmeticResult{}, false
	}

	calorieLine := calorieUnitRe.MatchString(line) || hasCalorieToken(tokens)
	if calorieLine {
		net := 0.0
		for _, t := range tokens {
			if t.currency != "" {
				return ArithmeticResult{}, false // mixed money and calories
			}
			net += t.value
		}
		return ArithmeticResult{Intent: model.IntentMeal, Calories: int(net)}, true
	}

	currency := ""
	hasMoney := false
	net := 0.0
	for _, t := range tokens {
		if t.currency != "" {
			if currency != "" && currency != t.currency {
				return ArithmeticResult{}, false // mixed currencies
			}
			currency = t.currency
			hasMoney = true
		}
		net += t.value
	}
	if !hasMoney {
		// Pure unclassified numbers: nothing to commit to.
		return ArithmeticResult{}, false
	}

	intent := model.IntentIncome
	if net < 0 {
		intent = model.IntentExpense
		net = -net
	}
	return ArithmeticResult{Intent: intent, Amount: net, Currency: currency}, true
}

// residueEmpty is the shortcut boundary: true when only whitespace remains
// after every token was removed.
func residueEmpty(line string, consumed []bool) bool {
	for i, b := range []byte(line) {
		if consumed[i] {
			continue
		}
		if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
			return false
		}
	}
	return true
}

func hasCalorieToken(tokens []arithToken) bool {
	for _, t := range tokens {
		if t.calorie {
			return true
		}
	}
	return false
}

func group(s string, m []int, i int) string {
	if m[2*i] < 0 {
		return ""
	}
	return s[m[2*i]:m[2*i+1]]
}

func signOf(s string) float64 {
	if s == "-" {
		return -1
	}
	return 1
}

func overlaps(consumed []bool, from, to int) bool {
	for i := from; i < to; i++ {
		if consumed[i] {
			return true
		}
	}
	return false
}

func mark(consumed []bool, from, to int) {
	for i := from; i < to; i++ {
		consumed[i] = true
	}
}
