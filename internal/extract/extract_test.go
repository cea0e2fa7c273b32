package extract_test

import (
	"math"
	"testing"

	"quickentry/internal/extract"
	"quickentry/internal/model"
)

func TestFirstNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"lunch 12 euro", 12, true},
		{"12,5 tl", 12.5, true},
		{"ran 3.2 km", 3.2, true},
		{"minus -5", -5, true},
		{"no numbers here", 0, false},
	}
	for _, tt := range tests {
		got, ok := extract.FirstNumber(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("FirstNumber(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestUnits(t *testing.T) {
	if g, ok := extract.WeightGrams("75 kg"); !ok || g != 75000 {
		t.Errorf("WeightGrams(75 kg) = %d, %v", g, ok)
	}
	if g, ok := extract.WeightGrams("150 lbs"); !ok || g != 68038 {
		t.Errorf("WeightGrams(150 lbs) = %d, %v", g, ok)
	}
	if g, ok := extract.WeightGrams("200 gram"); !ok || g != 200 {
		t.Errorf("WeightGrams(200 gram) = %d, %v", g, ok)
	}

	if cm, ok := extract.HeightCentimeters("180 cm"); !ok || cm != 180 {
		t.Errorf("HeightCentimeters(180 cm) = %v, %v", cm, ok)
	}
	if cm, ok := extract.HeightCentimeters("1,8 m"); !ok || math.Abs(cm-180) > 0.01 {
		t.Errorf("HeightCentimeters(1,8 m) = %v, %v", cm, ok)
	}
	if cm, ok := extract.HeightCentimeters(`5'11"`); !ok || math.Abs(cm-180.34) > 0.01 {
		t.Errorf("HeightCentimeters(5'11\") = %v, %v", cm, ok)
	}

	if km, ok := extract.DistanceKilometers("5 km"); !ok || km != 5 {
		t.Errorf("DistanceKilometers(5 km) = %v, %v", km, ok)
	}
	if km, ok := extract.DistanceKilometers("3 miles"); !ok || math.Abs(km-4.82802) > 0.001 {
		t.Errorf("DistanceKilometers(3 miles) = %v, %v", km, ok)
	}
	if km, ok := extract.DistanceKilometers("800 m"); !ok || km != 0.8 {
		t.Errorf("DistanceKilometers(800 m) = %v, %v", km, ok)
	}

	if min, ok := extract.DurationMinutes("45 min"); !ok || min != 45 {
		t.Errorf("DurationMinutes(45 min) = %v, %v", min, ok)
	}
	if min, ok := extract.DurationMinutes("2 hours"); !ok || min != 120 {
		t.Errorf("DurationMinutes(2 hours) = %v, %v", min, ok)
	}
	if min, ok := extract.DurationMinutes("1 saat"); !ok || min != 60 {
		t.Errorf("DurationMinutes(1 saat) = %v, %v", min, ok)
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"$", "USD", true},
		{"€", "EUR", true},
		{"₺", "TRY", true},
		{"try", "TRY", true},
		{"TRY", "TRY", true},
		{"TrY", "TRY", true},
		{"euro", "EUR", true},
		{"lira", "TRY", true},
		{"dolar", "USD", true},
		{"jpy", "JPY", true},
		{"xyz", "", false}, // 3-letter code outside the supported set
		{"chf", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := extract.Currency(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Currency(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}

	if !extract.IsSupportedCurrency("aud") || extract.IsSupportedCurrency("sek") {
		t.Errorf("IsSupportedCurrency casing/set check failed")
	}
}

type stubVars map[string]model.Variable

func (s stubVars) ByName(name string) (model.Variable, bool) {
	v, ok := s[name]
	return v, ok
}

func TestArithmetic(t *testing.T) {
	vars := stubVars{
		"kahve": {Name: "kahve", Kind: model.VariableMeal, Calories: 120},
		"metro": {Name: "metro", Kind: model.VariableExpense, Amount: 15, Currency: "TRY"},
	}

	tests := []struct {
		name string
		in   string
		want extract.ArithmeticResult
		ok   bool
	}{
		{
			name: "Income net of two money tokens",
			in:   "+200 try - 50 try",
			want: extract.ArithmeticResult{Intent: model.IntentIncome, Amount: 150, Currency: "TRY"},
			ok:   true,
		},
		{
			name: "Single negative money token",
			in:   "-80 try",
			want: extract.ArithmeticResult{Intent: model.IntentExpense, Amount: 80, Currency: "TRY"},
			ok:   true,
		},
		{
			name: "Calorie net with bare number",
			in:   "+300 kcal -50",
			want: extract.ArithmeticResult{Intent: model.IntentMeal, Calories: 250},
			ok:   true,
		},
		{
			name: "Residue blocks the shortcut",
			in:   "+300 kcal -50 and buy milk",
			ok:   false,
		},
		{
			name: "Leading word blocks the shortcut",
			in:   "lunch 12 euro",
			ok:   false,
		},
		{
			name: "Mixed currencies rejected",
			in:   "+10 usd -5 eur",
			ok:   false,
		},
		{
			name: "Symbol-led token",
			in:   "-€20",
			want: extract.ArithmeticResult{Intent: model.IntentExpense, Amount: 20, Currency: "EUR"},
			ok:   true,
		},
		{
			name: "Money with bare number joins the sum",
			in:   "+200 try -50",
			want: extract.ArithmeticResult{Intent: model.IntentIncome, Amount: 150, Currency: "TRY"},
			ok:   true,
		},
		{
			name: "Meal variable reference",
			in:   "+kahve -20 kcal",
			want: extract.ArithmeticResult{Intent: model.IntentMeal, Calories: 100},
			ok:   true,
		},
		{
			name: "Expense variable reference",
			in:   "-metro",
			want: extract.ArithmeticResult{Intent: model.IntentExpense, Amount: 15, Currency: "TRY"},
			ok:   true,
		},
		{
			name: "Unknown word is residue",
			in:   "-unknownvar",
			ok:   false,
		},
		{
			name: "Bare numbers only cannot classify",
			in:   "+300 -50",
			ok:   false,
		},
		{
			name: "Empty line",
			in:   "   ",
			ok:   false,
		},
		{
			name: "Decimal comma money",
			in:   "-12,5 eur",
			want: extract.ArithmeticResult{Intent: model.IntentExpense, Amount: 12.5, Currency: "EUR"},
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extract.Arithmetic(tt.in, vars)
			if ok != tt.ok {
				t.Fatalf("Arithmetic(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if !ok {
				return
			}
			if got != tt.want {
				t.Errorf("Arithmetic(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestActivity(t *testing.T) {
	act, ok := extract.ActivityFromText("morning run 5 km")
	if !ok || act.Name != "run" {
		t.Fatalf("ActivityFromText(run) = %+v, %v", act, ok)
	}
	if _, ok := extract.ActivityFromText("quiet day"); ok {
		t.Errorf("expected no activity keyword")
	}
	if act, ok := extract.ActivityFromText("spor yaptım"); !ok || act.Name != "generic" {
		t.Errorf("generic fallback failed: %+v, %v", act, ok)
	}

	// Distance path preferred: 5 km x 70 kg x 1.03 = 360.5 -> 360.
	kcal, ok := extract.ActivityCalories(act, 0, 0, 70)
	if ok {
		t.Errorf("no distance or duration should fail, got %d", kcal)
	}
	run, _ := extract.ActivityFromText("run")
	if kcal, ok := extract.ActivityCalories(run, 5, 30, 70); !ok || kcal != 360 {
		t.Errorf("distance path = %d, %v; want 360", kcal, ok)
	}
	// MET fallback: 70 x 9.8 x 0.5 = 343.
	if kcal, ok := extract.ActivityCalories(run, 0, 30, 70); !ok || kcal != 343 {
		t.Errorf("MET path = %d, %v; want 343", kcal, ok)
	}
}
