package extract

import "strings"

// Activity is a recognized activity family with fixed energy coefficients.
type Activity struct {
	Name string
	// Coef is kcal burned per kg of body weight per km.
	Coef float64
	// MET is the metabolic equivalent used with duration when no distance
	// is available.
	MET float64
}

var activities = map[string]Activity{
	"run":     {Name: "run", Coef: 1.03, MET: 9.8},
	"walk":    {Name: "walk", Coef: 0.53, MET: 3.5},
	"cycle":   {Name: "cycle", Coef: 0.28, MET: 7.5},
	"generic": {Name: "generic", Coef: 0.6, MET: 6.0},
}

var activityKeywords = map[string]string{
	// English
	"run": "run", "running": "run", "ran": "run", "jog": "run", "jogging": "run",
	"walk": "walk", "walking": "walk", "walked": "walk", "hike": "walk", "hiking": "walk",
	"cycle": "cycle", "cycling": "cycle", "bike": "cycle", "biking": "cycle",
	// Turkish
	"koşu": "run", "kosu": "run", "koştum": "run", "kostum": "run",
	"yürüyüş": "walk", "yuruyus": "walk", "yürüdüm": "walk", "yurudum": "walk",
	"bisiklet": "cycle",
	// Generic fallback
	"workout": "generic", "exercise": "generic", "spor": "generic",
	"egzersiz": "generic", "antrenman": "generic",
}

// ActivityFromText finds the first activity keyword in a line, falling back
// over the generic family for workout-style words. Returns false when no
// keyword is present.
func ActivityFromText(line string) (Activity, bool) {
	for _, field := range strings.Fields(strings.ToLower(line)) {
		field = strings.Trim(field, ".,;:!?")
		if family, ok := activityKeywords[field]; ok {
			return activities[family], true
		}
	}
	return Activity{}, false
}

// ActivityCalories estimates calories burned. Distance is preferred when
// available: distance x weight x coefficient. Otherwise the MET fallback:
// weight x MET x duration hours. Weight is body weight in kg.
func ActivityCalories(act Activity, distanceKm, durationMin, weightKg float64) (int, bool) {
	if weightKg <= 0 {
		return 0, false
	}
	if distanceKm > 0 {
		return int(distanceKm * weightKg * act.Coef), true
	}
	if durationMin > 0 {
		return int(weightKg * act.MET * durationMin / 60), true
	}
	return 0, false
}
