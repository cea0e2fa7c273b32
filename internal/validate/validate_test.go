package validate_test

import (
	"testing"

	"quickentry/internal/validate"
)

func TestTime(t *testing.T) {
	for _, s := range []string{"09:00", "23:59", "0:30", "morning", "akşam", "tonight"} {
		if ok, msg := validate.Time(s); !ok {
			t.Errorf("Time(%q) invalid: %s", s, msg)
		}
	}
	for _, s := range []string{"", "25:00", "12:60", "soonish"} {
		if ok, _ := validate.Time(s); ok {
			t.Errorf("Time(%q) should be invalid", s)
		}
	}
}

func TestDay(t *testing.T) {
	for _, s := range []string{"today", "tomorrow", "monday", "next_friday", "weekday_sunday", "2024-06-15", "15 june", "pazartesi"} {
		if ok, msg := validate.Day(s); !ok {
			t.Errorf("Day(%q) invalid: %s", s, msg)
		}
	}
	for _, s := range []string{"", "someday", "whenever"} {
		if ok, _ := validate.Day(s); ok {
			t.Errorf("Day(%q) should be invalid", s)
		}
	}
}

func TestCurrency(t *testing.T) {
	for _, s := range []string{"USD", "usd", "TrY", "aud", "JPY"} {
		if ok, msg := validate.Currency(s); !ok {
			t.Errorf("Currency(%q) invalid: %s", s, msg)
		}
	}
	for _, s := range []string{"SEK", "xyz", "", "dollars!"} {
		if ok, _ := validate.Currency(s); ok {
			t.Errorf("Currency(%q) should be invalid", s)
		}
	}
}

func TestAmount(t *testing.T) {
	if ok, _ := validate.Amount("150"); !ok {
		t.Errorf("Amount(150) should be valid")
	}
	if ok, _ := validate.Amount("12,5"); !ok {
		t.Errorf("Amount(12,5) should be valid")
	}
	if ok, _ := validate.Amount("0"); ok {
		t.Errorf("Amount(0) must be invalid")
	}
	if ok, _ := validate.Amount("abc"); ok {
		t.Errorf("Amount(abc) must be invalid")
	}
}

func TestPositiveNumber(t *testing.T) {
	if ok, _ := validate.PositiveNumber("5", 0); !ok {
		t.Errorf("PositiveNumber(5, 0) should be valid")
	}
	if ok, _ := validate.PositiveNumber("5", 5); ok {
		t.Errorf("floor is exclusive: PositiveNumber(5, 5) must be invalid")
	}
	if ok, _ := validate.PositiveNumber("-1", 0); ok {
		t.Errorf("PositiveNumber(-1, 0) must be invalid")
	}
}
