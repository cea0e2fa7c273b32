package datemath_test

import (
	"errors"
	"testing"
	"time"

	"quickentry/pkg/datemath"
)

func TestNewResolver(t *testing.T) {
	if _, err := datemath.NewResolver("Europe/Istanbul"); err != nil {
		t.Fatalf("unexpected error creating valid resolver: %v", err)
	}
	if _, err := datemath.NewResolver("Invalid/Zone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestResolveDayLabels(t *testing.T) {
	r, _ := datemath.NewResolver("UTC")
	// Wednesday, May 1, 2024, 15:30
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	startOfNow := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		day     string
		clock   string
		want    time.Time
		wantErr error
	}{
		{name: "Today", day: "today", want: startOfNow},
		{name: "Today Turkish", day: "bugün", want: startOfNow},
		{name: "Tomorrow", day: "tomorrow", want: startOfNow.AddDate(0, 0, 1)},
		{name: "Tomorrow Turkish", day: "yarın", want: startOfNow.AddDate(0, 0, 1)},
		{name: "Absolute date", day: "2024-06-15", want: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "Absolute date in past honored verbatim", day: "2023-01-02", want: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)},
		{
			name: "Extended timestamp",
			day:  "2024-06-15 09:45",
			want: time.Date(2024, 6, 15, 9, 45, 0, 0, time.UTC),
		},
		{
			name: "Extended timestamp with seconds",
			day:  "2024-06-15 09:45:30",
			want: time.Date(2024, 6, 15, 9, 45, 30, 0, time.UTC),
		},
		{
			name:  "Clock overrides embedded timestamp",
			day:   "2024-06-15 09:45",
			clock: "18:00",
			want:  time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC),
		},
		{name: "Natural day month", day: "15 june", want: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "Natural month day", day: "june 15", want: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "Natural Turkish month", day: "15 haziran", want: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "Natural with year", day: "15 june 2026", want: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)},
		{
			name: "Natural without year rolls past dates forward",
			day:  "10 march", // before May 1 -> next year
			want: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{name: "Numeric day.month", day: "15.06", want: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "Numeric day.month.year", day: "15.06.2026", want: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "Numeric month/day disambiguated", day: "06/15", want: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "Bare weekday forward", day: "friday", want: startOfNow.AddDate(0, 0, 2)},
		{name: "Bare weekday Turkish", day: "cuma", want: startOfNow.AddDate(0, 0, 2)},
		{name: "Bare weekday German", day: "freitag", want: startOfNow.AddDate(0, 0, 2)},
		{name: "Weekday token", day: "weekday_friday", want: startOfNow.AddDate(0, 0, 2)},
		{name: "Next marker phrase", day: "next friday", want: startOfNow.AddDate(0, 0, 9)},
		{name: "Next token", day: "next_friday", want: startOfNow.AddDate(0, 0, 9)},
		{name: "Unknown label fails", day: "someday", wantErr: datemath.ErrUnresolvedDay},
		{name: "Invalid clock fails", day: "today", clock: "25:00", wantErr: datemath.ErrInvalidClock},
		{name: "Clock applied to day", day: "tomorrow", clock: "07:05", want: startOfNow.AddDate(0, 0, 1).Add(7*time.Hour + 5*time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.day, tt.clock, now)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Resolve() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveWeekdayAllowToday(t *testing.T) {
	r, _ := datemath.NewResolver("UTC")
	// Wednesday
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	startOfNow := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	got, err := r.Resolve("wednesday", "", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(startOfNow) {
		t.Errorf("allow-today weekday on matching day: got %v, want today %v", got, startOfNow)
	}

	got, err = r.ResolveOpt("wednesday", "", now, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(startOfNow.AddDate(0, 0, 7)) {
		t.Errorf("disallow-today weekday on matching day: got %v, want next week", got)
	}

	// next_<weekday> on the matching day is exactly 7 days out, never today.
	got, err = r.Resolve("next_wednesday", "", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(startOfNow.AddDate(0, 0, 7)) {
		t.Errorf("next_wednesday on wednesday: got %v, want +7 days", got)
	}
}

func TestResolveRollover(t *testing.T) {
	r, _ := datemath.NewResolver("UTC")
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	// No day label and a time already passed today: roll to tomorrow.
	got, err := r.Resolve("", "09:00", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("rollover: got %v, want %v", got, want)
	}

	// Still ahead today: stays today.
	got, _ = r.Resolve("", "20:00", now)
	want = time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("no rollover: got %v, want %v", got, want)
	}

	// Explicit day suppresses the rollover even for a past instant.
	got, _ = r.Resolve("today", "09:00", now)
	want = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("explicit day rollover suppression: got %v, want %v", got, want)
	}

	// No label, no time: start of today.
	got, _ = r.Resolve("", "", now)
	want = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("default day: got %v, want %v", got, want)
	}
}

func TestResolveFormatRoundTrip(t *testing.T) {
	r, _ := datemath.NewResolver("UTC")
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	days := []time.Time{
		time.Date(2019, 2, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range days {
		got, err := r.Resolve(datemath.FormatDay(d), "", now)
		if err != nil {
			t.Fatalf("round trip %v: %v", d, err)
		}
		if !got.Equal(d) {
			t.Errorf("round trip: Resolve(%q) = %v, want %v", datemath.FormatDay(d), got, d)
		}
	}
}

func TestFeasibleDay(t *testing.T) {
	yes := []string{
		"today", "tomorrow", "bugün", "yarın", "monday", "pazartesi",
		"next_sunday", "weekday_monday", "next friday", "gelecek cuma",
		"2024-06-15", "15.06.2024", "15 june", "june 15", "15 haziran",
	}
	for _, s := range yes {
		if !datemath.FeasibleDay(s) {
			t.Errorf("FeasibleDay(%q) = false, want true", s)
		}
	}
	no := []string{"", "someday", "buy milk", "13:00 maybe", "next_funday"}
	for _, s := range no {
		if datemath.FeasibleDay(s) {
			t.Errorf("FeasibleDay(%q) = true, want false", s)
		}
	}
}

func TestFeasibleTime(t *testing.T) {
	yes := []string{"09:30", "9:30", "23:59", "morning", "evening", "noon", "akşam", "sabah", "tonight"}
	for _, s := range yes {
		if !datemath.FeasibleTime(s) {
			t.Errorf("FeasibleTime(%q) = false, want true", s)
		}
	}
	no := []string{"", "24:00", "12:60", "later", "banana"}
	for _, s := range no {
		if datemath.FeasibleTime(s) {
			t.Errorf("FeasibleTime(%q) = true, want false", s)
		}
	}
}

func TestParseClock(t *testing.T) {
	if h, m, err := datemath.ParseClock("07:05"); err != nil || h != 7 || m != 5 {
		t.Errorf("ParseClock(07:05) = %d:%d, %v", h, m, err)
	}
	for _, bad := range []string{"7", "7:5", "24:00", "12:60", "ab:cd"} {
		if _, _, err := datemath.ParseClock(bad); err == nil {
			t.Errorf("ParseClock(%q): expected error", bad)
		}
	}
}
