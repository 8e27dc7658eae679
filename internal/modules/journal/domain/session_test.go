package domain_test

import (
	"testing"

	"pokerlog/internal/modules/journal/domain"
)

func mustClock(t *testing.T, value string) domain.ClockTime {
	t.Helper()
	c, err := domain.ParseClock(value)
	if err != nil {
		t.Fatalf("parse clock %q: %v", value, err)
	}
	return c
}

func TestComputeDuration(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same evening", "19:00", "23:00", 240},
		{"overnight wrap", "23:00", "02:00", 180},
		{"just before midnight", "23:59", "00:01", 2},
		{"zero length", "10:30", "10:30", 0},
		{"full minute range", "00:00", "23:59", 1439},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.ComputeDuration(mustClock(t, tc.start), mustClock(t, tc.end))
			if got != tc.want {
				t.Fatalf("duration(%s, %s) = %d, want %d", tc.start, tc.end, got, tc.want)
			}
			if got < 0 || got > 1439 {
				t.Fatalf("duration out of [0,1439]: %d", got)
			}
		})
	}
}

func TestCashOutcome(t *testing.T) {
	t.Parallel()
	net, hourly := domain.CashOutcome(200, 540, 240)
	if net != 340 {
		t.Fatalf("net = %v, want 340", net)
	}
	if hourly != 85 {
		t.Fatalf("hourly = %v, want 85", hourly)
	}

	net, hourly = domain.CashOutcome(100, 700, 0)
	if net != 600 {
		t.Fatalf("net = %v, want 600", net)
	}
	if hourly != 0 {
		t.Fatalf("zero-duration session must report zero hourly rate, got %v", hourly)
	}
}

func TestTournamentOutcome(t *testing.T) {
	t.Parallel()
	net, roi, invested := domain.TournamentOutcome(150, 15, 2, 0)
	if invested != 495 {
		t.Fatalf("invested = %v, want 495", invested)
	}
	if net != -495 {
		t.Fatalf("net = %v, want -495", net)
	}
	if roi != -100 {
		t.Fatalf("roi = %v, want -100", roi)
	}

	// No investment means no ROI, not a division blowup.
	net, roi, invested = domain.TournamentOutcome(0, 0, 0, 50)
	if invested != 0 || net != 50 || roi != 0 {
		t.Fatalf("free-roll outcome = (%v, %v, %v), want (50, 0, 0)", net, roi, invested)
	}
}

func TestParseLeniency(t *testing.T) {
	t.Parallel()
	for _, value := range []string{"", "abc", "12.5.7", " "} {
		if got := domain.ParseAmount(value); got != 0 {
			t.Fatalf("ParseAmount(%q) = %v, want 0", value, got)
		}
	}
	if got := domain.ParseAmount(" 42.50 "); got != 42.5 {
		t.Fatalf("ParseAmount trims and parses, got %v", got)
	}
	if got := domain.ParseCount("-3"); got != 0 {
		t.Fatalf("negative count coerces to 0, got %d", got)
	}
	if got := domain.ParseCount("2"); got != 2 {
		t.Fatalf("ParseCount(2) = %d", got)
	}
}

func TestParseClockRejectsGarbage(t *testing.T) {
	t.Parallel()
	for _, value := range []string{"", "25:00", "12:60", "noon", "12"} {
		if _, err := domain.ParseClock(value); err == nil {
			t.Fatalf("ParseClock(%q) must fail", value)
		}
	}
}
