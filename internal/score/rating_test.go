package score

import (
	"testing"

	"github.com/verifysense/verifysense/internal/model"
)

func checksWithRatings(ratings ...string) []model.FactCheckResult {
	checks := make([]model.FactCheckResult, len(ratings))
	for i, r := range ratings {
		checks[i] = model.FactCheckResult{
			PublisherName: "Test Publisher",
			Rating:        r,
		}
	}
	return checks
}

func TestNormalizeRatings_Empty(t *testing.T) {
	if got := NormalizeRatings(nil); got != 50 {
		t.Errorf("Expected neutral 50 for no fact-checks, got %v", got)
	}
}

func TestNormalizeRatings_Keywords(t *testing.T) {
	cases := []struct {
		rating string
		want   float64
	}{
		{"False", 20},
		{"Pants on Fire!", 20},
		{"Mostly False", 20}, // contains "false", so the first rule wins
		{"Misleading", 30},
		{"Half True", 50},
		{"Mixture", 50},
		{"Mixed", 50},
		{"Mostly True", 70},
		{"True", 90},
		{"TRUE", 90},
	}

	for _, tc := range cases {
		got := NormalizeRatings(checksWithRatings(tc.rating))
		if got != tc.want {
			t.Errorf("NormalizeRatings(%q) = %v, want %v", tc.rating, got, tc.want)
		}
	}
}

func TestNormalizeRatings_UnrecognizedKeepsBase(t *testing.T) {
	if got := NormalizeRatings(checksWithRatings("Unproven")); got != 80 {
		t.Errorf("Expected base 80 for unrecognized rating, got %v", got)
	}
}

func TestNormalizeRatings_UnrecognizedDoesNotOverwrite(t *testing.T) {
	// A verdict with no keyword contributes nothing; the earlier match stands.
	got := NormalizeRatings(checksWithRatings("False", "Unproven"))
	if got != 20 {
		t.Errorf("Expected 20 after unrecognized trailing rating, got %v", got)
	}
}

func TestNormalizeRatings_LastMatchWins(t *testing.T) {
	// When multiple fact-checks disagree, the last one to match in supply
	// order wins.
	got := NormalizeRatings(checksWithRatings("False", "Mostly True"))
	if got != 70 {
		t.Errorf("Expected last matching check to win (70), got %v", got)
	}

	got = NormalizeRatings(checksWithRatings("Mostly True", "False"))
	if got != 20 {
		t.Errorf("Expected last matching check to win (20), got %v", got)
	}
}

func TestNormalizeRatings_ConflictingKeywordsInOneRating(t *testing.T) {
	// Contains both "mostly true" and "misleading"; the rule table is scanned
	// top to bottom, so "misleading" (rule 2) wins over "mostly true" (rule 4).
	got := NormalizeRatings(checksWithRatings("This is mostly true but somewhat misleading"))
	if got != 30 {
		t.Errorf("Expected 30 per documented rule precedence, got %v", got)
	}
}
