package score

import (
	"testing"

	"github.com/verifysense/verifysense/internal/model"
)

func evidenceWithTiers(tiers ...model.ReliabilityTier) []model.EvidenceItem {
	items := make([]model.EvidenceItem, len(tiers))
	for i, tier := range tiers {
		items[i] = model.EvidenceItem{
			Title:        "Test article",
			URL:          "https://example.com/article",
			SourceDomain: "example.com",
			Reliability:  tier,
		}
	}
	return items
}

func TestAggregateReliability_Empty(t *testing.T) {
	avg, consistency := AggregateReliability(nil)
	if avg != 50 || consistency != 50 {
		t.Errorf("Expected neutral (50, 50) for no evidence, got (%v, %v)", avg, consistency)
	}
}

func TestAggregateReliability_Average(t *testing.T) {
	cases := []struct {
		name  string
		tiers []model.ReliabilityTier
		want  float64
	}{
		{"all high", []model.ReliabilityTier{model.TierHigh, model.TierHigh}, 80},
		{"all medium", []model.ReliabilityTier{model.TierMedium}, 50},
		{"low and unset score the same", []model.ReliabilityTier{model.TierLow, ""}, 30},
		{"mixed", []model.ReliabilityTier{model.TierHigh, model.TierMedium}, 65},
	}

	for _, tc := range cases {
		avg, _ := AggregateReliability(evidenceWithTiers(tc.tiers...))
		if avg != tc.want {
			t.Errorf("%s: avg = %v, want %v", tc.name, avg, tc.want)
		}
	}
}

func TestAggregateReliability_Consistency(t *testing.T) {
	cases := []struct {
		highCount int
		want      float64
	}{
		{0, 50},
		{1, 60},
		{2, 70},
		{3, 80},
		{5, 80},
	}

	for _, tc := range cases {
		tiers := make([]model.ReliabilityTier, tc.highCount)
		for i := range tiers {
			tiers[i] = model.TierHigh
		}
		// Pad with medium items so the evidence set is never empty
		tiers = append(tiers, model.TierMedium)

		_, consistency := AggregateReliability(evidenceWithTiers(tiers...))
		if consistency != tc.want {
			t.Errorf("%d high-tier items: consistency = %v, want %v", tc.highCount, consistency, tc.want)
		}
	}
}
