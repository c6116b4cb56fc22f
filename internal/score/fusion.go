package score

import (
	"fmt"
	"math"

	"github.com/verifysense/verifysense/internal/model"
)

// Fixed fusion weights. They must sum to 1.0; NewEngine asserts this.
const (
	weightClaimMatch  = 0.4
	weightReliability = 0.3
	weightCrossSource = 0.2
	weightTemporal    = 0.1
)

// DefaultTemporalRelevance is the placeholder temporal-relevance component
// used until a real recency model lands. Overridable per Engine so the
// replacement will not change the fusion contract.
const DefaultTemporalRelevance = 70.0

// Label thresholds, inclusive on both ends
const (
	labelTrueThreshold  = 70
	labelFalseThreshold = 40
)

// Engine fuses per-signal components into a single credibility score.
// Calculation is pure and deterministic: identical inputs always yield
// identical output.
type Engine struct {
	// TemporalRelevance is the constant fed into the temporal component of
	// every fusion until a recency model replaces it.
	TemporalRelevance float64
}

// NewEngine creates a fusion engine with the default temporal placeholder.
// Panics if the compile-time weights have drifted away from summing to 1.0.
func NewEngine() *Engine {
	if w := weightClaimMatch + weightReliability + weightCrossSource + weightTemporal; math.Abs(w-1.0) > 1e-9 {
		panic(fmt.Sprintf("fusion weights sum to %v, want 1.0", w))
	}
	return &Engine{TemporalRelevance: DefaultTemporalRelevance}
}

// Fuse combines the claim-match, reliability and consistency components with
// the engine's temporal-relevance value into a VerificationScore. The final
// score is rounded to an integer and clamped to [0,100]; the clamp is
// defensive, unreachable with in-range components.
func (e *Engine) Fuse(claimMatch, reliabilityAvg, crossSource float64) model.VerificationScore {
	components := model.ScoreComponents{
		ClaimMatchScore:        claimMatch,
		SourceReliabilityAvg:   reliabilityAvg,
		CrossSourceConsistency: crossSource,
		TemporalRelevance:      e.TemporalRelevance,
	}

	weighted := claimMatch*weightClaimMatch +
		reliabilityAvg*weightReliability +
		crossSource*weightCrossSource +
		e.TemporalRelevance*weightTemporal

	final := int(math.Round(weighted))
	if final < 0 {
		final = 0
	}
	if final > 100 {
		final = 100
	}

	return model.VerificationScore{
		Final:      final,
		Label:      LabelFor(final),
		Components: components,
	}
}

// Score is a convenience wrapper that runs the normalizer and aggregator over
// raw per-claim signals before fusing them.
func (e *Engine) Score(factChecks []model.FactCheckResult, evidence []model.EvidenceItem) model.VerificationScore {
	claimMatch := NormalizeRatings(factChecks)
	reliabilityAvg, consistency := AggregateReliability(evidence)
	return e.Fuse(claimMatch, reliabilityAvg, consistency)
}

// LabelFor maps a final score to its confidence label. The label is a
// function of the score alone.
func LabelFor(final int) model.ConfidenceLabel {
	switch {
	case final >= labelTrueThreshold:
		return model.LabelLikelyTrue
	case final <= labelFalseThreshold:
		return model.LabelLikelyFalse
	default:
		return model.LabelMixed
	}
}
