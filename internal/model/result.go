package model

// ScoreComponents is the transparent per-signal breakdown behind a final score.
// Each component is a value in [0,100].
type ScoreComponents struct {
	ClaimMatchScore        float64 `json:"claim_match_score"`
	SourceReliabilityAvg   float64 `json:"source_reliability_avg"`
	CrossSourceConsistency float64 `json:"cross_source_consistency"`
	TemporalRelevance      float64 `json:"temporal_relevance"`
}

// ConfidenceLabel is the human-readable bucket derived from the final score
type ConfidenceLabel string

const (
	LabelLikelyTrue  ConfidenceLabel = "Likely True"
	LabelMixed       ConfidenceLabel = "Mixed/Needs Verification"
	LabelLikelyFalse ConfidenceLabel = "Likely False"
)

// VerificationScore is the fused credibility score for one claim.
// Immutable once computed; the label is a function of Final alone.
type VerificationScore struct {
	Final      int             `json:"score"` // Integer in [0,100]
	Label      ConfidenceLabel `json:"confidence_label"`
	Components ScoreComponents `json:"components"`
}

// Explanation walks a reader through how a claim was verified
type Explanation struct {
	Summary   string   `json:"summary"` // One paragraph referencing the confidence label
	Steps     []string `json:"steps"`   // 3-4 actions a user can take to self-verify
	Generated bool     `json:"-"`       // False when the generic fallback checklist was used
}

// VerificationResult is the unit returned to the caller, one per extracted claim
type VerificationResult struct {
	Claim       Claim             `json:"claim"`
	FactChecks  []FactCheckResult `json:"fact_checks"`
	Evidence    []EvidenceItem    `json:"evidence"`
	Score       VerificationScore `json:"score"`
	Explanation Explanation       `json:"explanation"`
}
