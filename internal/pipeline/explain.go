package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/verifysense/verifysense/internal/model"
)

// genericSteps is the fixed self-verification checklist used whenever the
// explanation collaborator is unavailable or fails
var genericSteps = []string{
	"Check official fact-checking websites for this claim",
	"Look for reporting from multiple reliable news sources",
	"Verify the original context and source of the claim",
	"Consider the evidence quality and consistency across sources",
}

// explain produces the explanation for a scored claim. Synthesis failure is a
// normal, typed outcome: the generic checklist takes over and the request
// proceeds. This stage never fails the request.
func (p *Pipeline) explain(ctx context.Context, claim model.Claim, factChecks []model.FactCheckResult, evidence []model.EvidenceItem, s model.VerificationScore) model.Explanation {
	if p.explainer != nil {
		explanation, err := p.explainer.SynthesizeExplanation(ctx, claim, factChecks, evidence, s)
		if err == nil && explanation.Summary != "" && len(explanation.Steps) > 0 {
			return explanation
		}
		if err != nil {
			log.Printf("explanation synthesis degraded for claim %q: %v", truncate(string(claim), 60), err)
		}
	}

	return FallbackExplanation(s.Label)
}

// FallbackExplanation builds the generic explanation for a confidence label
func FallbackExplanation(label model.ConfidenceLabel) model.Explanation {
	return model.Explanation{
		Summary:   fmt.Sprintf("We analyzed this claim and found it to be %s based on available evidence.", label),
		Steps:     append([]string(nil), genericSteps...),
		Generated: false,
	}
}
