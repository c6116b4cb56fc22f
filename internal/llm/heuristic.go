package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/verifysense/verifysense/internal/model"
)

// claimKeywords mark sentences likely to carry a verifiable assertion
var claimKeywords = []string{
	"is", "are", "was", "were", "has", "have", "contains", "causes",
	"originated", "invented", "discovered", "founded", "created",
	"according to", "established", "announced", "confirmed", "reported",
	"percent", "%", "million", "billion",
}

// HeuristicProvider is the offline fallback behind ExtractClaims when no LLM
// is configured. It splits text into sentences and keeps the ones that look
// like assertions. It cannot synthesize explanations; callers get the generic
// checklist instead.
type HeuristicProvider struct {
	maxClaims int
}

// NewHeuristicProvider creates the fallback extractor
func NewHeuristicProvider(maxClaims int) *HeuristicProvider {
	if maxClaims <= 0 {
		maxClaims = 10
	}
	return &HeuristicProvider{maxClaims: maxClaims}
}

// Name returns the provider name
func (p *HeuristicProvider) Name() string {
	return "heuristic"
}

// IsAvailable always succeeds; there is no remote dependency
func (p *HeuristicProvider) IsAvailable(ctx context.Context) bool {
	return true
}

// ExtractClaims keeps assertion-like sentences, deduplicated, capped
func (p *HeuristicProvider) ExtractClaims(ctx context.Context, content string) ([]model.Claim, error) {
	sentences := splitSentences(content)

	seen := make(map[string]bool)
	var claims []model.Claim
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		for _, keyword := range claimKeywords {
			if strings.Contains(lower, keyword) {
				key := strings.TrimSpace(lower)
				if !seen[key] {
					seen[key] = true
					claims = append(claims, model.Claim(strings.TrimSpace(sentence)))
				}
				break
			}
		}
		if len(claims) >= p.maxClaims {
			break
		}
	}

	// Short inputs are often a single bare claim with no terminator
	if len(claims) == 0 {
		if trimmed := strings.TrimSpace(content); trimmed != "" && len(trimmed) <= 300 {
			claims = []model.Claim{model.Claim(trimmed)}
		}
	}

	return claims, nil
}

// SynthesizeExplanation is not supported by the heuristic provider
func (p *HeuristicProvider) SynthesizeExplanation(ctx context.Context, claim model.Claim, factChecks []model.FactCheckResult, evidence []model.EvidenceItem, score model.VerificationScore) (model.Explanation, error) {
	return model.Explanation{}, fmt.Errorf("heuristic provider cannot synthesize explanations")
}

// splitSentences splits text on sentence terminators, keeping sentences of a
// plausible length
func splitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	for i, r := range text {
		current.WriteRune(r)

		if r == '.' || r == '!' || r == '?' {
			if i+1 >= len(text) || text[i+1] == ' ' || text[i+1] == '\t' {
				sentence := strings.TrimSpace(current.String())
				if len(sentence) >= 15 && len(sentence) <= 500 {
					sentences = append(sentences, sentence)
				}
				current.Reset()
			}
		}
	}

	if current.Len() > 0 {
		sentence := strings.TrimSpace(current.String())
		if len(sentence) >= 15 && len(sentence) <= 500 {
			sentences = append(sentences, sentence)
		}
	}

	return sentences
}
