package llm

import (
	"context"

	"github.com/verifysense/verifysense/internal/model"
)

// Provider is the language-model collaborator behind claim extraction and
// explanation synthesis. The core never depends on a concrete vendor.
type Provider interface {
	// Name returns the provider name
	Name() string

	// ExtractClaims decomposes plain text into discrete verifiable claims.
	// An empty result is valid; the orchestrator decides what it means.
	ExtractClaims(ctx context.Context, content string) ([]model.Claim, error)

	// SynthesizeExplanation produces a verification walkthrough for a scored
	// claim. Callers must treat failure as a normal outcome and fall back to
	// the generic checklist.
	SynthesizeExplanation(ctx context.Context, claim model.Claim, factChecks []model.FactCheckResult, evidence []model.EvidenceItem, score model.VerificationScore) (model.Explanation, error)

	// IsAvailable checks if the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}
