// Package pipeline orchestrates a verification request end to end: content
// normalization, claim extraction, per-claim signal gathering, score fusion
// and explanation synthesis.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/verifysense/verifysense/internal/model"
	"github.com/verifysense/verifysense/internal/score"
)

// ContentResolver normalizes submitted content into plain text
type ContentResolver interface {
	Resolve(ctx context.Context, req model.VerifyRequest) (string, error)
}

// ClaimExtractor decomposes plain text into verifiable claims
type ClaimExtractor interface {
	ExtractClaims(ctx context.Context, content string) ([]model.Claim, error)
}

// FactCheckProvider looks up published fact-checks for a claim
type FactCheckProvider interface {
	Lookup(ctx context.Context, claim model.Claim) ([]model.FactCheckResult, error)
}

// EvidenceProvider retrieves corroborating web evidence for a claim
type EvidenceProvider interface {
	Retrieve(ctx context.Context, claim model.Claim) ([]model.EvidenceItem, error)
}

// Explainer synthesizes a verification walkthrough for a scored claim
type Explainer interface {
	SynthesizeExplanation(ctx context.Context, claim model.Claim, factChecks []model.FactCheckResult, evidence []model.EvidenceItem, s model.VerificationScore) (model.Explanation, error)
}

// Pipeline wires the collaborators around the fusion engine. It is stateless
// across requests; one Pipeline serves all traffic.
type Pipeline struct {
	resolver  ContentResolver
	extractor ClaimExtractor
	factCheck FactCheckProvider
	evidence  EvidenceProvider
	explainer Explainer
	engine    *score.Engine

	maxClaims        int
	claimWorkers     int
	factCheckTimeout time.Duration
	evidenceTimeout  time.Duration
}

// New creates a pipeline. factCheck, evidence and explainer may be nil; the
// corresponding signal then always degrades to its empty state.
func New(resolver ContentResolver, extractor ClaimExtractor, factCheck FactCheckProvider, evidence EvidenceProvider, explainer Explainer, cfg model.Config) *Pipeline {
	maxClaims := cfg.Limits.MaxClaims
	if maxClaims <= 0 {
		maxClaims = 10
	}
	claimWorkers := cfg.Limits.ClaimWorkers
	if claimWorkers <= 0 {
		claimWorkers = 4
	}

	return &Pipeline{
		resolver:         resolver,
		extractor:        extractor,
		factCheck:        factCheck,
		evidence:         evidence,
		explainer:        explainer,
		engine:           score.NewEngine(),
		maxClaims:        maxClaims,
		claimWorkers:     claimWorkers,
		factCheckTimeout: cfg.FactCheck.Timeout,
		evidenceTimeout:  cfg.Search.Timeout,
	}
}

// Verify runs the full verification flow for one request. The returned
// results are ordered exactly as claims were extracted, regardless of which
// per-claim lookups finished first.
func (p *Pipeline) Verify(ctx context.Context, req model.VerifyRequest) ([]model.VerificationResult, error) {
	content, err := p.resolver.Resolve(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("resolve content: %w", err)
	}

	claims, err := p.extractor.ExtractClaims(ctx, content)
	if err != nil {
		return nil, &model.ExtractionError{Err: err}
	}
	if len(claims) == 0 {
		return nil, model.ErrNoClaims
	}

	// Bound fan-out on adversarial input
	if len(claims) > p.maxClaims {
		claims = claims[:p.maxClaims]
	}

	results := make([]model.VerificationResult, len(claims))
	semaphore := make(chan struct{}, p.claimWorkers)
	var wg sync.WaitGroup

	for i, claim := range claims {
		wg.Add(1)
		go func(idx int, c model.Claim) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				results[idx] = p.degradedResult(ctx, c)
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			results[idx] = p.verifyClaim(ctx, c)
		}(i, claim)
	}

	wg.Wait()
	return results, nil
}

// verifyClaim gathers both signal sets concurrently, fuses them and attaches
// an explanation
func (p *Pipeline) verifyClaim(ctx context.Context, claim model.Claim) model.VerificationResult {
	var (
		factChecks []model.FactCheckResult
		evidence   []model.EvidenceItem
		wg         sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		factChecks = p.lookupFactChecks(ctx, claim)
	}()
	go func() {
		defer wg.Done()
		evidence = p.retrieveEvidence(ctx, claim)
	}()
	wg.Wait()

	verificationScore := p.engine.Score(factChecks, evidence)
	explanation := p.explain(ctx, claim, factChecks, evidence, verificationScore)

	return model.VerificationResult{
		Claim:       claim,
		FactChecks:  factChecks,
		Evidence:    evidence,
		Score:       verificationScore,
		Explanation: explanation,
	}
}

// lookupFactChecks degrades to an empty signal on any provider failure or
// timeout; a slow fact-check backend must never fail the request
func (p *Pipeline) lookupFactChecks(ctx context.Context, claim model.Claim) []model.FactCheckResult {
	if p.factCheck == nil {
		return nil
	}

	ctx, cancel := p.callContext(ctx, p.factCheckTimeout)
	defer cancel()

	factChecks, err := p.factCheck.Lookup(ctx, claim)
	if err != nil {
		log.Printf("fact-check lookup degraded for claim %q: %v", truncate(string(claim), 60), err)
		return nil
	}
	return factChecks
}

// retrieveEvidence has the same degrade-to-empty contract
func (p *Pipeline) retrieveEvidence(ctx context.Context, claim model.Claim) []model.EvidenceItem {
	if p.evidence == nil {
		return nil
	}

	ctx, cancel := p.callContext(ctx, p.evidenceTimeout)
	defer cancel()

	evidence, err := p.evidence.Retrieve(ctx, claim)
	if err != nil {
		log.Printf("evidence retrieval degraded for claim %q: %v", truncate(string(claim), 60), err)
		return nil
	}
	return evidence
}

// degradedResult scores a claim whose lookups never ran (request context
// already cancelled): both signals empty, neutral defaults apply
func (p *Pipeline) degradedResult(ctx context.Context, claim model.Claim) model.VerificationResult {
	verificationScore := p.engine.Score(nil, nil)
	return model.VerificationResult{
		Claim:       claim,
		FactChecks:  nil,
		Evidence:    nil,
		Score:       verificationScore,
		Explanation: p.explain(ctx, claim, nil, nil, verificationScore),
	}
}

func (p *Pipeline) callContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
