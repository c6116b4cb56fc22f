package pipeline

import (
	"fmt"

	"github.com/verifysense/verifysense/internal/cache"
	"github.com/verifysense/verifysense/internal/llm"
	"github.com/verifysense/verifysense/internal/model"
	"github.com/verifysense/verifysense/internal/provider/factcheck"
	"github.com/verifysense/verifysense/internal/provider/ocr"
	"github.com/verifysense/verifysense/internal/provider/search"
	"github.com/verifysense/verifysense/internal/resolve"
	"github.com/verifysense/verifysense/internal/worker"
)

// NewFromConfig assembles the production pipeline: real collaborator adapters
// wherever credentials exist, nil (always-degraded) providers where they
// don't. Verification still works with nothing configured; every signal just
// sits at its neutral default.
func NewFromConfig(cfg model.Config) (*Pipeline, error) {
	var responseCache cache.Cache
	if cfg.Cache.Enabled {
		responseCache = cache.NewMemory(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	limiter := worker.NewLimiter(5, 5)

	var factCheckProvider FactCheckProvider
	if cfg.FactCheck.APIKey != "" {
		factCheckProvider = factcheck.NewClient(cfg.FactCheck, limiter, responseCache)
	}

	var evidenceProvider EvidenceProvider
	if cfg.Search.APIKey != "" && cfg.Search.EngineID != "" {
		evidenceProvider = search.NewClient(cfg.Search, limiter, responseCache)
	}

	llmProvider, err := llm.NewProvider(cfg.LLM, cfg.Limits.MaxClaims)
	if err != nil {
		return nil, fmt.Errorf("init LLM provider: %w", err)
	}

	var ocrClient resolve.TextExtractor
	if cfg.OCR.APIKey != "" {
		ocrClient = ocr.NewClient(cfg.OCR)
	}

	resolver := resolve.NewResolver(cfg.HTTP, ocrClient)

	// The LLM provider doubles as the explainer; the heuristic fallback
	// refuses synthesis, which the explain stage absorbs into the checklist.
	return New(resolver, llmProvider, factCheckProvider, evidenceProvider, llmProvider, cfg), nil
}
