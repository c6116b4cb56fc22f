package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/verifysense/verifysense/internal/model"
)

// Verifier runs one verification request; satisfied by pipeline.Pipeline
type Verifier interface {
	Verify(ctx context.Context, req model.VerifyRequest) ([]model.VerificationResult, error)
}

// VerifyJob verifies one input through the pool
type VerifyJob struct {
	Request  model.VerifyRequest
	Verifier Verifier
}

// Execute runs the verification
func (j *VerifyJob) Execute(ctx context.Context) Result {
	results, err := j.Verifier.Verify(ctx, j.Request)
	return &VerifyJobResult{
		Request: j.Request,
		Results: results,
		Err:     err,
	}
}

// VerifyJobResult is the outcome of one batch entry
type VerifyJobResult struct {
	Request model.VerifyRequest
	Results []model.VerificationResult
	Err     error
}

// GetError returns the job error
func (r *VerifyJobResult) GetError() error { return r.Err }

// BatchProcessor verifies many inputs concurrently
type BatchProcessor struct {
	verifier    Verifier
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(verifier Verifier, concurrency int) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = 2
	}
	return &BatchProcessor{
		verifier:    verifier,
		concurrency: concurrency,
	}
}

// Process verifies all requests on the pool and returns the outcomes
func (b *BatchProcessor) Process(ctx context.Context, requests []model.VerifyRequest) []*VerifyJobResult {
	if len(requests) == 0 {
		return []*VerifyJobResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	go func() {
		<-ctx.Done()
		pool.Shutdown()
	}()

	for _, req := range requests {
		pool.Submit(&VerifyJob{Request: req, Verifier: b.verifier})
	}

	raw := pool.Wait()
	results := make([]*VerifyJobResult, 0, len(raw))
	for _, r := range raw {
		if jr, ok := r.(*VerifyJobResult); ok {
			results = append(results, jr)
		}
	}
	return results
}

// ReadRequests loads batch inputs from a file, one per line. A line is either
// bare content (treated as text) or "kind|content" with kind text, url or
// image. Blank lines and # comments are skipped.
func ReadRequests(path string) ([]model.VerifyRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var requests []model.VerifyRequest
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		kind := model.ContentText
		content := line
		if idx := strings.Index(line, "|"); idx > 0 {
			switch model.ContentKind(line[:idx]) {
			case model.ContentText, model.ContentURL, model.ContentImage:
				kind = model.ContentKind(line[:idx])
				content = strings.TrimSpace(line[idx+1:])
			}
		}

		requests = append(requests, model.VerifyRequest{Content: content, Kind: kind})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	return requests, nil
}
