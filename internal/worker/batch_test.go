package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/verifysense/verifysense/internal/model"
)

type stubVerifier struct {
	err error
}

func (s *stubVerifier) Verify(ctx context.Context, req model.VerifyRequest) ([]model.VerificationResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []model.VerificationResult{{
		Claim: model.Claim(req.Content),
		Score: model.VerificationScore{Final: 52, Label: model.LabelMixed},
	}}, nil
}

func TestBatchProcessor_Process(t *testing.T) {
	processor := NewBatchProcessor(&stubVerifier{}, 2)

	requests := []model.VerifyRequest{
		{Content: "claim one", Kind: model.ContentText},
		{Content: "claim two", Kind: model.ContentText},
		{Content: "claim three", Kind: model.ContentText},
	}

	results := processor.Process(context.Background(), requests)
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	for _, r := range results {
		if r.GetError() != nil {
			t.Errorf("Unexpected error for %q: %v", r.Request.Content, r.Err)
		}
		if len(r.Results) != 1 {
			t.Errorf("Expected 1 verification result for %q", r.Request.Content)
		}
	}
}

func TestBatchProcessor_ErrorsDoNotStopBatch(t *testing.T) {
	processor := NewBatchProcessor(&stubVerifier{err: errors.New("no claims")}, 2)

	results := processor.Process(context.Background(), []model.VerifyRequest{
		{Content: "a"}, {Content: "b"},
	})
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.GetError() == nil {
			t.Error("Expected per-entry error to be reported")
		}
	}
}

func TestBatchProcessor_Empty(t *testing.T) {
	processor := NewBatchProcessor(&stubVerifier{}, 2)
	if results := processor.Process(context.Background(), nil); len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestReadRequests(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.txt")
	content := `# comment line
The earth is flat

url|https://example.com/article
text|  A plainly tagged claim
image|aGVsbG8=
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	requests, err := ReadRequests(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(requests) != 4 {
		t.Fatalf("Expected 4 requests, got %d", len(requests))
	}

	if requests[0].Kind != model.ContentText || requests[0].Content != "The earth is flat" {
		t.Errorf("Unexpected first request: %+v", requests[0])
	}
	if requests[1].Kind != model.ContentURL || requests[1].Content != "https://example.com/article" {
		t.Errorf("Unexpected url request: %+v", requests[1])
	}
	if requests[2].Kind != model.ContentText || requests[2].Content != "A plainly tagged claim" {
		t.Errorf("Unexpected tagged text request: %+v", requests[2])
	}
	if requests[3].Kind != model.ContentImage {
		t.Errorf("Unexpected image request: %+v", requests[3])
	}
}

func TestReadRequests_MissingFile(t *testing.T) {
	if _, err := ReadRequests("/nonexistent/batch.txt"); err == nil {
		t.Error("Expected error for missing file")
	}
}
