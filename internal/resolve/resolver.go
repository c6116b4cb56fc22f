// Package resolve normalizes submitted content of any kind into plain text
// that claim extraction can work on.
package resolve

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/verifysense/verifysense/internal/model"
)

// TextExtractor is the OCR collaborator contract
type TextExtractor interface {
	ExtractText(ctx context.Context, imageData string) (string, error)
}

// Resolver turns a VerifyRequest into the plain text to verify: text passes
// through, URLs are fetched and reduced to visible text, images go through
// the OCR collaborator.
type Resolver struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *robotsChecker
	ocr        TextExtractor
}

// NewResolver creates a resolver. The OCR extractor may be nil when image
// input is not supported in this deployment.
func NewResolver(cfg model.HTTPConfig, ocr TextExtractor) *Resolver {
	return &Resolver{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		robots:    newRobotsChecker(cfg.UserAgent, cfg.Timeout),
		ocr:       ocr,
	}
}

// Resolve produces the plain text for a request
func (r *Resolver) Resolve(ctx context.Context, req model.VerifyRequest) (string, error) {
	switch req.Kind {
	case model.ContentURL:
		return r.resolveURL(ctx, req.Content)

	case model.ContentImage:
		if r.ocr == nil {
			return "", &model.OCRError{Err: fmt.Errorf("OCR is not configured")}
		}
		return r.ocr.ExtractText(ctx, req.Content)

	case model.ContentText, "":
		return req.Content, nil

	default:
		return "", fmt.Errorf("unknown content kind: %q", req.Kind)
	}
}

// resolveURL fetches a page, respecting robots.txt, and strips it to visible
// text
func (r *Resolver) resolveURL(ctx context.Context, rawURL string) (string, error) {
	allowed, err := r.robots.canFetch(ctx, rawURL)
	if err != nil {
		return "", fmt.Errorf("robots check: %w", err)
	}
	if !allowed {
		return "", fmt.Errorf("fetching %s is disallowed by robots.txt", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, r.maxBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	return VisibleText(string(body))
}
