// Package ocr extracts text from images through the Google Cloud Vision
// REST API.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/verifysense/verifysense/internal/model"
)

// Client performs TEXT_DETECTION annotate calls
type Client struct {
	httpClient *http.Client
	config     model.OCRConfig
}

// NewClient creates an OCR client
func NewClient(config model.OCRConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: config.Timeout},
		config:     config,
	}
}

type annotateRequest struct {
	Requests []annotateEntry `json:"requests"`
}

type annotateEntry struct {
	Image    annotateImage     `json:"image"`
	Features []annotateFeature `json:"features"`
}

type annotateImage struct {
	Content string `json:"content"`
}

type annotateFeature struct {
	Type string `json:"type"`
}

type annotateResponse struct {
	Responses []struct {
		TextAnnotations []struct {
			Description string `json:"description"`
		} `json:"textAnnotations"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	} `json:"responses"`
}

// ExtractText runs text detection over a base64-encoded image. Data URIs are
// accepted and stripped to their payload. Detecting no text returns an empty
// string, not an error; missing credentials and transport failures are
// OCRErrors.
func (c *Client) ExtractText(ctx context.Context, imageData string) (string, error) {
	if c.config.APIKey == "" {
		return "", &model.OCRError{Err: fmt.Errorf("vision API key not configured")}
	}

	// Strip "data:image/png;base64," style prefixes
	if strings.HasPrefix(imageData, "data:image") {
		if idx := strings.Index(imageData, ","); idx >= 0 {
			imageData = imageData[idx+1:]
		}
	}

	payload, err := json.Marshal(annotateRequest{
		Requests: []annotateEntry{{
			Image:    annotateImage{Content: imageData},
			Features: []annotateFeature{{Type: "TEXT_DETECTION"}},
		}},
	})
	if err != nil {
		return "", &model.OCRError{Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint+"?key="+c.config.APIKey, bytes.NewReader(payload))
	if err != nil {
		return "", &model.OCRError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &model.OCRError{Err: fmt.Errorf("vision request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &model.OCRError{Err: fmt.Errorf("vision API status %d: %s", resp.StatusCode, string(body))}
	}

	var parsed annotateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &model.OCRError{Err: fmt.Errorf("decode response: %w", err)}
	}

	if len(parsed.Responses) == 0 {
		return "", nil
	}
	if apiErr := parsed.Responses[0].Error; apiErr != nil {
		return "", &model.OCRError{Err: fmt.Errorf("vision API: %s", apiErr.Message)}
	}

	// The first annotation carries the full detected text
	if annotations := parsed.Responses[0].TextAnnotations; len(annotations) > 0 {
		return annotations[0].Description, nil
	}
	return "", nil
}
