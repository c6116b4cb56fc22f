package model

import (
	"errors"
	"fmt"
)

// ErrNoClaims is returned when extraction yields zero claims. Terminal and
// user-visible; the request carried nothing verifiable, which is not a crash.
var ErrNoClaims = errors.New("no claims could be extracted from the provided content")

// ExtractionError wraps a claim-extraction collaborator failure.
// Surfaced to the caller; the core does not retry.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("claim extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// OCRError wraps an image-to-text collaborator failure, including missing
// credentials. Surfaced to the caller.
type OCRError struct {
	Err error
}

func (e *OCRError) Error() string {
	return fmt.Sprintf("text extraction from image failed: %v", e.Err)
}

func (e *OCRError) Unwrap() error { return e.Err }

// ErrorKind classifies a request-level failure for the response boundary
type ErrorKind string

const (
	KindNoClaims   ErrorKind = "no_claims_found"
	KindExtraction ErrorKind = "extraction_error"
	KindOCR        ErrorKind = "ocr_error"
	KindInternal   ErrorKind = "internal_error"
)

// ClassifyError maps a pipeline error to its response error kind
func ClassifyError(err error) ErrorKind {
	var extractionErr *ExtractionError
	var ocrErr *OCRError

	switch {
	case errors.Is(err, ErrNoClaims):
		return KindNoClaims
	case errors.As(err, &extractionErr):
		return KindExtraction
	case errors.As(err, &ocrErr):
		return KindOCR
	default:
		return KindInternal
	}
}
