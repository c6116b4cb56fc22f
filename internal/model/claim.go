package model

// Claim is a single verifiable factual assertion extracted from input content
type Claim string

// FactCheckResult is a verdict issued by a third-party fact-checking
// organization against a claim
type FactCheckResult struct {
	PublisherName     string `json:"publisher_name"`               // Fact-checking organization
	PublisherSite     string `json:"publisher_site,omitempty"`     // Organization website
	Rating            string `json:"rating"`                       // Free-text verdict ("False", "Mostly True", ...)
	RatingExplanation string `json:"rating_explanation,omitempty"` // Review title or short rationale
	SourceURL         string `json:"source_url,omitempty"`         // Link to the full review
	ClaimDate         string `json:"claim_date,omitempty"`         // Date the claim was made, as reported
	ClaimReviewed     string `json:"claim_reviewed,omitempty"`     // The claim text as the reviewer phrased it
}

// ContentKind declares how the submitted content should be resolved to text
type ContentKind string

const (
	ContentText  ContentKind = "text"  // Plain text, used as-is
	ContentURL   ContentKind = "url"   // Web page, fetched and reduced to visible text
	ContentImage ContentKind = "image" // Base64 image, sent through OCR
)

// VerifyRequest is the unit of input to the orchestrator
type VerifyRequest struct {
	Content string      `json:"content"`
	Kind    ContentKind `json:"input_type"`
}
