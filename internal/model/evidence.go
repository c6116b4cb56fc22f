package model

// ReliabilityTier is a coarse trust classification for an evidence source
type ReliabilityTier string

const (
	TierHigh   ReliabilityTier = "high"   // Domain is on the trusted list
	TierMedium ReliabilityTier = "medium" // Everything else from web search
	TierLow    ReliabilityTier = "low"    // Reserved for explicitly flagged sources
)

// EvidenceItem is a retrieved web document snippet used as
// corroborating or refuting context for a claim
type EvidenceItem struct {
	Title         string          `json:"title"`
	Snippet       string          `json:"snippet"`
	URL           string          `json:"url"`
	SourceDomain  string          `json:"source"`         // Bare domain, no scheme or www prefix
	Reliability   ReliabilityTier `json:"reliability"`
	PublishedDate string          `json:"date,omitempty"` // article:published_time metatag when present
}
