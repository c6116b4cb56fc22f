package llm

import (
	"fmt"
	"strings"

	"github.com/verifysense/verifysense/internal/model"
)

// NewProvider builds the LLM collaborator from configuration. An empty
// provider name selects the offline heuristic extractor.
func NewProvider(config model.LLMConfig, maxClaims int) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai", "gemini":
		// Gemini is reached through its OpenAI-compatible endpoint
		return NewOpenAIProvider(config)

	case "":
		return NewHeuristicProvider(maxClaims), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, gemini)", config.Provider)
	}
}
