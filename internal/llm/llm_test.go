package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/verifysense/verifysense/internal/model"
)

func TestParseNumberedList(t *testing.T) {
	text := `1. Vaccines contain microchips
2) The moon landing happened in 1969
3. Water boils at 100 degrees Celsius`

	claims := parseNumberedList(text)
	if len(claims) != 3 {
		t.Fatalf("Expected 3 claims, got %d: %v", len(claims), claims)
	}
	if claims[0] != "Vaccines contain microchips" {
		t.Errorf("Unexpected first claim: %q", claims[0])
	}
	if claims[1] != "The moon landing happened in 1969" {
		t.Errorf("Unexpected second claim: %q", claims[1])
	}
}

func TestParseNumberedList_FallbackToWholeText(t *testing.T) {
	claims := parseNumberedList("The earth orbits the sun.")
	if len(claims) != 1 || claims[0] != "The earth orbits the sun." {
		t.Errorf("Expected whole text as single claim, got %v", claims)
	}
}

func TestParseNumberedList_Empty(t *testing.T) {
	if claims := parseNumberedList("   "); claims != nil {
		t.Errorf("Expected nil for blank input, got %v", claims)
	}
}

func TestParseExplanation_JSON(t *testing.T) {
	text := "```json\n{\"summary\": \"The claim is refuted.\", \"steps\": [\"Check fact-checkers\", \"Read multiple outlets\", \"Trace the original source\"]}\n```"

	explanation, err := parseExplanation(text)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if explanation.Summary != "The claim is refuted." {
		t.Errorf("Unexpected summary: %q", explanation.Summary)
	}
	if len(explanation.Steps) != 3 {
		t.Errorf("Expected 3 steps, got %d", len(explanation.Steps))
	}
}

func TestParseExplanation_NumberedFallback(t *testing.T) {
	text := `This claim was rated false by two organizations.
1. Search fact-checking sites
2. Compare coverage across outlets
3. Check the claim's original context`

	explanation, err := parseExplanation(text)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(explanation.Summary, "rated false") {
		t.Errorf("Unexpected summary: %q", explanation.Summary)
	}
	if len(explanation.Steps) != 3 {
		t.Errorf("Expected 3 steps, got %d", len(explanation.Steps))
	}
}

func TestParseExplanation_Unparseable(t *testing.T) {
	if _, err := parseExplanation("short"); err == nil {
		t.Error("Expected error for unparseable response")
	}
}

func TestHeuristicProvider_ExtractClaims(t *testing.T) {
	provider := NewHeuristicProvider(10)

	content := "The Eiffel Tower was completed in 1889. It is located in Paris. What a sight!"
	claims, err := provider.ExtractClaims(context.Background(), content)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(claims) < 2 {
		t.Errorf("Expected at least 2 claims, got %d: %v", len(claims), claims)
	}
}

func TestHeuristicProvider_ShortBareStatement(t *testing.T) {
	provider := NewHeuristicProvider(10)

	claims, err := provider.ExtractClaims(context.Background(), "Vaccines contain microchips")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(claims) != 1 {
		t.Fatalf("Expected bare statement to become one claim, got %v", claims)
	}
}

func TestHeuristicProvider_Cap(t *testing.T) {
	provider := NewHeuristicProvider(2)

	content := strings.Repeat("This statement is a verifiable fact about the world. ", 10)
	claims, _ := provider.ExtractClaims(context.Background(), content)
	if len(claims) > 2 {
		t.Errorf("Expected at most 2 claims, got %d", len(claims))
	}
}

func TestHeuristicProvider_NoExplanations(t *testing.T) {
	provider := NewHeuristicProvider(10)

	_, err := provider.SynthesizeExplanation(context.Background(), "claim", nil, nil, model.VerificationScore{})
	if err == nil {
		t.Error("Expected heuristic provider to refuse explanation synthesis")
	}
}

func TestNewProvider(t *testing.T) {
	if _, err := NewProvider(model.LLMConfig{Provider: "openai"}, 10); err == nil {
		t.Error("Expected error for openai provider without API key")
	}

	p, err := NewProvider(model.LLMConfig{Provider: ""}, 10)
	if err != nil {
		t.Fatalf("Expected heuristic fallback, got error %v", err)
	}
	if p.Name() != "heuristic" {
		t.Errorf("Expected heuristic provider, got %q", p.Name())
	}

	if _, err := NewProvider(model.LLMConfig{Provider: "bard"}, 10); err == nil {
		t.Error("Expected error for unknown provider")
	}
}
