package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/verifysense/verifysense/internal/model"
)

// OpenAIProvider implements Provider against any OpenAI-compatible Chat
// Completions endpoint. A custom BaseURL covers Gemini and other vendors
// exposing the compatible API.
type OpenAIProvider struct {
	client *openai.Client
	config model.LLMConfig
}

// NewOpenAIProvider creates a new OpenAI-compatible provider
func NewOpenAIProvider(config model.LLMConfig) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("LLM API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the endpoint answers a lightweight call
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	_, err := p.client.ListModels(ctx)
	return err == nil
}

// ExtractClaims asks the model for a numbered list of verifiable claims
func (p *OpenAIProvider) ExtractClaims(ctx context.Context, content string) ([]model.Claim, error) {
	resp, err := p.complete(ctx, "You extract verifiable factual claims from text.", buildExtractionPrompt(content))
	if err != nil {
		return nil, fmt.Errorf("extract claims: %w", err)
	}
	return parseNumberedList(resp), nil
}

// SynthesizeExplanation asks the model for a JSON verification walkthrough
func (p *OpenAIProvider) SynthesizeExplanation(ctx context.Context, claim model.Claim, factChecks []model.FactCheckResult, evidence []model.EvidenceItem, score model.VerificationScore) (model.Explanation, error) {
	resp, err := p.complete(ctx, "You are a fact-checking educator.", buildExplanationPrompt(claim, factChecks, evidence, score))
	if err != nil {
		return model.Explanation{}, fmt.Errorf("synthesize explanation: %w", err)
	}

	explanation, err := parseExplanation(resp)
	if err != nil {
		return model.Explanation{}, err
	}
	explanation.Generated = true
	return explanation, nil
}

func (p *OpenAIProvider) complete(ctx context.Context, system, prompt string) (string, error) {
	chatModel := p.config.Model
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}

	maxTokens := p.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1000
	}

	timeout := p.config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// parseExplanation decodes the expected JSON shape, tolerating markdown code
// fences, and falls back to line scanning when the model ignored the format.
func parseExplanation(text string) (model.Explanation, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var parsed struct {
		Summary string   `json:"summary"`
		Steps   []string `json:"steps"`
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err == nil && parsed.Summary != "" && len(parsed.Steps) > 0 {
		return model.Explanation{Summary: parsed.Summary, Steps: parsed.Steps}, nil
	}

	// Non-JSON response: first line is the summary, numbered lines are steps
	lines := strings.Split(cleaned, "\n")
	summary := ""
	var steps []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if summary == "" {
			summary = line
			continue
		}
		if startsWithDigit(line) {
			step := strings.TrimLeft(line, "0123456789")
			step = strings.TrimLeft(step, ".) ")
			if step != "" {
				steps = append(steps, step)
			}
		}
	}

	if summary == "" || len(steps) == 0 {
		return model.Explanation{}, fmt.Errorf("unparseable explanation response")
	}
	return model.Explanation{Summary: summary, Steps: steps}, nil
}
