// Package factcheck looks claims up in the Google Fact Check Tools API.
package factcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/verifysense/verifysense/internal/cache"
	"github.com/verifysense/verifysense/internal/model"
	"github.com/verifysense/verifysense/internal/worker"
)

const limiterKey = "factcheck"

// Client queries the claims:search endpoint. Responses are cached per claim
// so repeated verifications inside the TTL window do not burn API quota.
type Client struct {
	httpClient *http.Client
	config     model.FactCheckConfig
	limiter    *worker.Limiter
	cache      cache.Cache
}

// NewClient creates a fact-check client. The cache may be nil.
func NewClient(config model.FactCheckConfig, limiter *worker.Limiter, responseCache cache.Cache) *Client {
	if limiter != nil && config.RatePerSec > 0 {
		limiter.SetRate(limiterKey, config.RatePerSec, 2)
	}

	return &Client{
		httpClient: &http.Client{Timeout: config.Timeout},
		config:     config,
		limiter:    limiter,
		cache:      responseCache,
	}
}

// apiResponse mirrors the slice of the Fact Check Tools response we consume
type apiResponse struct {
	Claims []struct {
		Text        string `json:"text"`
		Claimant    string `json:"claimant"`
		ClaimDate   string `json:"claimDate"`
		ClaimReview []struct {
			Publisher struct {
				Name string `json:"name"`
				Site string `json:"site"`
			} `json:"publisher"`
			URL           string `json:"url"`
			Title         string `json:"title"`
			TextualRating string `json:"textualRating"`
		} `json:"claimReview"`
	} `json:"claims"`
}

// Lookup searches published fact-checks matching the claim. An empty result
// means no reviewer has covered the claim, which is a perfectly normal state.
func (c *Client) Lookup(ctx context.Context, claim model.Claim) ([]model.FactCheckResult, error) {
	if c.config.APIKey == "" {
		return nil, fmt.Errorf("fact-check API key not configured")
	}

	cacheKey := cache.Key("factcheck", string(claim))
	if c.cache != nil {
		if data, found := c.cache.Get(cacheKey); found {
			var cached []model.FactCheckResult
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, limiterKey); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	params := url.Values{}
	params.Set("key", c.config.APIKey)
	params.Set("query", string(claim))
	params.Set("languageCode", c.config.LanguageCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fact-check request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fact-check API status %d: %s", resp.StatusCode, string(body))
	}

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	results := make([]model.FactCheckResult, 0, len(parsed.Claims))
	for _, item := range parsed.Claims {
		result := model.FactCheckResult{
			ClaimReviewed: item.Text,
			ClaimDate:     item.ClaimDate,
		}
		if len(item.ClaimReview) > 0 {
			review := item.ClaimReview[0]
			result.PublisherName = review.Publisher.Name
			result.PublisherSite = review.Publisher.Site
			result.Rating = review.TextualRating
			result.RatingExplanation = review.Title
			result.SourceURL = review.URL
		}
		results = append(results, result)
	}

	if c.cache != nil {
		if data, err := json.Marshal(results); err == nil {
			_ = c.cache.Set(cacheKey, data, 0)
		}
	}

	return results, nil
}
