// Package search retrieves corroborating web evidence for a claim through the
// Google Custom Search JSON API and tags each hit with a reliability tier.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/verifysense/verifysense/internal/cache"
	"github.com/verifysense/verifysense/internal/model"
	"github.com/verifysense/verifysense/internal/worker"
)

const limiterKey = "search"

// Client queries the Custom Search endpoint
type Client struct {
	httpClient *http.Client
	config     model.SearchConfig
	limiter    *worker.Limiter
	cache      cache.Cache
	trusted    map[string]bool
}

// NewClient creates a search client. The cache may be nil.
func NewClient(config model.SearchConfig, limiter *worker.Limiter, responseCache cache.Cache) *Client {
	if limiter != nil && config.RatePerSec > 0 {
		limiter.SetRate(limiterKey, config.RatePerSec, 2)
	}

	trusted := make(map[string]bool, len(config.TrustedDomains))
	for _, domain := range config.TrustedDomains {
		trusted[strings.ToLower(domain)] = true
	}

	return &Client{
		httpClient: &http.Client{Timeout: config.Timeout},
		config:     config,
		limiter:    limiter,
		cache:      responseCache,
		trusted:    trusted,
	}
}

// apiResponse mirrors the slice of the Custom Search response we consume
type apiResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
		Pagemap struct {
			Metatags []map[string]string `json:"metatags"`
		} `json:"pagemap"`
	} `json:"items"`
}

// Retrieve searches the web for evidence about the claim. Each item's domain
// is checked against the trusted set to assign its reliability tier.
func (c *Client) Retrieve(ctx context.Context, claim model.Claim) ([]model.EvidenceItem, error) {
	if c.config.APIKey == "" || c.config.EngineID == "" {
		return nil, fmt.Errorf("search API key or engine ID not configured")
	}

	cacheKey := cache.Key("search", string(claim))
	if c.cache != nil {
		if data, found := c.cache.Get(cacheKey); found {
			var cached []model.EvidenceItem
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

	maxResults := c.config.MaxResults
	if maxResults <= 0 {
		maxResults = 5
	}

	params := url.Values{}
	params.Set("key", c.config.APIKey)
	params.Set("cx", c.config.EngineID)
	params.Set("q", string(claim))
	params.Set("num", strconv.Itoa(maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("search API status %d: %s", resp.StatusCode, string(body))
	}

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	evidence := make([]model.EvidenceItem, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		domain := ExtractDomain(item.Link)

		published := ""
		if len(item.Pagemap.Metatags) > 0 {
			published = item.Pagemap.Metatags[0]["article:published_time"]
		}

		evidence = append(evidence, model.EvidenceItem{
			Title:         item.Title,
			Snippet:       item.Snippet,
			URL:           item.Link,
			SourceDomain:  domain,
			Reliability:   c.classify(domain),
			PublishedDate: published,
		})
	}

	if c.cache != nil {
		if data, err := json.Marshal(evidence); err == nil {
			_ = c.cache.Set(cacheKey, data, 0)
		}
	}

	return evidence, nil
}

// classify maps a domain to its reliability tier: high when it is on the
// trusted list, medium otherwise
func (c *Client) classify(domain string) model.ReliabilityTier {
	if c.trusted[strings.ToLower(domain)] {
		return model.TierHigh
	}
	return model.TierMedium
}

// ExtractDomain reduces a URL to its bare domain, without scheme, port or a
// leading www
func ExtractDomain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return rawURL
	}

	// Hostname strips the port and the brackets of IPv6 literals
	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	return host
}
