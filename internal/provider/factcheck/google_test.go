package factcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/verifysense/verifysense/internal/cache"
	"github.com/verifysense/verifysense/internal/model"
)

const sampleResponse = `{
	"claims": [
		{
			"text": "Vaccines contain microchips",
			"claimant": "Social media post",
			"claimDate": "2021-05-01T00:00:00Z",
			"claimReview": [
				{
					"publisher": {"name": "PolitiFact", "site": "politifact.com"},
					"url": "https://politifact.com/review",
					"title": "No, vaccines do not contain microchips",
					"textualRating": "False"
				}
			]
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(model.FactCheckConfig{
		APIKey:       "test-key",
		Endpoint:     server.URL,
		LanguageCode: "en-US",
		Timeout:      5 * time.Second,
	}, nil, nil)
	return client, server
}

func TestClient_Lookup(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "Vaccines contain microchips" {
			t.Errorf("Unexpected query param: %q", got)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("Unexpected key param: %q", got)
		}
		_, _ = w.Write([]byte(sampleResponse))
	})

	results, err := client.Lookup(context.Background(), "Vaccines contain microchips")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}

	result := results[0]
	if result.PublisherName != "PolitiFact" {
		t.Errorf("PublisherName = %q", result.PublisherName)
	}
	if result.Rating != "False" {
		t.Errorf("Rating = %q", result.Rating)
	}
	if result.RatingExplanation != "No, vaccines do not contain microchips" {
		t.Errorf("RatingExplanation = %q", result.RatingExplanation)
	}
	if result.SourceURL != "https://politifact.com/review" {
		t.Errorf("SourceURL = %q", result.SourceURL)
	}
}

func TestClient_Lookup_NoMatches(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	results, err := client.Lookup(context.Background(), "some obscure claim")
	if err != nil {
		t.Fatalf("Expected no error for empty response, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestClient_Lookup_APIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	if _, err := client.Lookup(context.Background(), "claim"); err == nil {
		t.Error("Expected error for non-200 status")
	}
}

func TestClient_Lookup_MissingKey(t *testing.T) {
	client := NewClient(model.FactCheckConfig{Timeout: time.Second}, nil, nil)
	if _, err := client.Lookup(context.Background(), "claim"); err == nil {
		t.Error("Expected error when API key is not configured")
	}
}

func TestClient_Lookup_CacheHit(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := NewClient(model.FactCheckConfig{
		APIKey:   "test-key",
		Endpoint: server.URL,
		Timeout:  5 * time.Second,
	}, nil, cache.NewMemory(time.Minute, time.Minute))

	for i := 0; i < 3; i++ {
		if _, err := client.Lookup(context.Background(), "Vaccines contain microchips"); err != nil {
			t.Fatalf("Lookup %d failed: %v", i, err)
		}
	}

	if calls != 1 {
		t.Errorf("Expected 1 upstream call with warm cache, got %d", calls)
	}
}
