package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/verifysense/verifysense/internal/model"
)

const sampleResponse = `{
	"items": [
		{
			"title": "Fact check: vaccine microchip claims",
			"snippet": "There is no evidence that vaccines contain microchips.",
			"link": "https://www.reuters.com/article/fact-check",
			"pagemap": {"metatags": [{"article:published_time": "2021-05-10T12:00:00Z"}]}
		},
		{
			"title": "Some blog post",
			"snippet": "An opinion about vaccines.",
			"link": "https://randomblog.example.com/post"
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(model.SearchConfig{
		APIKey:         "test-key",
		EngineID:       "test-cx",
		Endpoint:       server.URL,
		MaxResults:     5,
		Timeout:        5 * time.Second,
		TrustedDomains: model.DefaultTrustedDomains,
	}, nil, nil)
}

func TestClient_Retrieve(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("cx"); got != "test-cx" {
			t.Errorf("Unexpected cx param: %q", got)
		}
		if got := r.URL.Query().Get("num"); got != "5" {
			t.Errorf("Unexpected num param: %q", got)
		}
		_, _ = w.Write([]byte(sampleResponse))
	})

	evidence, err := client.Retrieve(context.Background(), "Vaccines contain microchips")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(evidence) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(evidence))
	}

	first := evidence[0]
	if first.SourceDomain != "reuters.com" {
		t.Errorf("SourceDomain = %q, want reuters.com", first.SourceDomain)
	}
	if first.Reliability != model.TierHigh {
		t.Errorf("Trusted domain should be tagged high, got %q", first.Reliability)
	}
	if first.PublishedDate != "2021-05-10T12:00:00Z" {
		t.Errorf("PublishedDate = %q", first.PublishedDate)
	}

	second := evidence[1]
	if second.Reliability != model.TierMedium {
		t.Errorf("Unknown domain should be tagged medium, got %q", second.Reliability)
	}
}

func TestClient_Retrieve_MissingConfig(t *testing.T) {
	client := NewClient(model.SearchConfig{Timeout: time.Second}, nil, nil)
	if _, err := client.Retrieve(context.Background(), "claim"); err == nil {
		t.Error("Expected error when API key and engine ID are not configured")
	}
}

func TestClient_Retrieve_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend error", http.StatusInternalServerError)
	})

	if _, err := client.Retrieve(context.Background(), "claim"); err == nil {
		t.Error("Expected error for non-200 status")
	}
}

func TestExtractDomain(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.reuters.com/article/x", "reuters.com"},
		{"http://bbc.co.uk/news", "bbc.co.uk"},
		{"https://example.com:8080/page", "example.com"},
		{"http://[::1]:8080/page", "::1"},
		{"https://[2001:db8::1]/page", "2001:db8::1"},
		{"not a url", "not a url"},
	}

	for _, tc := range cases {
		if got := ExtractDomain(tc.url); got != tc.want {
			t.Errorf("ExtractDomain(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}
