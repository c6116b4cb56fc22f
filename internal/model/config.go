package model

import "time"

// Config is the process-wide configuration. It is constructed once at startup
// and passed explicitly into each collaborator adapter; nothing in the core
// reads ambient global state.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http" mapstructure:"http"`
	FactCheck FactCheckConfig `yaml:"fact_check" mapstructure:"fact_check"`
	Search    SearchConfig    `yaml:"search" mapstructure:"search"`
	OCR       OCRConfig       `yaml:"ocr" mapstructure:"ocr"`
	LLM       LLMConfig       `yaml:"llm" mapstructure:"llm"`
	Limits    LimitsConfig    `yaml:"limits" mapstructure:"limits"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
}

// HTTPConfig controls outbound fetching of user-submitted URLs
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
}

// FactCheckConfig configures the fact-check lookup collaborator
type FactCheckConfig struct {
	APIKey       string        `yaml:"api_key" mapstructure:"api_key"`
	Endpoint     string        `yaml:"endpoint" mapstructure:"endpoint"`
	LanguageCode string        `yaml:"language_code" mapstructure:"language_code"`
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	RatePerSec   float64       `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
}

// SearchConfig configures the evidence-retrieval collaborator
type SearchConfig struct {
	APIKey         string        `yaml:"api_key" mapstructure:"api_key"`
	EngineID       string        `yaml:"engine_id" mapstructure:"engine_id"`
	Endpoint       string        `yaml:"endpoint" mapstructure:"endpoint"`
	MaxResults     int           `yaml:"max_results" mapstructure:"max_results"`
	Timeout        time.Duration `yaml:"timeout" mapstructure:"timeout"`
	RatePerSec     float64       `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	TrustedDomains []string      `yaml:"trusted_domains" mapstructure:"trusted_domains"`
}

// OCRConfig configures the image-to-text collaborator
type OCRConfig struct {
	APIKey   string        `yaml:"api_key" mapstructure:"api_key"`
	Endpoint string        `yaml:"endpoint" mapstructure:"endpoint"`
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// LLMConfig configures the claim-extraction / explanation collaborator
type LLMConfig struct {
	Provider  string        `yaml:"provider" mapstructure:"provider"` // "openai" or "" (heuristic fallback)
	Model     string        `yaml:"model" mapstructure:"model"`
	APIKey    string        `yaml:"api_key" mapstructure:"api_key"`
	BaseURL   string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout   time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxTokens int           `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// LimitsConfig bounds per-request fan-out
type LimitsConfig struct {
	MaxClaims    int `yaml:"max_claims" mapstructure:"max_claims"`       // Claims beyond this are dropped before fan-out
	ClaimWorkers int `yaml:"claim_workers" mapstructure:"claim_workers"` // Concurrent per-claim verifications
}

// CacheConfig controls the provider response cache
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	ListenAddr      string        `yaml:"listen_addr" mapstructure:"listen_addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// DefaultTrustedDomains is the default high-reliability source list used to
// tag evidence-item tiers. Matches well-known wire services, national outlets
// and fact-checking organizations.
var DefaultTrustedDomains = []string{
	"reuters.com",
	"apnews.com",
	"bbc.com",
	"bbc.co.uk",
	"npr.org",
	"nytimes.com",
	"washingtonpost.com",
	"wsj.com",
	"economist.com",
	"theguardian.com",
	"cnn.com",
	"nbcnews.com",
	"cbsnews.com",
	"abcnews.go.com",
	"politifact.com",
	"factcheck.org",
	"snopes.com",
	"usatoday.com",
	"time.com",
	"theatlantic.com",
}

// DefaultConfig returns the built-in defaults. API keys are intentionally
// empty; they come from the environment or the config file.
func DefaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "VerifySense/1.0 (+https://github.com/verifysense/verifysense)",
			MaxBodyBytes: 2_000_000,
		},
		FactCheck: FactCheckConfig{
			Endpoint:     "https://factchecktools.googleapis.com/v1alpha1/claims:search",
			LanguageCode: "en-US",
			Timeout:      10 * time.Second,
			RatePerSec:   5,
		},
		Search: SearchConfig{
			Endpoint:       "https://www.googleapis.com/customsearch/v1",
			MaxResults:     5,
			Timeout:        10 * time.Second,
			RatePerSec:     5,
			TrustedDomains: DefaultTrustedDomains,
		},
		OCR: OCRConfig{
			Endpoint: "https://vision.googleapis.com/v1/images:annotate",
			Timeout:  20 * time.Second,
		},
		LLM: LLMConfig{
			Provider:  "",
			Model:     "gpt-4o-mini",
			Timeout:   30 * time.Second,
			MaxTokens: 1000,
		},
		Limits: LimitsConfig{
			MaxClaims:    10,
			ClaimWorkers: 4,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             15 * time.Minute,
			CleanupInterval: 5 * time.Minute,
		},
		Server: ServerConfig{
			ListenAddr:      ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
	}
}
