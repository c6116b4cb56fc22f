package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestExecuteReportsErrors(t *testing.T) {
	var buf bytes.Buffer
	old := errWriter
	errWriter = &buf
	defer func() { errWriter = old }()

	rootCmd.SetArgs([]string{"no-such-command"})
	defer rootCmd.SetArgs(nil)

	err := Execute()
	if err == nil {
		t.Fatal("expected an error for an unknown command")
	}

	out := buf.String()
	if !strings.Contains(out, "Error:") {
		t.Errorf("failure not reported to the error writer, got %q", out)
	}
	if !strings.Contains(out, "no-such-command") {
		t.Errorf("reported error does not name the cause, got %q", out)
	}
}

func TestLoadConfigSelectsLLMWhenKeyPresent(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.LLM.Provider != "openai" {
		t.Errorf("provider = %q, want openai when a key is configured", cfg.LLM.Provider)
	}
	if cfg.LLM.APIKey != "sk-test" {
		t.Errorf("api key = %q, want value from environment", cfg.LLM.APIKey)
	}
}

func TestLoadConfigHeuristicWithoutKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.LLM.Provider != "" {
		t.Errorf("provider = %q, want empty (heuristic) without a key", cfg.LLM.Provider)
	}
}
