package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_HOST", "SERVER_PORT", "LLM_PROVIDER", "LLM_MODEL", "LLM_MAX_TOKENS", "SESSION_TTL_MINUTES"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Expected default address 0.0.0.0:8080, got %s", cfg.Addr())
	}
	if cfg.LLM.Provider != "openai" {
		t.Errorf("Expected default provider openai, got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.MaxTokens != 4000 {
		t.Errorf("Expected default max tokens 4000, got %d", cfg.LLM.MaxTokens)
	}
	if cfg.Session.TTLMinutes != 60 {
		t.Errorf("Expected default session TTL 60, got %d", cfg.Session.TTLMinutes)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("LLM_MODEL", "claude-3.5-haiku")
	t.Setenv("LLM_MAX_TOKENS", "2000")
	t.Setenv("SESSION_TTL_MINUTES", "5")

	cfg := Load()

	if cfg.Addr() != "127.0.0.1:9090" {
		t.Errorf("Expected address 127.0.0.1:9090, got %s", cfg.Addr())
	}
	if cfg.LLM.Provider != "anthropic" || cfg.LLM.Model != "claude-3.5-haiku" {
		t.Errorf("Unexpected LLM config: %+v", cfg.LLM)
	}
	if cfg.LLM.MaxTokens != 2000 {
		t.Errorf("Expected max tokens 2000, got %d", cfg.LLM.MaxTokens)
	}
	if cfg.Session.TTLMinutes != 5 {
		t.Errorf("Expected session TTL 5, got %d", cfg.Session.TTLMinutes)
	}
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("LLM_MAX_TOKENS", "not-a-number")

	cfg := Load()
	if cfg.LLM.MaxTokens != 4000 {
		t.Errorf("Expected fallback to 4000 for invalid int, got %d", cfg.LLM.MaxTokens)
	}
}
