package llm

import (
	"testing"
)

func TestNewLLMMissingAPIKey(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")

	_, err := NewLLM(ProviderOpenAI, "gpt-3.5-turbo")
	if err == nil {
		t.Error("Expected error when LLM_API_KEY is not set")
	}
}

func TestNewLLMUnsupportedProvider(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")

	_, err := NewLLM("not-a-provider", "some-model")
	if err == nil {
		t.Error("Expected error for unsupported provider")
	}
}

func TestNewLLMSupportedProviders(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")

	for _, provider := range []string{ProviderOpenAI, ProviderAnthropic} {
		if _, err := NewLLM(provider, "some-model"); err != nil {
			t.Errorf("Expected provider %s to construct, got error: %v", provider, err)
		}
	}
}

func TestNewOpenAIOptionsApplied(t *testing.T) {
	model, err := NewOpenAI("test-key",
		WithModel("gpt-4"),
		WithMaxTokens(1234),
		WithAPITimeout(15),
		WithTemperature(0.2),
	)
	if err != nil {
		t.Fatalf("Failed to create OpenAI client: %v", err)
	}

	if model.modelName != "gpt-4" {
		t.Errorf("Expected model gpt-4, got %s", model.modelName)
	}
	if model.maxTokens != 1234 {
		t.Errorf("Expected max tokens 1234, got %d", model.maxTokens)
	}
	if model.apiTimeout != 15 {
		t.Errorf("Expected timeout 15, got %d", model.apiTimeout)
	}
	if model.temperature != 0.2 {
		t.Errorf("Expected temperature 0.2, got %f", model.temperature)
	}
}

func TestNewOpenAIEmptyKey(t *testing.T) {
	if _, err := NewOpenAI(""); err == nil {
		t.Error("Expected error for empty API key")
	}
}

func TestNewAnthropicOptionsApplied(t *testing.T) {
	model, err := NewAnthropic("test-key",
		WithModel("claude-3.5-haiku"),
		WithMaxTokens(2000),
		WithAPITimeout(20),
	)
	if err != nil {
		t.Fatalf("Failed to create Anthropic client: %v", err)
	}

	if model.modelName != "claude-3.5-haiku" {
		t.Errorf("Expected model claude-3.5-haiku, got %s", model.modelName)
	}
	if model.maxTokens != 2000 {
		t.Errorf("Expected max tokens 2000, got %d", model.maxTokens)
	}
	if model.apiTimeout != 20 {
		t.Errorf("Expected timeout 20, got %d", model.apiTimeout)
	}
}
