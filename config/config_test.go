package config

import (
	"strings"
	"testing"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"OPENAI_API_KEY", "OPENAI_BASE_URL",
		"ENABLE_CONFIDENCE_SCORES", "ENABLE_ACTOR_CRITIC",
		"ENABLE_FEW_SHOT", "ENABLE_REASONING_MODELS",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	if !cfg.EnableConfidence || !cfg.EnableActorCritic || !cfg.EnableFewShot {
		t.Error("Expected confidence, actor-critic and few-shot enabled by default")
	}
	if cfg.EnableReasoning {
		t.Error("Expected reasoning models disabled by default")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("ENABLE_ACTOR_CRITIC", "false")
	t.Setenv("ENABLE_REASONING_MODELS", "TRUE")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := FromEnv()
	if cfg.EnableActorCritic {
		t.Error("Expected actor-critic disabled")
	}
	if !cfg.EnableReasoning {
		t.Error("Expected reasoning models enabled, flag parsing is case-insensitive")
	}
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Errorf("Expected sk-test, got %s", cfg.OpenAIAPIKey)
	}
}

func TestBackendConfigured(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"", false},
		{"your_openai_api_key_here", false},
		{"sk-real-key", true},
	}
	for _, tt := range tests {
		cfg := &Config{OpenAIAPIKey: tt.key}
		if got := cfg.BackendConfigured(); got != tt.want {
			t.Errorf("BackendConfigured(%q) = %v, expected %v", tt.key, got, tt.want)
		}
	}
}

func TestValidator(t *testing.T) {
	if err := NewValidator().RequireNonEmpty("name", "x").Err(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	err := NewValidator().
		RequireNonEmpty("first_name", "").
		RequireNonEmpty("last_name", "   ").
		ValidateOneOf("type", "numeric", "text", "boolean").
		ValidateFloatRange("confidence", 1.4, 0, 1).
		Err()
	if err == nil {
		t.Fatal("Expected accumulated errors, got nil")
	}

	msg := err.Error()
	for _, field := range []string{"first_name", "last_name", "type", "confidence"} {
		if !strings.Contains(msg, field) {
			t.Errorf("Expected error to mention %s, got %s", field, msg)
		}
	}
}
