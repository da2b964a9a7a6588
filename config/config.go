package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config groups the environment-driven settings for the answer engine.
// Feature flags keep the env names used by the operational tooling so existing
// deployments keep working.
type Config struct {
	// OpenAI backend. An empty or placeholder APIKey means no live backend is
	// configured and the engine runs in simulation mode.
	OpenAIAPIKey  string
	OpenAIBaseURL string

	// Feature flags for the answer pipeline.
	EnableConfidence  bool // ENABLE_CONFIDENCE_SCORES
	EnableActorCritic bool // ENABLE_ACTOR_CRITIC
	EnableFewShot     bool // ENABLE_FEW_SHOT
	EnableReasoning   bool // ENABLE_REASONING_MODELS
}

// FromEnv loads configuration from environment variables with defaults
// matching the production deployment.
func FromEnv() *Config {
	return &Config{
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", ""),
		EnableConfidence:  getEnvBool("ENABLE_CONFIDENCE_SCORES", true),
		EnableActorCritic: getEnvBool("ENABLE_ACTOR_CRITIC", true),
		EnableFewShot:     getEnvBool("ENABLE_FEW_SHOT", true),
		EnableReasoning:   getEnvBool("ENABLE_REASONING_MODELS", false),
	}
}

// BackendConfigured reports whether a usable OpenAI credential is present.
// The placeholder value from the sample env file counts as unconfigured.
func (c *Config) BackendConfigured() bool {
	return c.OpenAIAPIKey != "" && c.OpenAIAPIKey != "your_openai_api_key_here"
}

// Helper functions for environment variable reading

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
