package engine

import (
	"time"

	"github.com/sweetpotato0/priorauth/config"
	"github.com/sweetpotato0/priorauth/prompt"
)

// Config controls behaviour of the answer pipeline. Temperatures stay low on
// purpose: consistency beats creativity in a compliance-sensitive domain.
type Config struct {
	Name string // Logical name for tracing/logging

	EnableConfidence  bool // when false, returned confidence is pinned to 1.0
	EnableActorCritic bool // toggles critic scoring and refinement
	EnableFewShot     bool // prepend canned examples to the actor prompt
	EnableReasoning   bool // route first-pass generation to the reasoning profile

	ActorTemperature  float64
	CriticTemperature float64
	RefineTemperature float64

	// ConfidenceThreshold gates refinement: an answer scoring below it with
	// concrete improvement directives gets exactly one refinement pass.
	ConfidenceThreshold float64

	FewShotExamples []prompt.Example

	now func() time.Time
}

// Option customises the pipeline configuration.
type Option func(*Config)

// WithName sets the logical pipeline name used in logs.
func WithName(name string) Option {
	return func(cfg *Config) {
		if name != "" {
			cfg.Name = name
		}
	}
}

// WithActorCritic enables or disables critic scoring and refinement. When
// disabled the pipeline returns the actor's first-pass answer unchanged.
func WithActorCritic(enabled bool) Option {
	return func(cfg *Config) {
		cfg.EnableActorCritic = enabled
	}
}

// WithConfidenceScores enables or disables confidence reporting. When
// disabled every answer carries confidence 1.0.
func WithConfidenceScores(enabled bool) Option {
	return func(cfg *Config) {
		cfg.EnableConfidence = enabled
	}
}

// WithFewShot toggles few-shot steering of the actor prompt.
func WithFewShot(enabled bool) Option {
	return func(cfg *Config) {
		cfg.EnableFewShot = enabled
	}
}

// WithFewShotExamples replaces the built-in few-shot examples.
func WithFewShotExamples(examples []prompt.Example) Option {
	return func(cfg *Config) {
		if len(examples) > 0 {
			cfg.FewShotExamples = examples
		}
	}
}

// WithReasoningModel routes first-pass generation to the reasoning profile.
func WithReasoningModel(enabled bool) Option {
	return func(cfg *Config) {
		cfg.EnableReasoning = enabled
	}
}

// WithConfidenceThreshold overrides the refinement gate.
func WithConfidenceThreshold(threshold float64) Option {
	return func(cfg *Config) {
		if threshold > 0 && threshold <= 1 {
			cfg.ConfidenceThreshold = threshold
		}
	}
}

// WithClock overrides the time source used for age computation; mainly
// useful for tests.
func WithClock(now func() time.Time) Option {
	return func(cfg *Config) {
		if now != nil {
			cfg.now = now
		}
	}
}

// WithFeatureFlags applies the environment-driven feature flags.
func WithFeatureFlags(c *config.Config) Option {
	return func(cfg *Config) {
		if c == nil {
			return
		}
		cfg.EnableConfidence = c.EnableConfidence
		cfg.EnableActorCritic = c.EnableActorCritic
		cfg.EnableFewShot = c.EnableFewShot
		cfg.EnableReasoning = c.EnableReasoning
	}
}

func defaultConfig() *Config {
	return &Config{
		Name:                "prior-auth",
		EnableConfidence:    true,
		EnableActorCritic:   true,
		EnableFewShot:       true,
		EnableReasoning:     false,
		ActorTemperature:    0.3,
		CriticTemperature:   0.2,
		RefineTemperature:   0.2,
		ConfidenceThreshold: 0.8,
		FewShotExamples:     prompt.DefaultExamples(),
		now:                 time.Now,
	}
}

func applyOptions(opts []Option) *Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
