package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/param"
	"github.com/openai/openai-go/v3/shared"
	"github.com/sweetpotato0/priorauth/errors"
	"github.com/sweetpotato0/priorauth/message"
	"github.com/sweetpotato0/priorauth/provider"
)

// Config holds OpenAI provider configuration
type Config struct {
	APIKey    string
	BaseURL   string
	MaxTokens int64
	// Models maps request profiles to concrete model names; missing entries
	// fall back to DefaultConfig values.
	Models map[provider.Profile]string
}

// WithAPIKey set api key.
func (cfg *Config) WithAPIKey(apiKey string) *Config {
	cfg.APIKey = apiKey
	return cfg
}

// WithBaseURL set BaseURL.
func (cfg *Config) WithBaseURL(url string) *Config {
	cfg.BaseURL = url
	return cfg
}

// WithModel overrides the model used for one profile.
func (cfg *Config) WithModel(profile provider.Profile, model string) *Config {
	if cfg.Models == nil {
		cfg.Models = make(map[provider.Profile]string)
	}
	cfg.Models[profile] = model
	return cfg
}

// DefaultConfig returns the default model mapping per profile.
func DefaultConfig() *Config {
	return &Config{
		MaxTokens: 2000,
		Models: map[provider.Profile]string{
			provider.ProfileStandard:  "gpt-4-turbo-preview",
			provider.ProfileReasoning: "o1-preview",
			provider.ProfileCritic:    "gpt-4-turbo-preview",
			provider.ProfileFast:      "gpt-3.5-turbo",
		},
	}
}

// Provider implements provider.Completion backed by the OpenAI chat API with
// JSON response formatting enforced on every call.
type Provider struct {
	config *Config
	client openai.Client
}

// New creates an OpenAI-backed completion provider. It fails with
// ErrBackendUnavailable when no API key is configured so callers can decide
// to run in simulation mode instead.
func New(config *Config) (*Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.APIKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY is not set", errors.ErrBackendUnavailable)
	}

	options := []option.RequestOption{option.WithAPIKey(config.APIKey)}
	if config.BaseURL != "" {
		options = append(options, option.WithBaseURL(config.BaseURL))
	}

	return &Provider{
		config: config,
		client: openai.NewClient(options...),
	}, nil
}

// Complete implements provider.Completion.
func (p *Provider) Complete(ctx context.Context, req *provider.Request) (string, error) {
	if req == nil {
		return "", fmt.Errorf("completion request cannot be nil")
	}

	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, msg := range req.Messages {
		switch msg.Role {
		case message.RoleSystem:
			msgs = append(msgs, openai.SystemMessage(msg.Text()))
		case message.RoleUser:
			msgs = append(msgs, openai.UserMessage(msg.Text()))
		case message.RoleAssistant:
			msgs = append(msgs, openai.AssistantMessage(msg.Text()))
		}
	}

	params := openai.ChatCompletionNewParams{
		Messages: msgs,
		Model:    openai.ChatModel(p.model(req.Profile)),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}
	if req.Temperature > 0 {
		params.Temperature = param.NewOpt(req.Temperature)
	}
	if p.config.MaxTokens > 0 {
		params.MaxCompletionTokens = param.NewOpt(p.config.MaxTokens)
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", errors.ErrMalformedResponse)
	}
	return completion.Choices[0].Message.Content, nil
}

func (p *Provider) model(profile provider.Profile) string {
	if m, ok := p.config.Models[profile]; ok && m != "" {
		return m
	}
	if m, ok := DefaultConfig().Models[profile]; ok {
		return m
	}
	return DefaultConfig().Models[provider.ProfileStandard]
}
