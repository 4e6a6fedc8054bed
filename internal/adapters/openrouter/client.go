// Package openrouter adapts the OpenRouter completion API behind a tiny Completer seam
package openrouter

import (
	"context"
	"net/http"
	"time"

	"storyweaver/internal/platform/config"
	perr "storyweaver/internal/platform/errors"
	"storyweaver/internal/platform/logger"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultBaseURL targets OpenRouter's OpenAI-compatible surface
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// DefaultModel is used when no model is configured
const DefaultModel = "openai/gpt-3.5-turbo"

// CompletionRequest carries one generation call to the provider
type CompletionRequest struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Completer is the outbound seam the generate service depends on.
// Implementations make exactly one provider call per Complete invocation
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Config configures the OpenRouter client
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// FromConf reads client settings from an OPENROUTER_ scoped config view
func FromConf(cfg config.Conf) Config {
	return Config{
		APIKey:  cfg.MustString("API_KEY"),
		BaseURL: cfg.MayString("BASE_URL", DefaultBaseURL),
		Model:   cfg.MayString("MODEL", DefaultModel),
		Timeout: cfg.MayDuration("TIMEOUT", 120*time.Second),
	}
}

// Client wraps the go-openai client pointed at OpenRouter
type Client struct {
	api   *openai.Client
	model string
	log   logger.Logger
}

// New builds a Client from Config
func New(cfg Config) *Client {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		api:   openai.NewClientWithConfig(oc),
		model: model,
		log:   *logger.Named("openrouter"),
	}
}

// Model returns the configured model id
func (c *Client) Model() string { return c.model }

// Complete sends one chat completion request and returns the generated text.
// There is no retry here: rate limits and transient failures surface to the caller
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	})
	elapsed := time.Since(start)
	providerRequestDuration.WithLabelValues(c.model).Observe(elapsed.Seconds())

	if err != nil {
		providerRequestsTotal.WithLabelValues(c.model, "error").Inc()
		cerr := classify(err)
		c.log.Warn().
			Err(err).
			Dur("elapsed", elapsed).
			Uint16("code", uint16(perr.CodeOf(cerr))).
			Msg("completion failed")
		return "", cerr
	}

	if len(resp.Choices) == 0 {
		providerRequestsTotal.WithLabelValues(c.model, "empty").Inc()
		return "", perr.Providerf("%sempty completion", msgGeneric)
	}

	providerRequestsTotal.WithLabelValues(c.model, "ok").Inc()
	providerCompletionTokens.WithLabelValues(c.model).Observe(float64(resp.Usage.CompletionTokens))
	c.log.Debug().
		Dur("elapsed", elapsed).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Msg("completion ok")

	return resp.Choices[0].Message.Content, nil
}
