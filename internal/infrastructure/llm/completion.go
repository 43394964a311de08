// Package llm adapts a langchaingo chat model to the ChatModel port.
package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"

	"QuoteBalance/internal/config"
	"QuoteBalance/internal/ports"
)

// Completion sends system+user messages to an OpenAI-compatible chat
// completion API. Temperature stays at zero so that repeated analyses of
// the same text are as stable as the model allows.
type Completion struct {
	model       llms.Model
	temperature float64
	maxTokens   int
	timeout     time.Duration
}

var _ ports.ChatModel = (*Completion)(nil)

// New builds the client from configuration.
func New(cfg config.OpenAIConfig) (*Completion, error) {
	model, err := openai.New(
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.APIKey),
	)
	if err != nil {
		return nil, fmt.Errorf("create openai model: %w", err)
	}
	return NewWithModel(model, cfg), nil
}

// NewWithModel wires an existing model, used by tests and alternative
// providers.
func NewWithModel(model llms.Model, cfg config.OpenAIConfig) *Completion {
	timeout := cfg.CallTimeout.Std()
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Completion{
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     timeout,
	}
}

// Complete returns the raw content of the first completion choice.
func (c *Completion) Complete(ctx context.Context, system, user string) (string, error) {
	if c == nil || c.model == nil {
		return "", fmt.Errorf("chat model is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, system),
		llms.TextParts(schema.ChatMessageTypeHuman, user),
	}

	resp, err := c.model.GenerateContent(ctx, messages,
		llms.WithTemperature(c.temperature),
		llms.WithMaxTokens(c.maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	return resp.Choices[0].Content, nil
}
