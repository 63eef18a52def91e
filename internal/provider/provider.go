// Package provider defines the provider-agnostic conversation types, the
// Provider interface implemented by each vendor adapter, and the sentinel
// errors the interpreter uses to classify failures.
package provider

import (
	"context"
	"fmt"
	"time"
)

// Provider is the interface for communicating with an LLM backend.
// Concrete implementations live in separate packages (provider/openai,
// provider/anthropic, provider/gemini).
type Provider interface {
	// Complete sends a completion request and returns the full response.
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)

	// ModelName returns the identifier of the underlying model.
	ModelName() string
}

// Config identifies and authenticates one provider backend. It is
// immutable after interpreter construction.
type Config struct {
	Kind        Kind
	Model       string
	APIKey      string
	BaseURL     string
	MaxTokens   int
	Temperature *float64
	Timeout     time.Duration
}

// Validate fails fast on a config that cannot produce a working adapter.
func (c Config) Validate() error {
	switch c.Kind {
	case KindOpenAI, KindAnthropic, KindGemini:
	default:
		return fmt.Errorf("%w: unknown provider kind %q", ErrConfig, c.Kind)
	}
	if c.Model == "" {
		return fmt.Errorf("%w: model must not be empty", ErrConfig)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%w: api_key is required for provider %s", ErrConfig, c.Kind)
	}
	return nil
}
