package provider_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Dsinghbailey/eagle-lang/internal/provider"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := provider.Config{Kind: provider.KindOpenAI, Model: "m", APIKey: "k"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() error = %v for valid config", err)
	}

	tests := []struct {
		name string
		cfg  provider.Config
	}{
		{"unknown kind", provider.Config{Kind: "cohere", Model: "m", APIKey: "k"}},
		{"empty kind", provider.Config{Model: "m", APIKey: "k"}},
		{"empty model", provider.Config{Kind: provider.KindAnthropic, APIKey: "k"}},
		{"empty api key", provider.Config{Kind: provider.KindGemini, Model: "m"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.cfg.Validate(); !errors.Is(err, provider.ErrConfig) {
				t.Errorf("Validate() error = %v, want ErrConfig", err)
			}
		})
	}
}

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("context: %w", provider.ErrRateLimit)
	if !provider.IsRetryable(wrapped) {
		t.Error("wrapped rate limit should be retryable")
	}
	if !provider.IsRetryable(provider.ErrProviderDown) {
		t.Error("provider down should be retryable")
	}
	if provider.IsRetryable(provider.ErrAuth) {
		t.Error("auth errors must not be retryable")
	}
	if provider.IsRetryable(provider.ErrMalformedResponse) {
		t.Error("malformed responses must not be retryable")
	}
	if !provider.IsAuth(fmt.Errorf("x: %w", provider.ErrAuth)) {
		t.Error("wrapped auth error not detected")
	}
}

func TestTokenUsageAdd(t *testing.T) {
	t.Parallel()

	var total provider.TokenUsage
	total.Add(provider.TokenUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15})
	total.Add(provider.TokenUsage{PromptTokens: 2, CompletionTokens: 1, TotalTokens: 3})

	if total.PromptTokens != 12 || total.CompletionTokens != 6 || total.TotalTokens != 18 {
		t.Errorf("total = %+v", total)
	}
}
