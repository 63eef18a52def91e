// Package anthropic implements the Anthropic-style provider adapter,
// bridging the internal conversation representation to the Anthropic
// Messages API through the official SDK.
package anthropic

import (
	"context"
	"io"
	"log/slog"

	sdkanthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/Dsinghbailey/eagle-lang/internal/provider"
)

// defaultMaxTokens is used when neither the request nor the config sets a
// max_tokens value; the Messages API requires one.
const defaultMaxTokens = 4096

// Client implements provider.Provider against the Anthropic Messages API.
type Client struct {
	config provider.Config
	client *sdkanthropic.Client
	logger *slog.Logger
}

// New creates a Client from the given config. The config must already be
// validated.
func New(cfg provider.Config, logger *slog.Logger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// Retries are handled by the interpreter's retry policy.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	client := sdkanthropic.NewClient(opts...)
	return &Client{
		config: cfg,
		client: &client,
		logger: logger,
	}
}

// Complete sends a synchronous completion request to the Messages API.
func (c *Client) Complete(ctx context.Context, req provider.CompletionRequest) (provider.CompletionResponse, error) {
	params := convertRequest(req, c.config, c.logger)

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return provider.CompletionResponse{}, mapError(err)
	}

	return convertResponse(msg), nil
}

// ModelName returns the configured model identifier.
func (c *Client) ModelName() string {
	return c.config.Model
}

// Interface guard.
var _ provider.Provider = (*Client)(nil)
