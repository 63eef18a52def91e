// Package gemini implements the Google-style provider adapter over the
// Generative Language generateContent API. The API does not assign tool
// call IDs, so the adapter synthesizes opaque ones and correlates results
// by function name.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Dsinghbailey/eagle-lang/internal/provider"
)

// DefaultBaseURL is the Generative Language API endpoint used when the
// config does not override it.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

const defaultTimeout = 120 * time.Second

// maxResponseSize is the maximum response body size (10 MB).
const maxResponseSize = 10 * 1024 * 1024

// Client implements provider.Provider against the generateContent API.
type Client struct {
	config provider.Config
	http   *http.Client
	logger *slog.Logger
}

// New creates a Client from the given config. The config must already be
// validated.
func New(cfg provider.Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		config: cfg,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Complete sends a completion request and returns the full response.
func (c *Client) Complete(ctx context.Context, req provider.CompletionRequest) (provider.CompletionResponse, error) {
	gr := toGenerateRequest(req, c.config)

	body, err := json.Marshal(gr)
	if err != nil {
		return provider.CompletionResponse{}, fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.config.BaseURL, c.config.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return provider.CompletionResponse{}, fmt.Errorf("gemini: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.config.APIKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return provider.CompletionResponse{}, mapConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return provider.CompletionResponse{}, fmt.Errorf("gemini: read response: %w", err)
	}

	if httpErr := mapHTTPError(resp.StatusCode, respBody); httpErr != nil {
		return provider.CompletionResponse{}, httpErr
	}

	var gresp generateResponse
	if err := json.Unmarshal(respBody, &gresp); err != nil {
		return provider.CompletionResponse{}, fmt.Errorf("%w: gemini: %v", provider.ErrMalformedResponse, err)
	}

	return fromGenerateResponse(&gresp)
}

// ModelName returns the configured model identifier.
func (c *Client) ModelName() string {
	return c.config.Model
}

// Interface guard.
var _ provider.Provider = (*Client)(nil)
