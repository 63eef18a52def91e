// Package openai implements the OpenAI-style provider adapter over the
// Chat Completions API. OpenRouter and other compatible backends are
// reached through the same adapter with a different base URL.
package openai

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Dsinghbailey/eagle-lang/internal/provider"
)

// DefaultBaseURL is the OpenAI API endpoint used when the config does not
// override it.
const DefaultBaseURL = "https://api.openai.com/v1"

const defaultTimeout = 120 * time.Second

// Client implements provider.Provider against a Chat Completions endpoint.
type Client struct {
	config provider.Config
	http   *http.Client
	logger *slog.Logger
}

// New creates a Client from the given config. The config must already be
// validated; New only fills adapter-level defaults.
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

// ModelName returns the configured model identifier.
func (c *Client) ModelName() string {
	return c.config.Model
}

// Interface guard.
var _ provider.Provider = (*Client)(nil)
