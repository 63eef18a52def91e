// Package gateway provides a local HTTP server for triggering runs and
// inspecting capabilities and history. It binds to loopback by default.
package gateway

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Dsinghbailey/eagle-lang/internal/tool"
	"github.com/Dsinghbailey/eagle-lang/internal/transcript"
)

// DefaultListen is the bind address used when the config leaves it unset.
const DefaultListen = "127.0.0.1:7410"

// RunSummary is the gateway-visible outcome of a run.
type RunSummary struct {
	RunID      string `json:"run_id"`
	Agent      string `json:"agent"`
	FinalText  string `json:"final_text"`
	Truncated  bool   `json:"truncated"`
	Turns      int    `json:"turns"`
	ToolCalls  int    `json:"tool_calls"`
	ToolErrors int    `json:"tool_errors"`
}

// RunFunc executes one run on behalf of the gateway.
type RunFunc func(ctx context.Context, agent, script string) (RunSummary, error)

// Options configures a Gateway.
type Options struct {
	// Listen is the bind address. Empty uses DefaultListen.
	Listen string

	// Registry exposes tool capabilities. Required.
	Registry *tool.Registry

	// Run executes runs for POST /runs. Nil disables the endpoint.
	Run RunFunc

	// Store serves run history. Nil disables the history endpoints.
	Store *transcript.Store

	// Logger receives request logs. Nil discards.
	Logger *slog.Logger
}

// Gateway is the HTTP server.
type Gateway struct {
	listen   string
	registry *tool.Registry
	run      RunFunc
	store    *transcript.Store
	logger   *slog.Logger
	metrics  *metrics

	server *http.Server
}

// New creates a Gateway from options.
func New(opts Options) *Gateway {
	listen := opts.Listen
	if listen == "" {
		listen = DefaultListen
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	registry := opts.Registry
	if registry == nil {
		registry = tool.NewRegistry()
	}

	return &Gateway{
		listen:   listen,
		registry: registry,
		run:      opts.Run,
		store:    opts.Store,
		logger:   logger,
		metrics:  newMetrics(),
	}
}

// Start serves until the context is cancelled, then shuts down
// gracefully.
func (g *Gateway) Start(ctx context.Context) error {
	g.server = &http.Server{
		Addr:              g.listen,
		Handler:           g.buildRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		g.logger.Info("gateway listening", "addr", g.listen)
		errCh <- g.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = g.server.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
