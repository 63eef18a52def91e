// Package interpreter drives the agent loop: it sends the conversation to
// the provider, executes the tool calls the model emits, and repeats until
// the model answers without tools or the turn limit is hit.
package interpreter

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Dsinghbailey/eagle-lang/internal/provider"
	"github.com/Dsinghbailey/eagle-lang/internal/provider/anthropic"
	"github.com/Dsinghbailey/eagle-lang/internal/provider/gemini"
	"github.com/Dsinghbailey/eagle-lang/internal/provider/openai"
	"github.com/Dsinghbailey/eagle-lang/internal/tool"
)

// defaultMaxTurns bounds a run when the options leave the limit unset.
const defaultMaxTurns = 20

// Options configures an Interpreter. Each run gets its own Interpreter;
// nothing here is shared process-wide.
type Options struct {
	// Provider selects and configures the model backend.
	Provider provider.Config

	// Registry holds the tools available to this run.
	Registry *tool.Registry

	// Policy is the permission policy, fixed for the whole run.
	Policy tool.Policy

	// Approver handles ask-policy confirmations. Nil denies every ask.
	Approver tool.ApprovalRequester

	// Env is the execution environment handed to tools.
	Env tool.ExecutionEnv

	// MaxTurns caps assistant turns per run. Zero means the default.
	MaxTurns int

	// Retry configures transient-error retries on provider calls.
	Retry provider.RetryConfig

	// Logger receives structured run logs. Nil discards.
	Logger *slog.Logger
}

// Interpreter executes runs against a fixed provider, registry, and
// policy.
type Interpreter struct {
	provider provider.Provider
	registry *tool.Registry
	policy   tool.Policy
	approver tool.ApprovalRequester
	env      tool.ExecutionEnv
	maxTurns int
	retry    provider.RetryConfig
	logger   *slog.Logger
}

// New validates the provider configuration, builds the matching adapter,
// and returns an Interpreter. Configuration problems fail here, before
// any provider traffic.
func New(opts Options) (*Interpreter, error) {
	if err := opts.Provider.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	p, err := newProvider(opts.Provider, logger)
	if err != nil {
		return nil, err
	}
	return NewWithProvider(p, opts), nil
}

// NewWithProvider builds an Interpreter around an existing provider.
func NewWithProvider(p provider.Provider, opts Options) *Interpreter {
	registry := opts.Registry
	if registry == nil {
		registry = tool.NewRegistry()
	}
	maxTurns := opts.MaxTurns
	if maxTurns <= 0 {
		maxTurns = defaultMaxTurns
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Interpreter{
		provider: p,
		registry: registry,
		policy:   opts.Policy,
		approver: opts.Approver,
		env:      opts.Env,
		maxTurns: maxTurns,
		retry:    opts.Retry,
		logger:   logger,
	}
}

// newProvider maps a validated config to its adapter. The import lives
// here so the provider packages stay independent of each other.
func newProvider(cfg provider.Config, logger *slog.Logger) (provider.Provider, error) {
	switch cfg.Kind {
	case provider.KindOpenAI:
		return openai.New(cfg, logger), nil
	case provider.KindAnthropic:
		return anthropic.New(cfg, logger), nil
	case provider.KindGemini:
		return gemini.New(cfg, logger), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider kind %q", provider.ErrConfig, cfg.Kind)
	}
}
