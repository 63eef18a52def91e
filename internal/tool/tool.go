// Package tool defines the tool model, registry, and permission system.
// Tools are the security boundary of a run: every action the model takes
// goes through a registered tool gated by the run's permission policy.
package tool

import (
	"context"
	"io"
)

// Param describes one declared tool parameter. Order is significant: the
// emitted schemas list parameters in declaration order.
type Param struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty"`
}

// Tool is the interface all capabilities implement.
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns a human-readable description of what the tool does.
	Description() string

	// Params returns the declared parameters in order.
	Params() []Param

	// RequiresPermission reports whether the tool needs interactive
	// confirmation under the ask policy.
	RequiresPermission() bool

	// Execute runs the tool with decoded arguments and the run environment.
	Execute(ctx context.Context, args map[string]any, env ExecutionEnv) (Result, error)
}

// ExecutionEnv provides the runtime environment for tool execution.
// It intentionally does not expose secrets or os.Environ.
type ExecutionEnv struct {
	// Workspace is the root directory for the current run.
	Workspace string

	// DataDir is the persistent data directory.
	DataDir string

	// Output receives user-facing tool output (the print tool). Nil
	// discards.
	Output io.Writer
}

// Result is the outcome of a tool execution. Created once per invocation
// and never mutated after return.
type Result struct {
	// Content is the output text from the tool.
	Content string

	// IsError indicates whether the output represents an error condition.
	IsError bool
}

// Spec is a function-backed Tool, the declaration shape used by built-ins
// and tests.
type Spec struct {
	ToolName        string
	ToolDescription string
	Parameters      []Param
	NeedsPermission bool
	Handler         func(ctx context.Context, args map[string]any, env ExecutionEnv) (Result, error)
}

// Name implements Tool.
func (s Spec) Name() string { return s.ToolName }

// Description implements Tool.
func (s Spec) Description() string { return s.ToolDescription }

// Params implements Tool.
func (s Spec) Params() []Param { return s.Parameters }

// RequiresPermission implements Tool.
func (s Spec) RequiresPermission() bool { return s.NeedsPermission }

// Execute implements Tool by delegating to the handler.
func (s Spec) Execute(ctx context.Context, args map[string]any, env ExecutionEnv) (Result, error) {
	return s.Handler(ctx, args, env)
}

// Interface guard.
var _ Tool = Spec{}
