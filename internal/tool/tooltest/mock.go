// Package tooltest provides mock tools for testing.
package tooltest

import (
	"context"
	"sync"

	"github.com/Dsinghbailey/eagle-lang/internal/tool"
)

// MockTool is a configurable Tool implementation for tests. It records
// every execution.
type MockTool struct {
	ToolName        string
	ToolDescription string
	Parameters      []tool.Param
	NeedsPermission bool

	// ExecuteFunc handles execution when set. Otherwise Output and Err
	// are returned.
	ExecuteFunc func(ctx context.Context, args map[string]any, env tool.ExecutionEnv) (tool.Result, error)
	Output      tool.Result
	Err         error

	mu    sync.Mutex
	calls []map[string]any
}

// New creates a MockTool with sensible defaults.
func New(name string) *MockTool {
	return &MockTool{
		ToolName:        name,
		ToolDescription: "mock tool " + name,
		Output:          tool.Result{Content: "ok"},
	}
}

// Name implements tool.Tool.
func (m *MockTool) Name() string { return m.ToolName }

// Description implements tool.Tool.
func (m *MockTool) Description() string { return m.ToolDescription }

// Params implements tool.Tool.
func (m *MockTool) Params() []tool.Param { return m.Parameters }

// RequiresPermission implements tool.Tool.
func (m *MockTool) RequiresPermission() bool { return m.NeedsPermission }

// Execute implements tool.Tool, recording the call.
func (m *MockTool) Execute(ctx context.Context, args map[string]any, env tool.ExecutionEnv) (tool.Result, error) {
	m.mu.Lock()
	m.calls = append(m.calls, args)
	m.mu.Unlock()

	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, args, env)
	}
	return m.Output, m.Err
}

// Calls returns the recorded argument maps in execution order.
func (m *MockTool) Calls() []map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]map[string]any, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns the number of executions.
func (m *MockTool) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Interface guard.
var _ tool.Tool = (*MockTool)(nil)

// StaticRequester answers every approval request with a fixed verdict.
type StaticRequester struct {
	Approved bool
	Reason   string

	mu       sync.Mutex
	requests []tool.ApprovalRequest
}

// RequestApproval implements tool.ApprovalRequester.
func (s *StaticRequester) RequestApproval(_ context.Context, req tool.ApprovalRequest) (tool.ApprovalResponse, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	return tool.ApprovalResponse{Approved: s.Approved, Reason: s.Reason}, nil
}

// Requests returns the recorded approval requests.
func (s *StaticRequester) Requests() []tool.ApprovalRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]tool.ApprovalRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// Interface guard.
var _ tool.ApprovalRequester = (*StaticRequester)(nil)
