package tool

import (
	"context"
	"encoding/json"
)

// ApprovalRequest describes a pending tool invocation awaiting user
// confirmation.
type ApprovalRequest struct {
	// ID identifies this request across log lines and prompts.
	ID string

	// ToolName is the tool the model wants to invoke.
	ToolName string

	// Description is the registered tool description, shown to the user.
	Description string

	// Arguments is the raw argument payload of the invocation.
	Arguments json.RawMessage
}

// ApprovalResponse is the user's verdict on a single invocation.
type ApprovalResponse struct {
	Approved bool
	Reason   string
}

// ApprovalRequester obtains interactive confirmation for tool invocations
// under the ask policy. Implementations may block on user input; they must
// honor context cancellation.
type ApprovalRequester interface {
	RequestApproval(ctx context.Context, req ApprovalRequest) (ApprovalResponse, error)
}

// DenyAllRequester refuses every request. It is the fallback when no
// interactive channel is available, such as a non-terminal stdin.
type DenyAllRequester struct {
	// Reason explains why approval is unavailable.
	Reason string
}

// RequestApproval implements ApprovalRequester.
func (d DenyAllRequester) RequestApproval(_ context.Context, _ ApprovalRequest) (ApprovalResponse, error) {
	reason := d.Reason
	if reason == "" {
		reason = "no interactive approval channel available"
	}
	return ApprovalResponse{Approved: false, Reason: reason}, nil
}

// Interface guard.
var _ ApprovalRequester = DenyAllRequester{}
