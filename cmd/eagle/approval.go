package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/Dsinghbailey/eagle-lang/internal/tool"
)

// newApprover picks the approval channel for a run: auto-approve with
// --yes, an interactive confirm on a terminal, or deny everything when
// stdin is not a terminal.
func newApprover(autoApprove bool) tool.ApprovalRequester {
	if autoApprove {
		return approveAllRequester{}
	}
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return terminalRequester{}
	}
	return tool.DenyAllRequester{Reason: "stdin is not a terminal; re-run with --yes to approve tools"}
}

type approveAllRequester struct{}

func (approveAllRequester) RequestApproval(_ context.Context, _ tool.ApprovalRequest) (tool.ApprovalResponse, error) {
	return tool.ApprovalResponse{Approved: true}, nil
}

// terminalRequester prompts on the terminal for each ambiguous tool
// call.
type terminalRequester struct{}

func (terminalRequester) RequestApproval(ctx context.Context, req tool.ApprovalRequest) (tool.ApprovalResponse, error) {
	var approved bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Allow tool %q?", req.ToolName)).
			Description(fmt.Sprintf("%s\narguments: %s", req.Description, string(req.Arguments))).
			Affirmative("Allow").
			Negative("Deny").
			Value(&approved),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return tool.ApprovalResponse{}, err
	}
	if !approved {
		return tool.ApprovalResponse{Reason: "the user declined"}, nil
	}
	return tool.ApprovalResponse{Approved: true}, nil
}

// Interface guards.
var (
	_ tool.ApprovalRequester = approveAllRequester{}
	_ tool.ApprovalRequester = terminalRequester{}
)
