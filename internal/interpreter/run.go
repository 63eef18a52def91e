package interpreter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Dsinghbailey/eagle-lang/internal/provider"
	"github.com/Dsinghbailey/eagle-lang/internal/tool"
)

// ErrRunLimit is returned when a run reaches the turn limit without the
// model producing a final answer.
var ErrRunLimit = errors.New("run turn limit exceeded")

// Request describes one run.
type Request struct {
	// SystemPrompt is the assembled system prompt. Empty omits the
	// system message.
	SystemPrompt string

	// UserContent is the initial user message.
	UserContent string
}

// Result is the outcome of a completed run.
type Result struct {
	// RunID uniquely identifies the run.
	RunID string

	// FinalText is the model's last assistant text.
	FinalText string

	// Transcript is the full conversation, in order.
	Transcript []provider.Message

	// Truncated reports that the final turn hit the provider's length
	// limit.
	Truncated bool

	// Turns is the number of assistant turns consumed.
	Turns int

	// Usage is the accumulated token usage across all provider calls.
	Usage provider.TokenUsage

	// ToolCalls records every tool invocation in execution order.
	ToolCalls []ToolCallRecord
}

// ToolCallRecord captures one tool invocation and its outcome.
type ToolCallRecord struct {
	Turn    int
	ID      string
	Name    string
	IsError bool
}

// Run executes the agent loop until the model stops calling tools, the
// turn limit is reached, or a fatal error occurs. Every tool call the
// model emits receives exactly one result before the next provider call.
func (i *Interpreter) Run(ctx context.Context, req Request) (Result, error) {
	res := Result{RunID: uuid.NewString()}
	logger := i.logger.With("run_id", res.RunID, "model", i.provider.ModelName())

	var msgs []provider.Message
	if req.SystemPrompt != "" {
		msgs = append(msgs, provider.Message{Role: provider.MessageRoleSystem, Content: req.SystemPrompt})
	}
	msgs = append(msgs, provider.Message{Role: provider.MessageRoleUser, Content: req.UserContent})

	logger.Info("run started", "max_turns", i.maxTurns)

	for turn := 1; turn <= i.maxTurns; turn++ {
		if err := ctx.Err(); err != nil {
			res.Transcript = msgs
			return res, err
		}

		resp, err := provider.CompleteWithRetry(ctx, i.provider, provider.CompletionRequest{
			Messages: msgs,
			Tools:    i.registry.Definitions(),
		}, i.retry)
		if errors.Is(err, provider.ErrMalformedResponse) {
			// A response the adapter could not decode costs a turn but
			// not the run: the model sees a note and may recover.
			res.Turns = turn
			msgs = append(msgs,
				provider.Message{Role: provider.MessageRoleAssistant},
				provider.Message{
					Role:    provider.MessageRoleUser,
					Content: "[note] the previous model response could not be decoded; please answer again",
				},
			)
			logger.Warn("malformed provider response absorbed", "turn", turn, "error", err)
			continue
		}
		if err != nil {
			res.Transcript = msgs
			logger.Error("provider call failed", "turn", turn, "error", err)
			return res, err
		}

		res.Turns = turn
		res.Usage.Add(resp.Usage)

		if resp.FinishReason == provider.FinishReasonLength {
			// A truncated turn may carry partial tool calls; dropping
			// them keeps every stored call paired with a result.
			msgs = append(msgs, provider.Message{
				Role:    provider.MessageRoleAssistant,
				Content: resp.Content,
			})
			res.Transcript = msgs
			res.FinalText = resp.Content
			res.Truncated = true
			logger.Warn("run truncated by length limit", "turn", turn)
			return res, nil
		}

		assistant := provider.Message{
			Role:      provider.MessageRoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		}
		msgs = append(msgs, assistant)

		if len(resp.ToolCalls) == 0 {
			res.Transcript = msgs
			res.FinalText = resp.Content
			logger.Info("run completed", "turns", turn, "total_tokens", res.Usage.TotalTokens)
			return res, nil
		}

		// Tool calls run sequentially in the order the model emitted
		// them.
		for _, tc := range resp.ToolCalls {
			if err := ctx.Err(); err != nil {
				res.Transcript = msgs
				return res, err
			}
			result := i.executeToolCall(ctx, logger, tc)
			res.ToolCalls = append(res.ToolCalls, ToolCallRecord{
				Turn:    turn,
				ID:      tc.ID,
				Name:    tc.Name,
				IsError: result.IsError,
			})
			msgs = append(msgs, provider.Message{
				Role:    provider.MessageRoleTool,
				Name:    tc.Name,
				ToolID:  tc.ID,
				Content: result.Content,
				IsError: result.IsError,
			})
		}
	}

	res.Transcript = msgs
	logger.Error("run exceeded turn limit", "max_turns", i.maxTurns)
	return res, fmt.Errorf("%w: %d turns", ErrRunLimit, i.maxTurns)
}

// executeToolCall resolves, gates, validates, and runs one tool call.
// Every failure becomes an error result fed back to the model; only the
// surrounding loop decides what is fatal.
func (i *Interpreter) executeToolCall(ctx context.Context, logger *slog.Logger, tc provider.ToolCall) tool.Result {
	t, err := i.registry.Get(tc.Name)
	if err != nil {
		logger.Warn("tool call for unknown tool", "tool", tc.Name)
		return tool.Result{
			Content: fmt.Sprintf("tool %q is not available", tc.Name),
			IsError: true,
		}
	}

	args, err := tool.DecodeArgs(tc.Arguments)
	if err != nil {
		return tool.Result{Content: err.Error(), IsError: true}
	}

	switch tool.Decide(i.policy, tc.Name, t.RequiresPermission()) {
	case tool.DecisionDeny:
		logger.Info("tool call denied by policy", "tool", tc.Name)
		return tool.Result{
			Content: fmt.Sprintf("tool %q was denied by the permission policy", tc.Name),
			IsError: true,
		}
	case tool.DecisionAsk:
		verdict := i.requestApproval(ctx, t, tc)
		if !verdict.Approved {
			reason := verdict.Reason
			if reason == "" {
				reason = "the user declined"
			}
			logger.Info("tool call declined", "tool", tc.Name, "reason", reason)
			return tool.Result{
				Content: fmt.Sprintf("tool %q was not approved: %s", tc.Name, reason),
				IsError: true,
			}
		}
	}

	if err := tool.ValidateArgs(t.Params(), args); err != nil {
		return tool.Result{Content: err.Error(), IsError: true}
	}

	result, err := t.Execute(ctx, args, i.env)
	if err != nil {
		logger.Warn("tool execution failed", "tool", tc.Name, "error", err)
		return tool.Result{
			Content: fmt.Sprintf("tool %q failed: %s", tc.Name, err),
			IsError: true,
		}
	}
	logger.Info("tool executed", "tool", tc.Name, "is_error", result.IsError)
	return result
}

// requestApproval consults the approver, denying when none is configured
// or when the request itself fails.
func (i *Interpreter) requestApproval(ctx context.Context, t tool.Tool, tc provider.ToolCall) tool.ApprovalResponse {
	if i.approver == nil {
		return tool.ApprovalResponse{Reason: "no approval channel configured"}
	}
	verdict, err := i.approver.RequestApproval(ctx, tool.ApprovalRequest{
		ID:          uuid.NewString(),
		ToolName:    tc.Name,
		Description: t.Description(),
		Arguments:   tc.Arguments,
	})
	if err != nil {
		return tool.ApprovalResponse{Reason: fmt.Sprintf("approval failed: %s", err)}
	}
	return verdict
}
