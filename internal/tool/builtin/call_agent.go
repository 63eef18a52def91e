package builtin

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/Dsinghbailey/eagle-lang/internal/tool"
)

const callAgentTimeout = 10 * time.Minute

// callAgentTool delegates a prompt to another configured agent. The
// delegate runs as a child process so each run keeps its own provider,
// registry, and policy.
func callAgentTool() tool.Tool {
	return tool.Spec{
		ToolName:        "call_agent",
		ToolDescription: "Delegate a prompt to another configured agent and return its final answer.",
		Parameters: []tool.Param{
			{Name: "agent", Type: "string", Description: "Name of the agent to call", Required: true},
			{Name: "prompt", Type: "string", Description: "Prompt to send to the agent", Required: true},
		},
		NeedsPermission: true,
		Handler: func(ctx context.Context, args map[string]any, env tool.ExecutionEnv) (tool.Result, error) {
			agent := stringArg(args, "agent")
			prompt := stringArg(args, "prompt")
			if agent == "" || prompt == "" {
				return tool.Result{Content: "agent and prompt are both required", IsError: true}, nil
			}

			self, err := os.Executable()
			if err != nil {
				return tool.Result{}, fmt.Errorf("locate executable: %w", err)
			}

			ctx, cancel := context.WithTimeout(ctx, callAgentTimeout)
			defer cancel()

			cmd := exec.CommandContext(ctx, self, "run", "--agent", agent, "--prompt", prompt)
			cmd.Dir = env.Workspace

			var stdout, stderr bytes.Buffer
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr

			if err := cmd.Run(); err != nil {
				msg := strings.TrimSpace(stderr.String())
				if msg == "" {
					msg = err.Error()
				}
				return tool.Result{
					Content: fmt.Sprintf("agent %s failed: %s", agent, msg),
					IsError: true,
				}, nil
			}
			return tool.Result{Content: strings.TrimSpace(stdout.String())}, nil
		},
	}
}
