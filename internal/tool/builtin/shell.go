package builtin

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/Dsinghbailey/eagle-lang/internal/tool"
)

const shellTimeout = 60 * time.Second

// maxShellOutput caps captured command output (256 KB).
const maxShellOutput = 256 * 1024

func shellTool() tool.Tool {
	return tool.Spec{
		ToolName:        "shell",
		ToolDescription: "Run a shell command in the workspace and return its combined output.",
		Parameters: []tool.Param{
			{Name: "command", Type: "string", Description: "Command line to execute", Required: true},
		},
		NeedsPermission: true,
		Handler: func(ctx context.Context, args map[string]any, env tool.ExecutionEnv) (tool.Result, error) {
			command := stringArg(args, "command")
			if strings.TrimSpace(command) == "" {
				return tool.Result{Content: "command is empty", IsError: true}, nil
			}

			ctx, cancel := context.WithTimeout(ctx, shellTimeout)
			defer cancel()

			cmd := exec.CommandContext(ctx, "sh", "-c", command)
			cmd.Dir = env.Workspace

			var out bytes.Buffer
			cmd.Stdout = &out
			cmd.Stderr = &out

			err := cmd.Run()
			output := out.String()
			if len(output) > maxShellOutput {
				output = output[:maxShellOutput] + "\n[output truncated]"
			}

			if err != nil {
				if ctx.Err() == context.DeadlineExceeded {
					return tool.Result{
						Content: fmt.Sprintf("command timed out after %s", shellTimeout),
						IsError: true,
					}, nil
				}
				msg := strings.TrimSpace(output)
				if msg == "" {
					msg = err.Error()
				} else {
					msg = fmt.Sprintf("%s\n%s", err, msg)
				}
				return tool.Result{Content: msg, IsError: true}, nil
			}
			return tool.Result{Content: output}, nil
		},
	}
}
