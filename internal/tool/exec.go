package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// defaultExecTimeout bounds subprocess tools that declare no timeout.
const defaultExecTimeout = 60 * time.Second

// maxExecOutput caps captured subprocess output (256 KB).
const maxExecOutput = 256 * 1024

// ExecTool is a tool backed by a subprocess declared in a directory
// manifest. Arguments are passed as a JSON object on stdin; stdout is the
// result content.
type ExecTool struct {
	manifest Manifest
	dir      string
}

// Name implements Tool.
func (e *ExecTool) Name() string { return e.manifest.Name }

// Description implements Tool.
func (e *ExecTool) Description() string { return e.manifest.Description }

// Params implements Tool.
func (e *ExecTool) Params() []Param { return e.manifest.Params }

// RequiresPermission implements Tool.
func (e *ExecTool) RequiresPermission() bool { return e.manifest.RequiresPermission }

// Execute runs the declared command with the arguments serialized as JSON
// on stdin. A non-zero exit is a tool-level failure, not a runtime error.
func (e *ExecTool) Execute(ctx context.Context, args map[string]any, env ExecutionEnv) (Result, error) {
	input, err := json.Marshal(args)
	if err != nil {
		return Result{}, fmt.Errorf("marshal arguments: %w", err)
	}

	timeout := e.manifest.Timeout()
	if timeout <= 0 {
		timeout = defaultExecTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.manifest.Command[0], e.manifest.Command[1:]...)
	cmd.Dir = e.dir
	if env.Workspace != "" {
		cmd.Dir = env.Workspace
	}
	cmd.Stdin = bytes.NewReader(input)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	out := truncateOutput(stdout.String())
	if runErr != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return Result{
				Content: fmt.Sprintf("tool %s timed out after %s", e.manifest.Name, timeout),
				IsError: true,
			}, nil
		}
		msg := strings.TrimSpace(truncateOutput(stderr.String()))
		if msg == "" {
			msg = runErr.Error()
		}
		return Result{Content: msg, IsError: true}, nil
	}

	return Result{Content: out}, nil
}

func truncateOutput(s string) string {
	if len(s) <= maxExecOutput {
		return s
	}
	return s[:maxExecOutput] + "\n[output truncated]"
}

// Interface guard.
var _ Tool = (*ExecTool)(nil)
