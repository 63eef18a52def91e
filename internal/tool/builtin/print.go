package builtin

import (
	"context"
	"fmt"

	"github.com/Dsinghbailey/eagle-lang/internal/tool"
)

func printTool() tool.Tool {
	return tool.Spec{
		ToolName:        "print",
		ToolDescription: "Show a message to the user. Output goes to the run's output stream, not back to the model.",
		Parameters: []tool.Param{
			{Name: "text", Type: "string", Description: "Message to display", Required: true},
		},
		Handler: func(_ context.Context, args map[string]any, env tool.ExecutionEnv) (tool.Result, error) {
			text := stringArg(args, "text")
			if env.Output != nil {
				if _, err := fmt.Fprintln(env.Output, text); err != nil {
					return tool.Result{Content: err.Error(), IsError: true}, nil
				}
			}
			return tool.Result{Content: "printed"}, nil
		},
	}
}
