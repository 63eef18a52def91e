// Package builtin provides the standard tool set: file access, shell,
// web fetch, user output, and agent delegation.
package builtin

import (
	"path/filepath"

	"github.com/Dsinghbailey/eagle-lang/internal/tool"
)

// All returns the full built-in tool set.
func All() []tool.Tool {
	return []tool.Tool{
		readFileTool(),
		writeFileTool(),
		listFilesTool(),
		shellTool(),
		webTool(),
		printTool(),
		callAgentTool(),
	}
}

// Register adds every built-in tool to the registry.
func Register(r *tool.Registry) error {
	for _, t := range All() {
		if err := r.Register(t); err != nil {
			return err
		}
	}
	return nil
}

// resolvePath anchors relative paths at the workspace root. Absolute
// paths pass through unchanged.
func resolvePath(env tool.ExecutionEnv, path string) string {
	if filepath.IsAbs(path) || env.Workspace == "" {
		return path
	}
	return filepath.Join(env.Workspace, path)
}

// stringArg extracts a string argument, tolerating absence.
func stringArg(args map[string]any, name string) string {
	v, _ := args[name].(string)
	return v
}
