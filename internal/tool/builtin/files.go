package builtin

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Dsinghbailey/eagle-lang/internal/tool"
)

// maxReadSize caps read_file output (1 MB).
const maxReadSize = 1 * 1024 * 1024

func readFileTool() tool.Tool {
	return tool.Spec{
		ToolName:        "read_file",
		ToolDescription: "Read the contents of a text file. Relative paths resolve from the workspace root.",
		Parameters: []tool.Param{
			{Name: "path", Type: "string", Description: "Path of the file to read", Required: true},
		},
		Handler: func(_ context.Context, args map[string]any, env tool.ExecutionEnv) (tool.Result, error) {
			path := resolvePath(env, stringArg(args, "path"))

			info, err := os.Stat(path)
			if err != nil {
				return tool.Result{Content: err.Error(), IsError: true}, nil
			}
			if info.IsDir() {
				return tool.Result{Content: fmt.Sprintf("%s is a directory", path), IsError: true}, nil
			}
			if info.Size() > maxReadSize {
				return tool.Result{
					Content: fmt.Sprintf("%s is %d bytes, exceeds the %d byte limit", path, info.Size(), maxReadSize),
					IsError: true,
				}, nil
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return tool.Result{Content: err.Error(), IsError: true}, nil
			}
			return tool.Result{Content: string(data)}, nil
		},
	}
}

func writeFileTool() tool.Tool {
	return tool.Spec{
		ToolName:        "write_file",
		ToolDescription: "Write content to a file, creating parent directories as needed. Overwrites existing files.",
		Parameters: []tool.Param{
			{Name: "path", Type: "string", Description: "Path of the file to write", Required: true},
			{Name: "content", Type: "string", Description: "Content to write", Required: true},
		},
		NeedsPermission: true,
		Handler: func(_ context.Context, args map[string]any, env tool.ExecutionEnv) (tool.Result, error) {
			path := resolvePath(env, stringArg(args, "path"))
			content := stringArg(args, "content")

			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return tool.Result{Content: err.Error(), IsError: true}, nil
			}
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return tool.Result{Content: err.Error(), IsError: true}, nil
			}
			return tool.Result{Content: fmt.Sprintf("wrote %d bytes to %s", len(content), path)}, nil
		},
	}
}

func listFilesTool() tool.Tool {
	return tool.Spec{
		ToolName:        "list_files",
		ToolDescription: "List the entries of a directory. Defaults to the workspace root.",
		Parameters: []tool.Param{
			{Name: "path", Type: "string", Description: "Directory to list"},
		},
		Handler: func(_ context.Context, args map[string]any, env tool.ExecutionEnv) (tool.Result, error) {
			path := stringArg(args, "path")
			if path == "" {
				path = "."
			}
			path = resolvePath(env, path)

			entries, err := os.ReadDir(path)
			if err != nil {
				return tool.Result{Content: err.Error(), IsError: true}, nil
			}

			names := make([]string, 0, len(entries))
			for _, entry := range entries {
				name := entry.Name()
				if entry.IsDir() {
					name += "/"
				}
				names = append(names, name)
			}
			sort.Strings(names)
			return tool.Result{Content: strings.Join(names, "\n")}, nil
		},
	}
}
