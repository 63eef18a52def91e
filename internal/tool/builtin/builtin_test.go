package builtin_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/Dsinghbailey/eagle-lang/internal/tool"
	"github.com/Dsinghbailey/eagle-lang/internal/tool/builtin"
)

func getTool(t *testing.T, name string) tool.Tool {
	t.Helper()
	r := tool.NewRegistry()
	if err := builtin.Register(r); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	bt, err := r.Get(name)
	if err != nil {
		t.Fatalf("Get(%q) error = %v", name, err)
	}
	return bt
}

func TestRegisterAll(t *testing.T) {
	t.Parallel()

	r := tool.NewRegistry()
	if err := builtin.Register(r); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	want := []string{"call_agent", "list_files", "print", "read_file", "shell", "web", "write_file"}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPermissionFlags(t *testing.T) {
	t.Parallel()

	needs := map[string]bool{
		"read_file":  false,
		"list_files": false,
		"web":        false,
		"print":      false,
		"write_file": true,
		"shell":      true,
		"call_agent": true,
	}
	for name, want := range needs {
		if got := getTool(t, name).RequiresPermission(); got != want {
			t.Errorf("%s.RequiresPermission() = %v, want %v", name, got, want)
		}
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	if err := os.WriteFile(filepath.Join(ws, "note.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	res, err := getTool(t, "read_file").Execute(context.Background(),
		map[string]any{"path": "note.txt"}, tool.ExecutionEnv{Workspace: ws})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("IsError = true, content: %s", res.Content)
	}
	if res.Content != "hello" {
		t.Errorf("Content = %q, want %q", res.Content, "hello")
	}
}

func TestReadFileMissing(t *testing.T) {
	t.Parallel()

	res, err := getTool(t, "read_file").Execute(context.Background(),
		map[string]any{"path": "absent.txt"}, tool.ExecutionEnv{Workspace: t.TempDir()})
	if err != nil {
		t.Fatalf("Execute() error = %v, want tool-level failure in result", err)
	}
	if !res.IsError {
		t.Error("IsError = false, want true")
	}
}

func TestReadFileDirectory(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	res, err := getTool(t, "read_file").Execute(context.Background(),
		map[string]any{"path": "."}, tool.ExecutionEnv{Workspace: ws})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !res.IsError {
		t.Error("IsError = false, want true for a directory")
	}
}

func TestWriteFileCreatesParents(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	res, err := getTool(t, "write_file").Execute(context.Background(),
		map[string]any{"path": "sub/dir/out.txt", "content": "data"},
		tool.ExecutionEnv{Workspace: ws})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("IsError = true, content: %s", res.Content)
	}

	got, err := os.ReadFile(filepath.Join(ws, "sub", "dir", "out.txt"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "data" {
		t.Errorf("file content = %q, want %q", got, "data")
	}
}

func TestListFiles(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	if err := os.WriteFile(filepath.Join(ws, "b.txt"), nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.Mkdir(filepath.Join(ws, "a"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	res, err := getTool(t, "list_files").Execute(context.Background(),
		map[string]any{}, tool.ExecutionEnv{Workspace: ws})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("IsError = true, content: %s", res.Content)
	}
	if res.Content != "a/\nb.txt" {
		t.Errorf("Content = %q, want %q", res.Content, "a/\nb.txt")
	}
}

func TestShell(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX sh")
	}

	res, err := getTool(t, "shell").Execute(context.Background(),
		map[string]any{"command": "echo shell-ok"}, tool.ExecutionEnv{Workspace: t.TempDir()})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("IsError = true, content: %s", res.Content)
	}
	if strings.TrimSpace(res.Content) != "shell-ok" {
		t.Errorf("Content = %q, want %q", res.Content, "shell-ok")
	}
}

func TestShellFailure(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX sh")
	}

	res, err := getTool(t, "shell").Execute(context.Background(),
		map[string]any{"command": "exit 7"}, tool.ExecutionEnv{Workspace: t.TempDir()})
	if err != nil {
		t.Fatalf("Execute() error = %v, want tool-level failure in result", err)
	}
	if !res.IsError {
		t.Error("IsError = false, want true")
	}
}

func TestShellEmptyCommand(t *testing.T) {
	t.Parallel()

	res, err := getTool(t, "shell").Execute(context.Background(),
		map[string]any{"command": "  "}, tool.ExecutionEnv{})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !res.IsError {
		t.Error("IsError = false, want true for empty command")
	}
}

func TestWebRejectsUnsafeURLs(t *testing.T) {
	t.Parallel()

	urls := []string{
		"file:///etc/passwd",
		"ftp://example.com/file",
		"http://localhost:8080/admin",
		"http://127.0.0.1/",
		"http://10.0.0.5/internal",
		"http://192.168.1.1/",
		"http://0.0.0.0/",
		"http:///nohost",
	}
	wt := getTool(t, "web")
	for _, u := range urls {
		res, err := wt.Execute(context.Background(), map[string]any{"url": u}, tool.ExecutionEnv{})
		if err != nil {
			t.Fatalf("Execute(%q) error = %v", u, err)
		}
		if !res.IsError {
			t.Errorf("Execute(%q) IsError = false, want true", u)
		}
	}
}

func TestPrint(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	res, err := getTool(t, "print").Execute(context.Background(),
		map[string]any{"text": "status update"}, tool.ExecutionEnv{Output: &out})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("IsError = true, content: %s", res.Content)
	}
	if out.String() != "status update\n" {
		t.Errorf("output = %q, want %q", out.String(), "status update\n")
	}
}

func TestPrintNilOutput(t *testing.T) {
	t.Parallel()

	res, err := getTool(t, "print").Execute(context.Background(),
		map[string]any{"text": "dropped"}, tool.ExecutionEnv{})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.IsError {
		t.Errorf("IsError = true, content: %s", res.Content)
	}
}

func TestCallAgentRequiresBothArgs(t *testing.T) {
	t.Parallel()

	res, err := getTool(t, "call_agent").Execute(context.Background(),
		map[string]any{"agent": "researcher"}, tool.ExecutionEnv{})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !res.IsError {
		t.Error("IsError = false, want true when prompt is missing")
	}
}
