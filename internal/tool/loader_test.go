package tool_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/Dsinghbailey/eagle-lang/internal/tool"
)

func writeManifest(t *testing.T, root, dir, manifest string) {
	t.Helper()
	toolDir := filepath.Join(root, dir)
	if err := os.MkdirAll(toolDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(toolDir, "tool.yaml"), []byte(manifest), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoadDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeManifest(t, root, "greet", `
name: greet
description: prints a greeting
command: ["echo", "hello"]
params:
  - name: who
    type: string
    required: true
`)
	writeManifest(t, root, "risky", `
name: risky
description: needs confirmation
requires_permission: true
command: ["true"]
`)

	r := tool.NewRegistry()
	issues, err := r.LoadDir(root)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("LoadDir() issues = %v, want none", issues)
	}

	greet, err := r.Get("greet")
	if err != nil {
		t.Fatalf("Get(greet) error = %v", err)
	}
	if greet.RequiresPermission() {
		t.Error("greet.RequiresPermission() = true, want false")
	}
	if len(greet.Params()) != 1 || greet.Params()[0].Name != "who" {
		t.Errorf("greet.Params() = %v", greet.Params())
	}

	risky, err := r.Get("risky")
	if err != nil {
		t.Fatalf("Get(risky) error = %v", err)
	}
	if !risky.RequiresPermission() {
		t.Error("risky.RequiresPermission() = false, want true")
	}
}

func TestLoadDirSkipsInvalidManifests(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeManifest(t, root, "good", `
name: good
description: a valid tool
command: ["true"]
`)
	writeManifest(t, root, "broken", `name: [not a`)
	writeManifest(t, root, "nameless", `
description: forgot the name
command: ["true"]
`)
	writeManifest(t, root, "commandless", `
name: commandless
description: forgot the command
`)

	r := tool.NewRegistry()
	issues, err := r.LoadDir(root)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if len(issues) != 3 {
		t.Errorf("got %d issues, want 3: %v", len(issues), issues)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestLoadDirMissingRoot(t *testing.T) {
	t.Parallel()

	r := tool.NewRegistry()
	issues, err := r.LoadDir(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("issues = %v, want none", issues)
	}
}

func TestLoadDirIgnoresDirsWithoutManifest(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "empty"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	r := tool.NewRegistry()
	issues, err := r.LoadDir(root)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if len(issues) != 0 || r.Len() != 0 {
		t.Errorf("issues = %v, Len() = %d; want no issues and no tools", issues, r.Len())
	}
}

func TestExecToolRunsCommand(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX cat")
	}

	root := t.TempDir()
	writeManifest(t, root, "echo_args", `
name: echo_args
description: echoes its argument payload
command: ["cat"]
params:
  - name: text
    type: string
`)

	r := tool.NewRegistry()
	if _, err := r.LoadDir(root); err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	et, err := r.Get("echo_args")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	res, err := et.Execute(context.Background(), map[string]any{"text": "hi"}, tool.ExecutionEnv{})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("IsError = true, content: %s", res.Content)
	}
	if res.Content != `{"text":"hi"}` {
		t.Errorf("Content = %q, want %q", res.Content, `{"text":"hi"}`)
	}
}

func TestExecToolReportsFailureAsResult(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX sh")
	}

	root := t.TempDir()
	writeManifest(t, root, "fail", `
name: fail
description: always fails
command: ["sh", "-c", "echo boom >&2; exit 3"]
`)

	r := tool.NewRegistry()
	if _, err := r.LoadDir(root); err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	ft, err := r.Get("fail")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	res, err := ft.Execute(context.Background(), map[string]any{}, tool.ExecutionEnv{})
	if err != nil {
		t.Fatalf("Execute() error = %v, want tool-level failure in result", err)
	}
	if !res.IsError {
		t.Error("IsError = false, want true")
	}
	if res.Content != "boom" {
		t.Errorf("Content = %q, want %q", res.Content, "boom")
	}
}
