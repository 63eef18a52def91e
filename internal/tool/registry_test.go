package tool_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Dsinghbailey/eagle-lang/internal/tool"
	"github.com/Dsinghbailey/eagle-lang/internal/tool/tooltest"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	t.Parallel()

	r := tool.NewRegistry()
	mock := tooltest.New("read_file")

	if err := r.Register(mock); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	got, err := r.Get("read_file")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name() != "read_file" {
		t.Errorf("Name() = %q, want %q", got.Name(), "read_file")
	}
}

func TestRegistryGetNotFound(t *testing.T) {
	t.Parallel()

	r := tool.NewRegistry()
	if _, err := r.Get("missing"); !errors.Is(err, tool.ErrToolNotFound) {
		t.Errorf("Get() error = %v, want ErrToolNotFound", err)
	}
}

func TestRegistryGetCaseSensitive(t *testing.T) {
	t.Parallel()

	r := tool.NewRegistry()
	if err := r.Register(tooltest.New("shell")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := r.Get("Shell"); !errors.Is(err, tool.ErrToolNotFound) {
		t.Errorf("Get(%q) error = %v, want ErrToolNotFound", "Shell", err)
	}
}

func TestRegistryDuplicateName(t *testing.T) {
	t.Parallel()

	r := tool.NewRegistry()
	if err := r.Register(tooltest.New("web")); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	if err := r.Register(tooltest.New("web")); !errors.Is(err, tool.ErrDuplicateTool) {
		t.Errorf("second Register() error = %v, want ErrDuplicateTool", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistryRejectsInvalidSpecs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tool tool.Tool
	}{
		{
			name: "empty name",
			tool: &tooltest.MockTool{ToolDescription: "no name"},
		},
		{
			name: "empty description",
			tool: &tooltest.MockTool{ToolName: "bare"},
		},
		{
			name: "nil spec handler",
			tool: tool.Spec{ToolName: "fn", ToolDescription: "fn tool"},
		},
		{
			name: "duplicate param names",
			tool: &tooltest.MockTool{
				ToolName:        "dup",
				ToolDescription: "duplicate params",
				Parameters: []tool.Param{
					{Name: "path", Type: "string"},
					{Name: "path", Type: "string"},
				},
			},
		},
		{
			name: "empty param name",
			tool: &tooltest.MockTool{
				ToolName:        "anon",
				ToolDescription: "anonymous param",
				Parameters:      []tool.Param{{Type: "string"}},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := tool.NewRegistry()
			if err := r.Register(tt.tool); !errors.Is(err, tool.ErrInvalidSpec) {
				t.Errorf("Register() error = %v, want ErrInvalidSpec", err)
			}
		})
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	t.Parallel()

	r := tool.NewRegistry()
	for _, name := range []string{"web", "read_file", "shell"} {
		if err := r.Register(tooltest.New(name)); err != nil {
			t.Fatalf("Register(%q) error = %v", name, err)
		}
	}

	want := []string{"read_file", "shell", "web"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRegistryDefinitions(t *testing.T) {
	t.Parallel()

	r := tool.NewRegistry()
	mock := tooltest.New("read_file")
	mock.Parameters = []tool.Param{
		{Name: "path", Type: "string", Description: "file path", Required: true},
	}
	if err := r.Register(mock); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	defs := r.Definitions()
	if len(defs) != 1 {
		t.Fatalf("Definitions() returned %d entries, want 1", len(defs))
	}
	if defs[0].Name != "read_file" {
		t.Errorf("Name = %q, want %q", defs[0].Name, "read_file")
	}
	if len(defs[0].Parameters) == 0 {
		t.Error("Parameters is empty, want JSON Schema")
	}
}
