package prompt_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dsinghbailey/eagle-lang/internal/prompt"
)

func TestSystem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		agent string
		rules []string
		want  string
	}{
		{
			name: "empty",
			want: "",
		},
		{
			name:  "agent only",
			agent: "You are a researcher.",
			want:  "You are a researcher.",
		},
		{
			name:  "agent and rules",
			agent: "You are a researcher.",
			rules: []string{"Cite sources.", "Be concise."},
			want:  "You are a researcher.\n\nFollow these rules:\n- Cite sources.\n- Be concise.",
		},
		{
			name:  "rules only",
			rules: []string{"Be concise."},
			want:  "Follow these rules:\n- Be concise.",
		},
		{
			name:  "blank rules skipped",
			agent: "Agent.",
			rules: []string{"", "  "},
			want:  "Agent.",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := prompt.System(tt.agent, tt.rules); got != tt.want {
				t.Errorf("System() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnhanceUser(t *testing.T) {
	t.Parallel()

	got := prompt.EnhanceUser("Summarize the report.\n", []string{"quarter: Q3", "audience: board"})
	want := "Summarize the report.\n\nAdditional context:\n- quarter: Q3\n- audience: board"
	if got != want {
		t.Errorf("EnhanceUser() = %q, want %q", got, want)
	}
}

func TestEnhanceUserNoContext(t *testing.T) {
	t.Parallel()

	if got := prompt.EnhanceUser("Do the thing.", nil); got != "Do the thing." {
		t.Errorf("EnhanceUser() = %q", got)
	}
}

func TestLoadRuleFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := filepath.Join(dir, "style.md")
	second := filepath.Join(dir, "safety.md")
	if err := os.WriteFile(first, []byte("Write plainly.\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(second, []byte("Never delete files.\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rules, err := prompt.LoadRuleFiles([]string{first, second})
	if err != nil {
		t.Fatalf("LoadRuleFiles() error = %v", err)
	}
	if len(rules) != 2 || rules[0] != "Write plainly." || rules[1] != "Never delete files." {
		t.Errorf("LoadRuleFiles() = %v", rules)
	}
}

func TestLoadRuleFilesMissing(t *testing.T) {
	t.Parallel()

	_, err := prompt.LoadRuleFiles([]string{filepath.Join(t.TempDir(), "absent.md")})
	if err == nil || !strings.Contains(err.Error(), "rules file") {
		t.Errorf("LoadRuleFiles() error = %v, want read failure", err)
	}
}
