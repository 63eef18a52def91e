package transcript_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/Dsinghbailey/eagle-lang/internal/provider"
	"github.com/Dsinghbailey/eagle-lang/internal/transcript"
)

func openStore(t *testing.T) *transcript.Store {
	t.Helper()
	s, err := transcript.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndLoadRun(t *testing.T) {
	t.Parallel()

	s := openStore(t)
	ctx := context.Background()

	msgs := []provider.Message{
		{Role: provider.MessageRoleSystem, Content: "be brief"},
		{Role: provider.MessageRoleUser, Content: "list files"},
		{Role: provider.MessageRoleAssistant, ToolCalls: []provider.ToolCall{
			{ID: "c1", Name: "list_files", Arguments: json.RawMessage(`{}`)},
		}},
		{Role: provider.MessageRoleTool, Name: "list_files", ToolID: "c1", Content: "a.txt"},
		{Role: provider.MessageRoleAssistant, Content: "There is one file: a.txt"},
	}

	rec := transcript.Record{
		RunID:       "run-1",
		Agent:       "researcher",
		Model:       "test-model",
		Script:      "list files",
		FinalText:   "There is one file: a.txt",
		Turns:       2,
		TotalTokens: 30,
		Status:      "done",
	}
	if err := s.SaveRun(ctx, rec, msgs); err != nil {
		t.Fatalf("SaveRun() error = %v", err)
	}

	runs, err := s.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("ListRuns() returned %d runs, want 1", len(runs))
	}
	got := runs[0]
	if got.RunID != "run-1" || got.Agent != "researcher" || got.Turns != 2 || got.Truncated {
		t.Errorf("run = %+v", got)
	}

	loaded, err := s.Messages(ctx, "run-1")
	if err != nil {
		t.Fatalf("Messages() error = %v", err)
	}
	if len(loaded) != len(msgs) {
		t.Fatalf("Messages() returned %d messages, want %d", len(loaded), len(msgs))
	}
	if loaded[2].Role != provider.MessageRoleAssistant || len(loaded[2].ToolCalls) != 1 {
		t.Errorf("assistant message = %+v", loaded[2])
	}
	if loaded[2].ToolCalls[0].ID != "c1" {
		t.Errorf("tool call id = %q, want c1", loaded[2].ToolCalls[0].ID)
	}
	if loaded[3].ToolID != "c1" || loaded[3].Name != "list_files" {
		t.Errorf("tool message = %+v", loaded[3])
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	t.Parallel()

	s := openStore(t)
	ctx := context.Background()

	for _, id := range []string{"run-a", "run-b", "run-c"} {
		if err := s.SaveRun(ctx, transcript.Record{RunID: id, Status: "done"}, nil); err != nil {
			t.Fatalf("SaveRun(%s) error = %v", id, err)
		}
	}

	runs, err := s.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].RunID != "run-c" {
		t.Errorf("first run = %q, want run-c", runs[0].RunID)
	}
}

func TestDuplicateRunIDRejected(t *testing.T) {
	t.Parallel()

	s := openStore(t)
	ctx := context.Background()

	if err := s.SaveRun(ctx, transcript.Record{RunID: "dup"}, nil); err != nil {
		t.Fatalf("first SaveRun() error = %v", err)
	}
	if err := s.SaveRun(ctx, transcript.Record{RunID: "dup"}, nil); err == nil {
		t.Error("second SaveRun() error = nil, want primary key violation")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.db")
	s1, err := transcript.Open(path)
	if err != nil {
		t.Fatalf("first Open() error = %v", err)
	}
	if err := s1.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	s2, err := transcript.Open(path)
	if err != nil {
		t.Fatalf("second Open() error = %v", err)
	}
	_ = s2.Close()
}
