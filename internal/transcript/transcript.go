// Package transcript persists completed runs to SQLite. Persistence is an
// observer of the interpreter: it never affects run semantics.
package transcript

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Dsinghbailey/eagle-lang/internal/provider"

	_ "modernc.org/sqlite" // SQLite driver registration
)

const defaultBusyTimeout = 5000 // milliseconds

// Store records runs and their message transcripts.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the transcript database at the given path. The
// database uses WAL mode, a 5 s busy timeout, and a single connection
// (SQLite serialises writes). The schema is migrated automatically.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("transcript: create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("transcript: open %s: %w", path, err)
	}

	db.SetMaxOpenConns(1)

	ctx := context.TODO()
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("transcript: enable WAL: %w", err)
	}
	if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA busy_timeout=%d", defaultBusyTimeout)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("transcript: set busy_timeout: %w", err)
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record describes one persisted run.
type Record struct {
	RunID       string
	Agent       string
	Model       string
	Script      string
	FinalText   string
	Truncated   bool
	Turns       int
	TotalTokens int
	Status      string
	CreatedAt   time.Time
}

// SaveRun persists a run and its full transcript in one transaction.
func (s *Store) SaveRun(ctx context.Context, rec Record, transcript []provider.Message) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("transcript: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (run_id, agent, model, script, final_text, truncated, turns, total_tokens, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.Agent, rec.Model, rec.Script, rec.FinalText,
		boolToInt(rec.Truncated), rec.Turns, rec.TotalTokens, rec.Status,
	)
	if err != nil {
		return fmt.Errorf("transcript: insert run: %w", err)
	}

	for seq, msg := range transcript {
		toolCalls := "[]"
		if len(msg.ToolCalls) > 0 {
			raw, err := json.Marshal(msg.ToolCalls)
			if err != nil {
				return fmt.Errorf("transcript: marshal tool calls: %w", err)
			}
			toolCalls = string(raw)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO messages (run_id, seq, role, content, name, tool_id, tool_calls, is_error)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.RunID, seq, string(msg.Role), msg.Content, msg.Name, msg.ToolID,
			toolCalls, boolToInt(msg.IsError),
		)
		if err != nil {
			return fmt.Errorf("transcript: insert message %d: %w", seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("transcript: commit: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, agent, model, script, final_text, truncated, turns, total_tokens, status, created_at
		FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("transcript: list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Record
	for rows.Next() {
		var rec Record
		var truncated int
		var createdAt string
		if err := rows.Scan(&rec.RunID, &rec.Agent, &rec.Model, &rec.Script, &rec.FinalText,
			&truncated, &rec.Turns, &rec.TotalTokens, &rec.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("transcript: scan run: %w", err)
		}
		rec.Truncated = truncated != 0
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			rec.CreatedAt = t
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Messages returns the transcript of one run in order.
func (s *Store) Messages(ctx context.Context, runID string) ([]provider.Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT role, content, name, tool_id, tool_calls, is_error
		FROM messages WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("transcript: load messages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []provider.Message
	for rows.Next() {
		var msg provider.Message
		var role, toolCalls string
		var isError int
		if err := rows.Scan(&role, &msg.Content, &msg.Name, &msg.ToolID, &toolCalls, &isError); err != nil {
			return nil, fmt.Errorf("transcript: scan message: %w", err)
		}
		msg.Role = provider.MessageRole(role)
		msg.IsError = isError != 0
		if toolCalls != "" && toolCalls != "[]" {
			if err := json.Unmarshal([]byte(toolCalls), &msg.ToolCalls); err != nil {
				return nil, fmt.Errorf("transcript: decode tool calls: %w", err)
			}
		}
		out = append(out, msg)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
