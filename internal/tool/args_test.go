package tool_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/Dsinghbailey/eagle-lang/internal/tool"
)

func TestDecodeArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantErr bool
		wantLen int
	}{
		{name: "empty payload", raw: "", wantLen: 0},
		{name: "empty object", raw: "{}", wantLen: 0},
		{name: "object", raw: `{"path":"a.txt","count":2}`, wantLen: 2},
		{name: "null decodes to empty map", raw: "null", wantLen: 0},
		{name: "truncated json", raw: `{"path":`, wantErr: true},
		{name: "array rejected", raw: `[1,2]`, wantErr: true},
		{name: "scalar rejected", raw: `"hello"`, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args, err := tool.DecodeArgs(json.RawMessage(tt.raw))
			if tt.wantErr {
				if !errors.Is(err, tool.ErrBadArguments) {
					t.Fatalf("DecodeArgs() error = %v, want ErrBadArguments", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeArgs() error = %v", err)
			}
			if len(args) != tt.wantLen {
				t.Errorf("len(args) = %d, want %d", len(args), tt.wantLen)
			}
		})
	}
}

func TestValidateArgs(t *testing.T) {
	t.Parallel()

	params := []tool.Param{
		{Name: "path", Type: "string", Required: true},
		{Name: "limit", Type: "integer"},
		{Name: "recursive", Type: "boolean"},
		{Name: "ratio", Type: "number"},
	}

	tests := []struct {
		name    string
		args    map[string]any
		wantErr bool
	}{
		{
			name: "all valid",
			args: map[string]any{"path": "a.txt", "limit": float64(10), "recursive": true},
		},
		{
			name: "required only",
			args: map[string]any{"path": "a.txt"},
		},
		{
			name:    "missing required",
			args:    map[string]any{"limit": float64(10)},
			wantErr: true,
		},
		{
			name:    "wrong type for string",
			args:    map[string]any{"path": float64(3)},
			wantErr: true,
		},
		{
			name:    "fractional value for integer",
			args:    map[string]any{"path": "a.txt", "limit": 1.5},
			wantErr: true,
		},
		{
			name: "whole float accepted as integer",
			args: map[string]any{"path": "a.txt", "limit": float64(3)},
		},
		{
			name:    "undeclared argument rejected",
			args:    map[string]any{"path": "a.txt", "extra": "x"},
			wantErr: true,
		},
		{
			name: "null value skips type check",
			args: map[string]any{"path": "a.txt", "limit": nil},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tool.ValidateArgs(params, tt.args)
			if tt.wantErr {
				if !errors.Is(err, tool.ErrBadArguments) {
					t.Errorf("ValidateArgs() error = %v, want ErrBadArguments", err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateArgs() error = %v", err)
			}
		})
	}
}
