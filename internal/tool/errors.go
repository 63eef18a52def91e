package tool

import "errors"

var (
	// ErrToolNotFound is returned when a tool is not found in the registry.
	ErrToolNotFound = errors.New("tool not found")

	// ErrDuplicateTool is returned when registering a tool with a name
	// that already exists in the registry.
	ErrDuplicateTool = errors.New("tool already registered")

	// ErrInvalidSpec is returned when a tool declaration fails validation:
	// empty name or description, duplicate parameter names, or a missing
	// handler.
	ErrInvalidSpec = errors.New("invalid tool spec")

	// ErrDenied is returned when a tool invocation is denied by policy or
	// by the user. The denial applies to the single invocation, not the
	// policy.
	ErrDenied = errors.New("tool execution denied")

	// ErrBadArguments is returned when the model-supplied arguments are
	// malformed or do not satisfy the declared parameters.
	ErrBadArguments = errors.New("invalid tool arguments")
)
