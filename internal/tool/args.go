package tool

import (
	"encoding/json"
	"fmt"
)

// DecodeArgs parses a raw argument payload into a map. An empty payload
// decodes to an empty map; anything other than a JSON object fails with
// ErrBadArguments.
func DecodeArgs(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArguments, err)
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}

// ValidateArgs checks decoded arguments against the declared parameters:
// every required parameter must be present, and every supplied value must
// match its declared type. Undeclared arguments are rejected.
func ValidateArgs(params []Param, args map[string]any) error {
	declared := make(map[string]Param, len(params))
	for _, p := range params {
		declared[p.Name] = p
	}

	for _, p := range params {
		if _, ok := args[p.Name]; !ok && p.Required {
			return fmt.Errorf("%w: missing required parameter %q", ErrBadArguments, p.Name)
		}
	}

	for name, value := range args {
		p, ok := declared[name]
		if !ok {
			return fmt.Errorf("%w: unknown parameter %q", ErrBadArguments, name)
		}
		if value == nil {
			continue
		}
		if !matchesType(p.Type, value) {
			return fmt.Errorf("%w: parameter %q expects %s, got %T", ErrBadArguments, name, p.Type, value)
		}
	}
	return nil
}

// matchesType checks a decoded JSON value against a declared schema type.
// Numbers decode as float64, so integer accepts any float64 with no
// fractional part.
func matchesType(declared string, value any) bool {
	switch declared {
	case "string":
		_, ok := value.(string)
		return ok
	case "boolean":
		_, ok := value.(bool)
		return ok
	case "number":
		_, ok := value.(float64)
		return ok
	case "integer":
		f, ok := value.(float64)
		return ok && f == float64(int64(f))
	case "object":
		_, ok := value.(map[string]any)
		return ok
	case "array":
		_, ok := value.([]any)
		return ok
	default:
		// Unrecognized declared types accept anything.
		return true
	}
}
