package tool

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Dsinghbailey/eagle-lang/internal/provider"
)

// Registry holds the tools available to a run. Each run builds its own
// registry; there is no process-wide instance.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register validates and adds a tool. Registration fails for an empty
// name or description, duplicate parameter names, a nil Spec handler, or
// a name already taken.
func (r *Registry) Register(t Tool) error {
	if err := validate(t); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := t.Name()
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, name)
	}
	r.tools[name] = t
	return nil
}

func validate(t Tool) error {
	if t.Name() == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidSpec)
	}
	if t.Description() == "" {
		return fmt.Errorf("%w: %s: description is empty", ErrInvalidSpec, t.Name())
	}
	if spec, ok := t.(Spec); ok && spec.Handler == nil {
		return fmt.Errorf("%w: %s: handler is nil", ErrInvalidSpec, t.Name())
	}
	seen := make(map[string]bool, len(t.Params()))
	for _, p := range t.Params() {
		if p.Name == "" {
			return fmt.Errorf("%w: %s: parameter with empty name", ErrInvalidSpec, t.Name())
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: %s: duplicate parameter %q", ErrInvalidSpec, t.Name(), p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

// Get returns the tool registered under the given name. Lookup is exact
// and case-sensitive.
func (r *Registry) Get(name string) (Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return t, nil
}

// Names returns the registered tool names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// Definitions returns the neutral tool definitions sent to providers, one
// per registered tool, ordered by name.
func (r *Registry) Definitions() []provider.ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]provider.ToolDefinition, 0, len(names))
	for _, name := range names {
		t := r.tools[name]
		defs = append(defs, provider.ToolDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  BuildSchema(t.Params()),
		})
	}
	return defs
}
