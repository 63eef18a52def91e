package tool

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Dsinghbailey/eagle-lang/internal/provider"
)

// BuildSchema renders the declared parameters as a JSON Schema object.
// Properties appear in declaration order.
func BuildSchema(params []Param) json.RawMessage {
	var buf bytes.Buffer
	buf.WriteString(`{"type":"object","properties":{`)

	var required []string
	for i, p := range params {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, _ := json.Marshal(p.Name)
		buf.Write(name)
		buf.WriteByte(':')

		prop := map[string]string{"type": p.Type}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		propJSON, _ := json.Marshal(prop)
		buf.Write(propJSON)

		if p.Required {
			required = append(required, p.Name)
		}
	}
	buf.WriteByte('}')

	if len(required) > 0 {
		buf.WriteString(`,"required":`)
		reqJSON, _ := json.Marshal(required)
		buf.Write(reqJSON)
	}
	buf.WriteByte('}')

	return buf.Bytes()
}

// ProviderSchemas renders every registered tool as a vendor-shaped
// descriptor for the given provider family, ordered by tool name. The
// neutral definition and the vendor shape carry the same information.
func (r *Registry) ProviderSchemas(kind provider.Kind) ([]json.RawMessage, error) {
	defs := r.Definitions()
	out := make([]json.RawMessage, 0, len(defs))

	for _, def := range defs {
		var shaped any
		switch kind {
		case provider.KindOpenAI:
			shaped = map[string]any{
				"type": "function",
				"function": map[string]any{
					"name":        def.Name,
					"description": def.Description,
					"parameters":  def.Parameters,
				},
			}
		case provider.KindAnthropic:
			shaped = map[string]any{
				"name":         def.Name,
				"description":  def.Description,
				"input_schema": def.Parameters,
			}
		case provider.KindGemini:
			shaped = map[string]any{
				"name":        def.Name,
				"description": def.Description,
				"parameters":  def.Parameters,
			}
		default:
			return nil, fmt.Errorf("unknown provider kind: %q", kind)
		}

		raw, err := json.Marshal(shaped)
		if err != nil {
			return nil, fmt.Errorf("marshal schema for %s: %w", def.Name, err)
		}
		out = append(out, raw)
	}
	return out, nil
}
