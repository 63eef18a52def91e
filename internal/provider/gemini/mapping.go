package gemini

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/Dsinghbailey/eagle-lang/internal/provider"
)

// --- Generative Language API types (unexported, serialization only) ---

type generateRequest struct {
	SystemInstruction *content          `json:"system_instruction,omitempty"`
	Contents          []content         `json:"contents"`
	Tools             []toolDecls       `json:"tools,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text             string            `json:"text,omitempty"`
	FunctionCall     *functionCall     `json:"functionCall,omitempty"`
	FunctionResponse *functionResponse `json:"functionResponse,omitempty"`
}

type functionCall struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args,omitempty"`
}

type functionResponse struct {
	Name     string          `json:"name"`
	Response json.RawMessage `json:"response"`
}

type toolDecls struct {
	FunctionDeclarations []functionDeclaration `json:"functionDeclarations"`
}

type functionDeclaration struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

type generationConfig struct {
	MaxOutputTokens int      `json:"maxOutputTokens,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"`
	StopSequences   []string `json:"stopSequences,omitempty"`
}

type generateResponse struct {
	Candidates    []candidate    `json:"candidates"`
	UsageMetadata *usageMetadata `json:"usageMetadata"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

type usageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

// --- Converter functions ---

// toGenerateRequest transforms a CompletionRequest into the generateContent
// wire shape. System messages move into system_instruction; consecutive
// tool results group into one user content with functionResponse parts.
func toGenerateRequest(req provider.CompletionRequest, cfg provider.Config) generateRequest {
	gr := generateRequest{}

	var systemParts []part
	msgs := req.Messages
	for len(msgs) > 0 && msgs[0].Role == provider.MessageRoleSystem {
		systemParts = append(systemParts, part{Text: msgs[0].Content})
		msgs = msgs[1:]
	}
	if len(systemParts) > 0 {
		gr.SystemInstruction = &content{Parts: systemParts}
	}

	gr.Contents = toContents(msgs)

	if len(req.Tools) > 0 {
		decls := make([]functionDeclaration, len(req.Tools))
		for i, t := range req.Tools {
			decls[i] = functionDeclaration{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			}
		}
		gr.Tools = []toolDecls{{FunctionDeclarations: decls}}
	}

	gc := &generationConfig{}
	switch {
	case req.MaxTokens > 0:
		gc.MaxOutputTokens = req.MaxTokens
	case cfg.MaxTokens > 0:
		gc.MaxOutputTokens = cfg.MaxTokens
	}
	switch {
	case req.Temperature != nil:
		gc.Temperature = req.Temperature
	case cfg.Temperature != nil:
		gc.Temperature = cfg.Temperature
	}
	gc.StopSequences = req.Stop
	if gc.MaxOutputTokens > 0 || gc.Temperature != nil || len(gc.StopSequences) > 0 {
		gr.GenerationConfig = gc
	}

	return gr
}

// toContents converts non-system messages into the contents list.
func toContents(msgs []provider.Message) []content {
	var out []content

	for i := 0; i < len(msgs); {
		msg := msgs[i]

		switch msg.Role {
		case provider.MessageRoleTool:
			var parts []part
			for i < len(msgs) && msgs[i].Role == provider.MessageRoleTool {
				parts = append(parts, part{
					FunctionResponse: &functionResponse{
						Name:     msgs[i].Name,
						Response: toolResponsePayload(msgs[i]),
					},
				})
				i++
			}
			out = append(out, content{Role: "user", Parts: parts})

		case provider.MessageRoleAssistant:
			var parts []part
			if msg.Content != "" {
				parts = append(parts, part{Text: msg.Content})
			}
			for _, tc := range msg.ToolCalls {
				args := tc.Arguments
				if len(args) == 0 {
					args = json.RawMessage("{}")
				}
				parts = append(parts, part{
					FunctionCall: &functionCall{Name: tc.Name, Args: args},
				})
			}
			if len(parts) == 0 {
				parts = append(parts, part{Text: ""})
			}
			out = append(out, content{Role: "model", Parts: parts})
			i++

		default:
			out = append(out, content{
				Role:  "user",
				Parts: []part{{Text: msg.Content}},
			})
			i++
		}
	}

	return out
}

// toolResponsePayload wraps a tool result in the object shape the API
// expects for functionResponse.response.
func toolResponsePayload(msg provider.Message) json.RawMessage {
	key := "output"
	if msg.IsError {
		key = "error"
	}
	payload, err := json.Marshal(map[string]string{key: msg.Content})
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return payload
}

// fromGenerateResponse converts a generateContent response into a
// CompletionResponse. The API supplies no tool call IDs, so opaque ones
// are synthesized here.
func fromGenerateResponse(resp *generateResponse) (provider.CompletionResponse, error) {
	if len(resp.Candidates) == 0 {
		return provider.CompletionResponse{}, fmt.Errorf("%w: response has no candidates", provider.ErrMalformedResponse)
	}

	cand := resp.Candidates[0]

	var text string
	var toolCalls []provider.ToolCall
	for _, p := range cand.Content.Parts {
		if p.Text != "" {
			if text != "" {
				text += "\n"
			}
			text += p.Text
		}
		if p.FunctionCall != nil {
			args := p.FunctionCall.Args
			if len(args) == 0 {
				args = json.RawMessage("{}")
			}
			toolCalls = append(toolCalls, provider.ToolCall{
				ID:        "call_" + uuid.NewString(),
				Name:      p.FunctionCall.Name,
				Arguments: args,
			})
		}
	}

	cr := provider.CompletionResponse{
		Content:      text,
		ToolCalls:    toolCalls,
		FinishReason: mapFinishReason(cand.FinishReason, len(toolCalls) > 0),
	}
	if resp.UsageMetadata != nil {
		cr.Usage = provider.TokenUsage{
			PromptTokens:     resp.UsageMetadata.PromptTokenCount,
			CompletionTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      resp.UsageMetadata.TotalTokenCount,
		}
	}
	return cr, nil
}

// mapFinishReason collapses a Gemini finish reason into the internal
// enum. Gemini reports STOP even when the candidate carries function
// calls, so the presence of calls takes precedence. Unknown reasons
// default to a natural stop.
func mapFinishReason(reason string, hasToolCalls bool) provider.FinishReason {
	if hasToolCalls {
		return provider.FinishReasonToolUse
	}
	switch reason {
	case "MAX_TOKENS":
		return provider.FinishReasonLength
	default:
		return provider.FinishReasonStop
	}
}
