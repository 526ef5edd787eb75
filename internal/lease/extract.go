package lease

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ahmad2493/real-estate-platform/internal/llm"
	"github.com/ahmad2493/real-estate-platform/internal/rag"
)

// Extract pulls lease details out of a free-form conversation with a single
// JSON-mode extraction call. The model must return either a strict JSON
// object or the fixed sentinel meaning "not enough information". A sentinel
// response or unparseable output yields empty Details and no error; field
// collection then continues conversationally.
func (g *Generator) Extract(ctx context.Context, history []rag.Message) (Details, error) {
	transcript := renderTranscript(history)
	prompt := fmt.Sprintf(extractionPromptTemplate, transcript, extractionSentinel)

	resp, err := g.provider.Complete(ctx, llm.CompletionRequest{
		Model:       g.model,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Temperature: 0,
	})
	if err != nil {
		return Details{}, fmt.Errorf("extracting lease details: %w", err)
	}

	raw := strings.TrimSpace(resp.Content)
	if raw == "" || strings.Contains(raw, extractionSentinel) {
		return Details{}, nil
	}

	// Models sometimes wrap JSON in code fences despite instructions.
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.Trim(raw, "`\n ")

	var d Details
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		// Malformed output falls back to the empty accumulator rather
		// than failing the request.
		return Details{}, nil
	}
	return d, nil
}

func renderTranscript(history []rag.Message) string {
	var sb strings.Builder
	for _, msg := range history {
		role := "Assistant"
		if msg.Role == rag.RoleUser {
			role = "User"
		}
		fmt.Fprintf(&sb, "%s: %s\n", role, msg.Content)
	}
	return sb.String()
}
