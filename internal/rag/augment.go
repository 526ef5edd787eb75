package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/ahmad2493/real-estate-platform/internal/llm"
	"github.com/ahmad2493/real-estate-platform/internal/vectordb"
)

// Augmenter assembles retrieved context and conversation history into a
// grounded answer prompt.
type Augmenter struct {
	provider llm.Provider
	model    string
}

// NewAugmenter creates an augmenter backed by the given provider and model.
func NewAugmenter(provider llm.Provider, model string) *Augmenter {
	return &Augmenter{provider: provider, model: model}
}

// Answer joins retrieved document text (retrieval order, blank-line
// separated) as context, prefixes the rendered conversation history when
// supplied, and asks the model for an answer grounded in that context.
func (a *Augmenter) Answer(ctx context.Context, query string, docs []vectordb.Document, history []Message) (string, error) {
	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Content
	}
	contextText := strings.Join(texts, "\n\n")

	prompt := fmt.Sprintf(answerPromptTemplate, renderHistory(history), contextText, query)

	answer, err := llm.Prompt(ctx, a.provider, a.model, prompt, 0.7)
	if err != nil {
		return "", fmt.Errorf("generating answer: %w", err)
	}
	return strings.TrimSpace(answer), nil
}
