package rag

import (
	"context"
	"fmt"

	"github.com/ahmad2493/real-estate-platform/internal/llm"
)

// Classifier labels a free-text query with one intent from the closed set
// using a single completion call.
type Classifier struct {
	provider llm.Provider
	model    string
}

// NewClassifier creates a classifier backed by the given provider and model.
func NewClassifier(provider llm.Provider, model string) *Classifier {
	return &Classifier{provider: provider, model: model}
}

// Classify returns the intent for the query. Model output that falls outside
// the closed label set parses to IntentUnrecognized; it is not an error.
func (c *Classifier) Classify(ctx context.Context, query string) (Intent, error) {
	prompt := fmt.Sprintf(classifierPromptTemplate, query)

	raw, err := llm.Prompt(ctx, c.provider, c.model, prompt, 0)
	if err != nil {
		return IntentUnrecognized, fmt.Errorf("classifying query: %w", err)
	}
	return ParseIntent(raw), nil
}
