package lease

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/ahmad2493/real-estate-platform/internal/llm"
)

// Document is a generated lease agreement ready to serve to the caller.
type Document struct {
	ID       string
	Filename string
	PDF      []byte
}

// Generator drafts lease text with the language model and renders it to PDF.
type Generator struct {
	provider     llm.Provider
	model        string
	allowedRoles []string
}

// NewGenerator creates a lease generator. allowedRoles is the closed set of
// caller roles permitted to generate agreements.
func NewGenerator(provider llm.Provider, model string, allowedRoles []string) *Generator {
	return &Generator{
		provider:     provider,
		model:        model,
		allowedRoles: allowedRoles,
	}
}

// Generate validates the details, authorizes the caller, drafts the lease
// text, and renders the PDF. Fails closed: an unauthorized role is rejected
// before any model call, regardless of field completeness.
func (g *Generator) Generate(ctx context.Context, d Details, callerRole string) (*Document, error) {
	if err := Authorize(callerRole, g.allowedRoles); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	text, err := g.Draft(ctx, d)
	if err != nil {
		return nil, err
	}

	pdf, err := Render(d, text)
	if err != nil {
		return nil, fmt.Errorf("rendering lease pdf: %w", err)
	}

	id := uuid.NewString()
	log.Printf("lease: generated agreement %s for %s", id, d.PropertyAddress)
	return &Document{
		ID:       id,
		Filename: fmt.Sprintf("lease_agreement_%s.pdf", id),
		PDF:      pdf,
	}, nil
}

// Draft asks the model for the full lease text: numbered clauses, renewal
// and termination, dispute resolution, and signature lines.
func (g *Generator) Draft(ctx context.Context, d Details) (string, error) {
	prompt := fmt.Sprintf(draftPromptTemplate, renderDraftFields(d))

	text, err := llm.Prompt(ctx, g.provider, g.model, prompt, 0.3)
	if err != nil {
		return "", fmt.Errorf("drafting lease text: %w", err)
	}
	return text, nil
}
