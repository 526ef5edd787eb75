package lease

import (
	"context"
	"fmt"
	"strings"

	"github.com/ahmad2493/real-estate-platform/internal/rag"
)

// Flow is the conversational lease path the RAG pipeline delegates to when
// a query classifies as lease generation. It accumulates fields across
// turns via extraction and prompts the user for whatever is still missing.
// No state is kept between requests; the caller resupplies history each turn.
type Flow struct {
	gen *Generator
}

// NewFlow wraps a Generator for conversational use.
func NewFlow(gen *Generator) *Flow {
	return &Flow{gen: gen}
}

// Respond implements rag.LeaseFlow.
func (f *Flow) Respond(ctx context.Context, query string, history []rag.Message, user rag.User) (string, error) {
	if err := Authorize(user.Role, f.gen.allowedRoles); err != nil {
		// In chat, denial is an answer, not a server failure.
		return "Lease agreements can only be generated by landlords, agents, or administrators. " +
			"Please contact your landlord or agent to arrange one.", nil
	}

	// Extract whatever the conversation already contains, current message
	// included.
	turns := append(append([]rag.Message{}, history...), rag.Message{Role: rag.RoleUser, Content: query})
	extracted, err := f.gen.Extract(ctx, turns)
	if err != nil {
		return "", err
	}

	acc := Details{}.Merge(extracted)
	missing := acc.Missing()
	if len(missing) == 0 {
		return "I have everything needed for the lease agreement: the property address, both parties, " +
			"the lease dates, rent, and deposit. Use the Generate Lease action to create and download the PDF.", nil
	}

	return fmt.Sprintf(
		"I can draft that lease agreement. I still need the following: %s. Let's start with the %s - what should it be?",
		strings.Join(missing, ", "), missing[0],
	), nil
}
