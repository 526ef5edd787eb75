package rag

import (
	"fmt"
	"strings"
)

const classifierPromptTemplate = `You are a classifier for a real estate platform.

Categories:
1. property_recommendation - User is looking for properties to see/buy/rent, often mentioning price, bedrooms, location, or amenities.
2. market_trends - User is asking about real estate market data, price changes, investment trends, demand/supply analysis.
3. legal_faq - User is asking about property laws, ownership rules, taxes, or real estate regulations.
4. lease_generation - User wants to generate, draft, or create a lease agreement or rental contract.
5. none - User's query does not fit any of the above categories.

Classify the following query into exactly one category.
Query: %q

Respond with only the category name: property_recommendation, market_trends, legal_faq, lease_generation, or none.`

const expansionPromptTemplate = `You are an AI assistant helping retrieve relevant real estate documents.
Generate %d different rephrasings of the user question below. Each rephrasing
should approach the question from a different angle while preserving its
meaning, to improve recall against a vector database.

Question: %q

Return only the rephrasings, one per line, with no numbering or commentary.`

const answerPromptTemplate = `You are Estatify's AI real estate assistant - a knowledgeable, professional, and helpful expert in property buying, selling, and market insights.

%sGUIDELINES:
- Use ONLY the provided CONTEXT to answer questions accurately
- Consider the conversation history to provide contextual responses
- If the user refers to previous messages (like "that property", "the one you mentioned"), use the conversation history to understand the reference
- Be conversational yet professional (this appears in a website chatbot)
- For property recommendations: highlight key features, location benefits, and value propositions
- For market trends: provide clear insights with specific data points from the CONTEXT
- For legal questions: give accurate information from the CONTEXT but remind users to consult professionals for specific cases
- Keep responses concise but informative
- If CONTEXT is insufficient, politely explain what you can help with instead

CONTEXT:
%s

CURRENT USER QUESTION:
%s`

// renderHistory formats a conversation as role-labeled lines for inclusion
// in a prompt. Returns "" for an empty conversation.
func renderHistory(history []Message) string {
	if len(history) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("PREVIOUS CONVERSATION:\n")
	for _, msg := range history {
		role := "Assistant"
		if msg.Role == RoleUser {
			role = "User"
		}
		fmt.Fprintf(&sb, "%s: %s\n", role, msg.Content)
	}
	sb.WriteString("\n")
	return sb.String()
}
