package rag

import "strings"

// Intent is the classified category steering which retrieval and response
// path a query follows.
type Intent string

const (
	IntentPropertyRecommendation Intent = "property_recommendation"
	IntentMarketTrends           Intent = "market_trends"
	IntentLegalFAQ               Intent = "legal_faq"
	IntentLeaseGeneration        Intent = "lease_generation"

	// IntentNone is the classifier's own "fits no category" answer.
	IntentNone Intent = "none"

	// IntentUnrecognized is the fallback when the model returns a label
	// outside the closed set. It behaves like IntentNone (no retrieval)
	// rather than failing the request.
	IntentUnrecognized Intent = "unrecognized"
)

// ParseIntent maps raw classifier output onto the closed intent set. The raw
// text is lowercased and stripped of the quoting and punctuation models
// sometimes add. Anything that doesn't match becomes IntentUnrecognized.
func ParseIntent(raw string) Intent {
	label := strings.ToLower(strings.TrimSpace(raw))
	label = strings.Trim(label, "\"'`.")

	switch Intent(label) {
	case IntentPropertyRecommendation, IntentMarketTrends, IntentLegalFAQ,
		IntentLeaseGeneration, IntentNone:
		return Intent(label)
	}
	return IntentUnrecognized
}

// Retrievable reports whether the intent has a retrieval strategy attached.
func (i Intent) Retrievable() bool {
	switch i {
	case IntentPropertyRecommendation, IntentMarketTrends, IntentLegalFAQ:
		return true
	}
	return false
}
