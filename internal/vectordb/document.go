package vectordb

// SourceType tags where an indexed document came from and doubles as the
// retrieval filter for intent-specific searches.
type SourceType string

const (
	SourcePropertyListing SourceType = "property_listing"
	SourceMarketTrends    SourceType = "market_trends"
	SourceLegalFAQ        SourceType = "legal_faq"
)

// ParseSourceType maps a raw string to a known SourceType.
func ParseSourceType(s string) (SourceType, bool) {
	switch SourceType(s) {
	case SourcePropertyListing, SourceMarketTrends, SourceLegalFAQ:
		return SourceType(s), true
	}
	return "", false
}

// Document represents a (text, metadata) pair stored in the vector index.
type Document struct {
	ID       string
	Content  string
	Metadata Metadata
}

// Metadata holds the structured fields attached to an indexed document.
// ListingID matches the originating listing's identifier, enabling targeted
// delete and update; it is empty for PDF-derived chunks.
type Metadata struct {
	ListingID string
	Price     string
	Category  string
	Status    string
	Source    SourceType
}

// SearchResult pairs a document with its similarity score.
type SearchResult struct {
	Document   Document
	Similarity float32
}
