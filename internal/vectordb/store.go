package vectordb

import "context"

// Store defines the interface for the embedding-backed document index.
type Store interface {
	// Add inserts documents into the index. Existing documents with the
	// same ID are replaced by the underlying index.
	Add(ctx context.Context, docs []Document) error

	// Search performs a similarity search restricted to the given source,
	// ordered by relevance.
	Search(ctx context.Context, query string, k int, source SourceType) ([]SearchResult, error)

	// SearchMMR performs a maximal-marginal-relevance search: fetchK
	// candidates are retrieved by similarity, then k results are selected
	// balancing relevance against diversity. lambda in [0,1]; higher
	// weights relevance, lower weights diversity.
	SearchMMR(ctx context.Context, query string, k, fetchK int, lambda float64, source SourceType) ([]SearchResult, error)

	// DeleteByListingID removes every document whose metadata listing id
	// matches.
	DeleteByListingID(ctx context.Context, listingID string) error

	// Count returns the total number of indexed documents.
	Count() int

	// Persist saves the index to the given directory.
	Persist(ctx context.Context, dir string) error

	// Load restores the index from the given directory.
	Load(ctx context.Context, dir string) error
}
