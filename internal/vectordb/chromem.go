package vectordb

import (
	"context"
	"fmt"

	chromem "github.com/philippgille/chromem-go"

	"github.com/ahmad2493/real-estate-platform/internal/embeddings"
)

const collectionName = "proptech_rag"

// ChromemStore implements Store using chromem-go.
type ChromemStore struct {
	db         *chromem.DB
	collection *chromem.Collection
	embedder   embeddings.Embedder
	embedFunc  chromem.EmbeddingFunc
}

// NewChromemStore creates a new in-memory ChromemStore.
func NewChromemStore(embedder embeddings.Embedder) (*ChromemStore, error) {
	db := chromem.NewDB()
	ef := embeddings.ToChromemFunc(embedder)

	col, err := db.GetOrCreateCollection(collectionName, nil, ef)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	return &ChromemStore{
		db:         db,
		collection: col,
		embedder:   embedder,
		embedFunc:  ef,
	}, nil
}

func (s *ChromemStore) Add(ctx context.Context, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}

	chromemDocs := make([]chromem.Document, len(docs))
	for i, doc := range docs {
		chromemDocs[i] = chromem.Document{
			ID:       doc.ID,
			Content:  doc.Content,
			Metadata: metadataToMap(doc.Metadata),
		}
	}

	return s.collection.AddDocuments(ctx, chromemDocs, 1)
}

func (s *ChromemStore) Search(ctx context.Context, query string, k int, source SourceType) ([]SearchResult, error) {
	if k <= 0 {
		k = 10
	}

	// chromem-go requires nResults <= collection size.
	count := s.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if k > count {
		k = count
	}

	results, err := s.collection.Query(ctx, query, k, whereSource(source), nil)
	if err != nil {
		return nil, fmt.Errorf("chromem query: %w", err)
	}
	return toSearchResults(results), nil
}

func (s *ChromemStore) SearchMMR(ctx context.Context, query string, k, fetchK int, lambda float64, source SourceType) ([]SearchResult, error) {
	if k <= 0 {
		k = 10
	}
	if fetchK < k {
		fetchK = k
	}

	count := s.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if fetchK > count {
		fetchK = count
	}

	queryVecs, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	if len(queryVecs) == 0 {
		return nil, fmt.Errorf("embedder returned no vector for query")
	}
	queryVec := normalize(queryVecs[0])

	candidates, err := s.collection.QueryEmbedding(ctx, queryVec, fetchK, whereSource(source), nil)
	if err != nil {
		return nil, fmt.Errorf("chromem query: %w", err)
	}

	picked := maximalMarginalRelevance(queryVec, candidates, k, float32(lambda))
	return toSearchResults(picked), nil
}

func (s *ChromemStore) DeleteByListingID(ctx context.Context, listingID string) error {
	where := map[string]string{"listing_id": listingID}
	return s.collection.Delete(ctx, where, nil)
}

func (s *ChromemStore) Count() int {
	return s.collection.Count()
}

func (s *ChromemStore) Persist(_ context.Context, dir string) error {
	return s.db.ExportToFile(dir+"/chromem.gob.gz", true, "")
}

func (s *ChromemStore) Load(_ context.Context, dir string) error {
	if err := s.db.ImportFromFile(dir+"/chromem.gob.gz", ""); err != nil {
		return fmt.Errorf("import from file: %w", err)
	}

	// Re-acquire collection reference after import.
	col := s.db.GetCollection(collectionName, s.embedFunc)
	if col == nil {
		return fmt.Errorf("collection %q not found after import", collectionName)
	}
	s.collection = col
	return nil
}

func whereSource(source SourceType) map[string]string {
	if source == "" {
		return nil
	}
	return map[string]string{"source": string(source)}
}

func toSearchResults(results []chromem.Result) []SearchResult {
	out := make([]SearchResult, len(results))
	for i, r := range results {
		out[i] = SearchResult{
			Document: Document{
				ID:       r.ID,
				Content:  r.Content,
				Metadata: mapToMetadata(r.Metadata),
			},
			Similarity: r.Similarity,
		}
	}
	return out
}

// metadataToMap converts Metadata to the flat map[string]string chromem stores.
func metadataToMap(m Metadata) map[string]string {
	md := map[string]string{"source": string(m.Source)}
	if m.ListingID != "" {
		md["listing_id"] = m.ListingID
	}
	if m.Price != "" {
		md["price"] = m.Price
	}
	if m.Category != "" {
		md["category"] = m.Category
	}
	if m.Status != "" {
		md["status"] = m.Status
	}
	return md
}

// mapToMetadata converts a flat map[string]string back to Metadata.
func mapToMetadata(m map[string]string) Metadata {
	return Metadata{
		ListingID: m["listing_id"],
		Price:     m["price"],
		Category:  m["category"],
		Status:    m["status"],
		Source:    SourceType(m["source"]),
	}
}
