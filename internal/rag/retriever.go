package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/ahmad2493/real-estate-platform/internal/config"
	"github.com/ahmad2493/real-estate-platform/internal/llm"
	"github.com/ahmad2493/real-estate-platform/internal/vectordb"
)

// Retriever selects a search strategy by classified intent: MMR over
// property listings for recommendations, multi-query expansion for market
// trends and legal FAQ content.
type Retriever struct {
	store          vectordb.Store
	provider       llm.Provider
	expansionModel string
	cfg            config.RetrievalConfig
}

// NewRetriever creates a retriever over the given store. provider and
// expansionModel are used only for multi-query paraphrase generation.
func NewRetriever(store vectordb.Store, provider llm.Provider, expansionModel string, cfg config.RetrievalConfig) *Retriever {
	return &Retriever{
		store:          store,
		provider:       provider,
		expansionModel: expansionModel,
		cfg:            cfg,
	}
}

// Retrieve returns documents relevant to the query, ordered by relevance.
// Intents without a retrieval strategy yield no documents and no error.
func (r *Retriever) Retrieve(ctx context.Context, query string, intent Intent) ([]vectordb.Document, error) {
	switch intent {
	case IntentPropertyRecommendation:
		return r.recommendProperties(ctx, query)
	case IntentMarketTrends:
		return r.searchKnowledge(ctx, query, vectordb.SourceMarketTrends)
	case IntentLegalFAQ:
		return r.searchKnowledge(ctx, query, vectordb.SourceLegalFAQ)
	default:
		return nil, nil
	}
}

func (r *Retriever) recommendProperties(ctx context.Context, query string) ([]vectordb.Document, error) {
	results, err := r.store.SearchMMR(ctx, query,
		r.cfg.RecommendK, r.cfg.FetchK, r.cfg.RecommendLambda,
		vectordb.SourcePropertyListing)
	if err != nil {
		return nil, fmt.Errorf("property recommendation search: %w", err)
	}
	return documents(results), nil
}

// searchKnowledge runs multi-query expansion: the original query plus LLM
// paraphrases are each searched with the source filter, and results are
// merged with first-seen ordering, deduplicated by document ID.
func (r *Retriever) searchKnowledge(ctx context.Context, query string, source vectordb.SourceType) ([]vectordb.Document, error) {
	queries := append([]string{query}, r.expandQuery(ctx, query)...)

	seen := make(map[string]bool)
	var merged []vectordb.Document
	for _, q := range queries {
		results, err := r.store.Search(ctx, q, r.cfg.KnowledgeK, source)
		if err != nil {
			return nil, fmt.Errorf("searching %s: %w", source, err)
		}
		for _, res := range results {
			if seen[res.Document.ID] {
				continue
			}
			seen[res.Document.ID] = true
			merged = append(merged, res.Document)
		}
	}
	return merged, nil
}

// expandQuery asks the expansion model for paraphrases. Malformed or failed
// expansion degrades to searching with the original query alone.
func (r *Retriever) expandQuery(ctx context.Context, query string) []string {
	prompt := fmt.Sprintf(expansionPromptTemplate, r.cfg.QueryVariants, query)

	raw, err := llm.Prompt(ctx, r.provider, r.expansionModel, prompt, 0.7)
	if err != nil {
		return nil
	}

	var variants []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "0123456789.-) ")
		if line == "" || line == query {
			continue
		}
		variants = append(variants, line)
		if len(variants) == r.cfg.QueryVariants {
			break
		}
	}
	return variants
}

func documents(results []vectordb.SearchResult) []vectordb.Document {
	docs := make([]vectordb.Document, len(results))
	for i, res := range results {
		docs[i] = res.Document
	}
	return docs
}
