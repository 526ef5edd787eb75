package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/ahmad2493/real-estate-platform/internal/config"
	"github.com/ahmad2493/real-estate-platform/internal/embeddings"
	"github.com/ahmad2493/real-estate-platform/internal/vectordb"
)

func createEmbedderFromConfig(cfg *config.Config) (embeddings.Embedder, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
		}
		return embeddings.NewOpenAIEmbedder(apiKey, embeddings.OpenAIModel(cfg.EmbeddingModel)), nil

	case config.ProviderOllama:
		host := os.Getenv("OLLAMA_HOST")
		if host == "" {
			host = "http://localhost:11434"
		}
		// nomic-embed-text and friends emit 768-dim vectors.
		return embeddings.NewOllamaEmbedder(cfg.EmbeddingModel, 768, host), nil

	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}

// openVectorStore creates the chromem store and loads any persisted index
// from the configured directory. A missing index is a warning, not an error;
// the index fills on the first sync.
func openVectorStore(ctx context.Context, cfg *config.Config, embedder embeddings.Embedder) (*vectordb.ChromemStore, error) {
	store, err := vectordb.NewChromemStore(embedder)
	if err != nil {
		return nil, fmt.Errorf("creating vector store: %w", err)
	}

	if err := store.Load(ctx, cfg.VectorDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load vector index from %s: %v\n", cfg.VectorDir, err)
		fmt.Fprintf(os.Stderr, "The index is empty until `estatify sync` or `estatify ingest` runs.\n")
	}
	return store, nil
}
