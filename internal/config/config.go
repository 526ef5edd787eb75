package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (ESTATIFY_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables. Double underscore nests
	// (ESTATIFY_MONGO__URI -> mongo.uri); single underscores stay literal
	// so leaf keys like vector_dir remain addressable.
	if err := k.Load(env.Provider("ESTATIFY_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "ESTATIFY_")), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validProviders is the set of recognized provider values.
var validProviders = map[ProviderType]bool{
	ProviderOpenAI: true,
	ProviderOllama: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Provider == "" {
		return fmt.Errorf("provider is required")
	}
	if !validProviders[c.Provider] {
		return fmt.Errorf("invalid provider %q: must be one of openai, ollama", c.Provider)
	}
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if c.EmbeddingModel == "" {
		return fmt.Errorf("embedding_model is required")
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo.uri is required")
	}
	if c.Mongo.Database == "" || c.Mongo.Collection == "" {
		return fmt.Errorf("mongo.database and mongo.collection are required")
	}
	if c.VectorDir == "" {
		return fmt.Errorf("vector_dir is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if c.Server.RatePerMinute < 0 {
		return fmt.Errorf("server.rate_per_minute must be non-negative")
	}
	if c.Retrieval.RecommendK <= 0 || c.Retrieval.KnowledgeK <= 0 {
		return fmt.Errorf("retrieval result counts must be positive")
	}
	if c.Retrieval.RecommendLambda < 0 || c.Retrieval.RecommendLambda > 1 {
		return fmt.Errorf("retrieval.recommend_lambda must be between 0 and 1")
	}
	if c.Retrieval.FetchK < c.Retrieval.RecommendK {
		return fmt.Errorf("retrieval.fetch_k must be at least recommend_k")
	}
	if c.Retrieval.QueryVariants <= 0 {
		return fmt.Errorf("retrieval.query_variants must be positive")
	}
	if c.Chunking.DefaultSize <= 0 || c.Chunking.MarketTrendsSize <= 0 || c.Chunking.LegalFAQSize <= 0 {
		return fmt.Errorf("chunking sizes must be positive")
	}
	if c.Chunking.DefaultOverlap < 0 || c.Chunking.DefaultOverlap >= c.Chunking.DefaultSize {
		return fmt.Errorf("chunking.default_overlap must be non-negative and smaller than default_size")
	}
	if len(c.Lease.AllowedRoles) == 0 {
		return fmt.Errorf("lease.allowed_roles must not be empty")
	}
	return nil
}
