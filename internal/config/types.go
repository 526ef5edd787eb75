package config

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderOllama ProviderType = "ollama"
)

// Config is the top-level Estatify configuration, corresponding to .estatify.yml.
type Config struct {
	Provider       ProviderType `yaml:"provider" koanf:"provider"`
	Model          string       `yaml:"model" koanf:"model"`
	ExpansionModel string       `yaml:"expansion_model" koanf:"expansion_model"`
	EmbeddingModel string       `yaml:"embedding_model" koanf:"embedding_model"`

	Mongo     MongoConfig     `yaml:"mongo" koanf:"mongo"`
	VectorDir string          `yaml:"vector_dir" koanf:"vector_dir"`
	Server    ServerConfig    `yaml:"server" koanf:"server"`
	Retrieval RetrievalConfig `yaml:"retrieval" koanf:"retrieval"`
	Chunking  ChunkingConfig  `yaml:"chunking" koanf:"chunking"`
	Lease     LeaseConfig     `yaml:"lease" koanf:"lease"`
}

// MongoConfig locates the property listing collection.
type MongoConfig struct {
	URI        string `yaml:"uri" koanf:"uri"`
	Database   string `yaml:"database" koanf:"database"`
	Collection string `yaml:"collection" koanf:"collection"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Port           int      `yaml:"port" koanf:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
	AllowAll       bool     `yaml:"allow_all" koanf:"allow_all"`
	RatePerMinute  int      `yaml:"rate_per_minute" koanf:"rate_per_minute"`
}

// RetrievalConfig tunes the two retrieval strategies.
type RetrievalConfig struct {
	// RecommendK is the result count for property recommendation searches.
	RecommendK int `yaml:"recommend_k" koanf:"recommend_k"`
	// RecommendLambda trades relevance against diversity in MMR re-ranking.
	// Higher values weight relevance, lower values weight diversity.
	RecommendLambda float64 `yaml:"recommend_lambda" koanf:"recommend_lambda"`
	// FetchK is the candidate pool size fetched before MMR re-ranking.
	FetchK int `yaml:"fetch_k" koanf:"fetch_k"`
	// KnowledgeK is the per-paraphrase result count for market trends and
	// legal FAQ searches.
	KnowledgeK int `yaml:"knowledge_k" koanf:"knowledge_k"`
	// QueryVariants is how many paraphrases multi-query expansion generates.
	QueryVariants int `yaml:"query_variants" koanf:"query_variants"`
}

// ChunkingConfig controls PDF text splitting per source type.
type ChunkingConfig struct {
	MarketTrendsSize int `yaml:"market_trends_size" koanf:"market_trends_size"`
	LegalFAQSize     int `yaml:"legal_faq_size" koanf:"legal_faq_size"`
	DefaultSize      int `yaml:"default_size" koanf:"default_size"`
	DefaultOverlap   int `yaml:"default_overlap" koanf:"default_overlap"`
}

// LeaseConfig holds lease generation settings.
type LeaseConfig struct {
	// AllowedRoles is the set of caller roles permitted to generate lease
	// agreements.
	AllowedRoles []string `yaml:"allowed_roles" koanf:"allowed_roles"`
}
