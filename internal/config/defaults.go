package config

// DefaultAllowedOrigins are the frontend origins permitted by default.
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// DefaultLeaseRoles are the caller roles permitted to generate lease agreements.
var DefaultLeaseRoles = []string{"landlord", "agent", "admin"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:       ProviderOpenAI,
		Model:          "gpt-4o-mini",
		ExpansionModel: "gpt-3.5-turbo",
		EmbeddingModel: "text-embedding-3-large",
		Mongo: MongoConfig{
			URI:        "mongodb://localhost:27017",
			Database:   "realestate",
			Collection: "properties",
		},
		VectorDir: "chroma_db",
		Server: ServerConfig{
			Port:           8000,
			AllowedOrigins: DefaultAllowedOrigins,
			RatePerMinute:  60,
		},
		Retrieval: RetrievalConfig{
			RecommendK:      10,
			RecommendLambda: 0.5,
			FetchK:          40,
			KnowledgeK:      5,
			QueryVariants:   3,
		},
		Chunking: ChunkingConfig{
			MarketTrendsSize: 2000,
			LegalFAQSize:     1500,
			DefaultSize:      1000,
			DefaultOverlap:   100,
		},
		Lease: LeaseConfig{
			AllowedRoles: DefaultLeaseRoles,
		},
	}
}
