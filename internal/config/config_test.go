package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("expected default model, got %q", cfg.Model)
	}
	if cfg.Chunking.MarketTrendsSize != 2000 {
		t.Errorf("expected market trends chunk size 2000, got %d", cfg.Chunking.MarketTrendsSize)
	}
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".estatify.yml")
	content := `
model: gpt-4o
mongo:
  database: proptech
retrieval:
  recommend_k: 5
  fetch_k: 20
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("expected model gpt-4o, got %q", cfg.Model)
	}
	if cfg.Mongo.Database != "proptech" {
		t.Errorf("expected database proptech, got %q", cfg.Mongo.Database)
	}
	if cfg.Retrieval.RecommendK != 5 {
		t.Errorf("expected recommend_k 5, got %d", cfg.Retrieval.RecommendK)
	}
	// Untouched keys keep their defaults.
	if cfg.Mongo.Collection != "properties" {
		t.Errorf("expected default collection, got %q", cfg.Mongo.Collection)
	}
}

func TestLoadEnvOverlay(t *testing.T) {
	t.Setenv("ESTATIFY_MODEL", "gpt-4")
	t.Setenv("ESTATIFY_VECTOR_DIR", "/tmp/vectors")
	t.Setenv("ESTATIFY_MONGO__DATABASE", "proptech")
	t.Setenv("ESTATIFY_SERVER__RATE_PER_MINUTE", "120")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != "gpt-4" {
		t.Errorf("expected env model override, got %q", cfg.Model)
	}
	// Leaf keys containing underscores must stay addressable.
	if cfg.VectorDir != "/tmp/vectors" {
		t.Errorf("expected env vector_dir override, got %q", cfg.VectorDir)
	}
	// Double underscore crosses section boundaries.
	if cfg.Mongo.Database != "proptech" {
		t.Errorf("expected env mongo.database override, got %q", cfg.Mongo.Database)
	}
	if cfg.Server.RatePerMinute != 120 {
		t.Errorf("expected env rate_per_minute override, got %d", cfg.Server.RatePerMinute)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown provider", func(c *Config) { c.Provider = "watson" }, "invalid provider"},
		{"missing model", func(c *Config) { c.Model = "" }, "model is required"},
		{"missing mongo uri", func(c *Config) { c.Mongo.URI = "" }, "mongo.uri"},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"lambda out of range", func(c *Config) { c.Retrieval.RecommendLambda = 1.5 }, "recommend_lambda"},
		{"fetch_k below recommend_k", func(c *Config) { c.Retrieval.FetchK = 2 }, "fetch_k"},
		{"overlap too large", func(c *Config) { c.Chunking.DefaultOverlap = 1000 }, "default_overlap"},
		{"no lease roles", func(c *Config) { c.Lease.AllowedRoles = nil }, "allowed_roles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yml")

	cfg := DefaultConfig()
	cfg.Model = "gpt-4o"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Model != "gpt-4o" {
		t.Errorf("expected saved model to round-trip, got %q", loaded.Model)
	}
}
