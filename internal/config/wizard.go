package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .estatify.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to Estatify! Let's configure the RAG backend.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Provider selection.
	providerPrompt := promptui.Select{
		Label: "Select LLM provider",
		Items: []string{"openai", "ollama"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.Provider = ProviderType(providerStr)
	if cfg.Provider == ProviderOllama {
		cfg.Model = "llama3"
		cfg.ExpansionModel = "llama3"
		cfg.EmbeddingModel = "nomic-embed-text"
	}

	// 2. MongoDB connection.
	mongoPrompt := promptui.Prompt{
		Label:   "MongoDB URI",
		Default: cfg.Mongo.URI,
	}
	if cfg.Mongo.URI, err = mongoPrompt.Run(); err != nil {
		return nil, fmt.Errorf("mongo uri: %w", err)
	}

	dbPrompt := promptui.Prompt{
		Label:   "MongoDB database",
		Default: cfg.Mongo.Database,
	}
	if cfg.Mongo.Database, err = dbPrompt.Run(); err != nil {
		return nil, fmt.Errorf("mongo database: %w", err)
	}

	// 3. Vector store directory.
	vecPrompt := promptui.Prompt{
		Label:   "Vector store directory",
		Default: cfg.VectorDir,
	}
	if cfg.VectorDir, err = vecPrompt.Run(); err != nil {
		return nil, fmt.Errorf("vector dir: %w", err)
	}

	// 4. API port.
	portPrompt := promptui.Prompt{
		Label:   "API server port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(".estatify.yml"); err != nil {
		return nil, err
	}
	fmt.Println("\nConfiguration saved to .estatify.yml")

	return cfg, nil
}
