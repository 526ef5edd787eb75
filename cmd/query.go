package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ahmad2493/real-estate-platform/internal/config"
	"github.com/ahmad2493/real-estate-platform/internal/llm"
	"github.com/ahmad2493/real-estate-platform/internal/rag"
)

var queryCmd = &cobra.Command{
	Use:   "query [question]",
	Short: "Ask the assistant a one-shot question from the terminal",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		ctx := context.Background()

		embedder, err := createEmbedderFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating embedder: %w", err)
		}
		store, err := openVectorStore(ctx, cfg, embedder)
		if err != nil {
			return err
		}

		provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
		if err != nil {
			return fmt.Errorf("creating LLM provider: %w", err)
		}

		// No lease flow: lease generation needs an identified caller,
		// which the one-shot terminal path does not have.
		pipeline := rag.NewPipeline(
			rag.NewClassifier(provider, cfg.Model),
			rag.NewRetriever(store, provider, cfg.ExpansionModel, cfg.Retrieval),
			rag.NewAugmenter(provider, cfg.Model),
			nil,
		)

		result, err := pipeline.Query(ctx, question, nil, rag.User{})
		if err != nil {
			return err
		}

		if verbose {
			fmt.Printf("[%s]\n", result.Intent)
		}
		fmt.Println(result.Answer)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
