package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ahmad2493/real-estate-platform/internal/config"
	"github.com/ahmad2493/real-estate-platform/internal/listings"
	"github.com/ahmad2493/real-estate-platform/internal/progress"
	"github.com/ahmad2493/real-estate-platform/internal/rag"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Rebuild the vector index from the listings database",
	Long: `Loads every listing from MongoDB, renders each into a searchable
document, and writes the resulting vector index to disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		source, err := listings.ConnectMongo(ctx, cfg.Mongo)
		if err != nil {
			return fmt.Errorf("connecting to listings database: %w", err)
		}
		defer source.Close(context.Background())

		all, err := source.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("loading listings: %w", err)
		}

		syncer := rag.NewSyncer(source, store, cfg.Chunking, nil)

		reporter := progress.NewReporter()
		reporter.Start(len(all))
		for i, l := range all {
			if err := syncer.SyncOne(ctx, l); err != nil {
				return fmt.Errorf("syncing listing %s: %w", l.Hex(), err)
			}
			reporter.Update(i+1, l.Title)
		}
		reporter.Finish()

		if err := store.Persist(ctx, cfg.VectorDir); err != nil {
			return fmt.Errorf("persisting vector index: %w", err)
		}

		fmt.Fprintf(os.Stderr, "Synced %d listings, %d documents indexed (%s)\n",
			len(all), store.Count(), cfg.VectorDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
