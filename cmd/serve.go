package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ahmad2493/real-estate-platform/internal/config"
	"github.com/ahmad2493/real-estate-platform/internal/lease"
	"github.com/ahmad2493/real-estate-platform/internal/listings"
	"github.com/ahmad2493/real-estate-platform/internal/llm"
	"github.com/ahmad2493/real-estate-platform/internal/rag"
	"github.com/ahmad2493/real-estate-platform/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the assistant API server",
	Long: `Starts the HTTP server exposing the assistant API: query answering,
listing index sync, PDF ingestion, lease generation, and the chat WebSocket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if servePort != 0 {
			cfg.Server.Port = servePort
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

		source, err := listings.ConnectMongo(ctx, cfg.Mongo)
		if err != nil {
			return fmt.Errorf("connecting to listings database: %w", err)
		}
		defer source.Close(context.Background())

		leaseGen := lease.NewGenerator(provider, cfg.Model, cfg.Lease.AllowedRoles)
		pipeline := rag.NewPipeline(
			rag.NewClassifier(provider, cfg.Model),
			rag.NewRetriever(store, provider, cfg.ExpansionModel, cfg.Retrieval),
			rag.NewAugmenter(provider, cfg.Model),
			lease.NewFlow(leaseGen),
		)
		syncer := rag.NewSyncer(source, store, cfg.Chunking, nil)

		srv := server.New(cfg.Server, pipeline, syncer, leaseGen, store, cfg.VectorDir)

		// Graceful shutdown.
		sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-sigCtx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "estatify server v%s starting on port %d\n", Version, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Listings: %s/%s\n", cfg.Mongo.Database, cfg.Mongo.Collection)
		fmt.Fprintf(os.Stderr, "  Documents indexed: %d\n", store.Count())

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
