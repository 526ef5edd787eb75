package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/ahmad2493/real-estate-platform/internal/config"
	"github.com/ahmad2493/real-estate-platform/internal/rag"
	"github.com/ahmad2493/real-estate-platform/internal/vectordb"
)

var ingestSource string

var ingestCmd = &cobra.Command{
	Use:   "ingest [patterns...]",
	Short: "Chunk and index PDF documents",
	Long: `Extracts text from PDF files, splits it into chunks sized for the
document category, and adds the chunks to the vector index. Patterns
support doublestar globs, e.g. "reports/**/*.pdf".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, ok := vectordb.ParseSourceType(ingestSource)
		if !ok {
			return fmt.Errorf("unknown source type %q (want %s, %s, or %s)",
				ingestSource, vectordb.SourcePropertyListing, vectordb.SourceMarketTrends, vectordb.SourceLegalFAQ)
		}

		paths, err := expandPatterns(args)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("no PDF files match the given patterns")
		}

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

		syncer := rag.NewSyncer(nil, store, cfg.Chunking, nil)
		count, err := syncer.IngestPDFs(ctx, paths, source)
		if err != nil {
			return fmt.Errorf("ingesting PDFs: %w", err)
		}

		if err := store.Persist(ctx, cfg.VectorDir); err != nil {
			return fmt.Errorf("persisting vector index: %w", err)
		}

		fmt.Fprintf(os.Stderr, "Indexed %d chunks from %d files (%s)\n", count, len(paths), cfg.VectorDir)
		return nil
	},
}

// expandPatterns resolves doublestar globs against the filesystem. Literal
// paths pass through untouched so a named file that does not exist fails at
// read time with a useful error instead of silently matching nothing.
func expandPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		if !hasGlobMeta(pattern) {
			if !seen[pattern] {
				seen[pattern] = true
				paths = append(paths, pattern)
			}
			continue
		}

		base, rest := doublestar.SplitPattern(filepath.ToSlash(pattern))
		matches, err := doublestar.Glob(os.DirFS(base), rest)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			full := filepath.Join(base, m)
			if !seen[full] {
				seen[full] = true
				paths = append(paths, full)
			}
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func hasGlobMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

func init() {
	ingestCmd.Flags().StringVar(&ingestSource, "source", string(vectordb.SourceLegalFAQ),
		"document category: market_trends or legal_faq")
	rootCmd.AddCommand(ingestCmd)
}
