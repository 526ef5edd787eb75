package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "estatify",
	Short: "Retrieval-augmented assistant backend for a real estate platform",
	Long: `Estatify serves a retrieval-augmented assistant over a property listing
database: it classifies incoming questions, retrieves matching listings,
market reports, or legal FAQ passages from a vector index, answers from
that context, and generates lease agreement PDFs on demand.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".estatify.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
