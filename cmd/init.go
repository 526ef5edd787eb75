package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ahmad2493/real-estate-platform/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize estatify configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the assistant and writes a .estatify.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
