package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bookhaven/storefront/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize bookhaven configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the storefront and writes the config file (.bookhaven.yml by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
