package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "bookhaven",
	Short: "Book Haven bookstore storefront",
	Long: `Book Haven serves the bookstore's pages with a shared header and footer,
keeps a shopping cart per browser profile, and handles the newsletter and
contact forms. It can also write the pages out as a static site and expose
the cart to AI agents via MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".bookhaven.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
