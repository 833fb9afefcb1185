package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mcpserver "github.com/bookhaven/storefront/internal/mcp"
	"github.com/bookhaven/storefront/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"mcp"},
	Short:   "Start the MCP server exposing cart tools on stdio",
	Long: `Starts an MCP server on stdio so AI agents can list, add, remove and
total the items in one profile's cart. Without --profile the cart lives in
memory for the life of the process.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		profileID, _ := cmd.Flags().GetString("profile")

		var slots storage.Storage = storage.NewMemory()
		if profileID != "" {
			database, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer database.Close()
			slots = storage.NewProfile(database, profileID)
		}

		mcpserver.Version = Version
		srv := mcpserver.NewServer(slots, cfg)

		log.Info("bookhaven MCP server starting on stdio",
			zap.String("version", Version),
			zap.String("profile", profileID),
		)
		if err := srv.Serve(); err != nil {
			return fmt.Errorf("mcp server: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("profile", "", "profile id whose stored cart the tools operate on")
	rootCmd.AddCommand(serveCmd)
}
