package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bookhaven/storefront/internal/storage"
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete carts of profiles that have not been active recently",
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

		olderThan, _ := cmd.Flags().GetDuration("older-than")
		if olderThan <= 0 {
			return fmt.Errorf("--older-than must be positive")
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		n, err := storage.PruneBefore(context.Background(), database, time.Now().Add(-olderThan))
		if err != nil {
			return err
		}

		log.Info("pruned stale carts", zap.Int64("rows", n), zap.Duration("older_than", olderThan))
		fmt.Printf("Removed %d stale cart(s)\n", n)
		return nil
	},
}

func init() {
	pruneCmd.Flags().Duration("older-than", 90*24*time.Hour, "remove carts of profiles inactive for this long")
	rootCmd.AddCommand(pruneCmd)
}
