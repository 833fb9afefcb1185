package cmd

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/bookhaven/storefront/internal/config"
	"github.com/bookhaven/storefront/internal/content"
	"github.com/bookhaven/storefront/internal/db"
	"github.com/bookhaven/storefront/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `bookhaven init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the process logger from the config level and --verbose.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	log, err := logging.New(cfg.LogLevel, verbose)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return log, nil
}

// databasePath is where profile slots are stored.
func databasePath(cfg *config.Config) string {
	return filepath.Join(cfg.DataDir, "bookhaven.db")
}

// openDatabase opens the profile database under the data directory.
func openDatabase(cfg *config.Config) (*db.DB, error) {
	database, err := db.Open(databasePath(cfg))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return database, nil
}

// loadLibrary renders the markdown page bodies from the content directory.
func loadLibrary(cfg *config.Config) (*content.Library, error) {
	library, err := content.Load(cfg.ContentDir, cfg.Include)
	if err != nil {
		return nil, fmt.Errorf("loading page content: %w", err)
	}
	return library, nil
}
