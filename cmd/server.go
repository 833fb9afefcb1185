package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bookhaven/storefront/internal/message"
	"github.com/bookhaven/storefront/internal/server"
	"github.com/bookhaven/storefront/internal/storefront"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the storefront HTTP server",
	Long:  `Serves the storefront pages, cart actions, forms and the cart status stream.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = serverPort
		}

		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		library, err := loadLibrary(cfg)
		if err != nil {
			return err
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		}, database, log)

		displays := message.NewRegistry(message.SystemClock{})
		sf := storefront.New(cfg, database, library, displays, log)
		sf.RegisterRoutes(srv.Router())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			log.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("shutdown", zap.Error(err))
			}
			log.Info("server stopped", zap.Int("status_lines", displays.Len()))
		}()

		log.Info("bookhaven server starting",
			zap.String("version", Version),
			zap.String("store", cfg.StoreName),
			zap.Int("port", cfg.Port),
			zap.String("database", database.Path()),
			zap.Int("pages", library.Len()),
			zap.Int("products", len(cfg.Products)),
		)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
