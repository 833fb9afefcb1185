package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bookhaven/storefront/internal/pages"
	"github.com/bookhaven/storefront/internal/progress"
	"github.com/bookhaven/storefront/internal/site"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Generate the storefront as a static website",
	Long:  `Writes every storefront page with the shared header and footer to a directory of static HTML files.`,
	RunE:  runSite,
}

func init() {
	siteCmd.Flags().Bool("serve", false, "start a local HTTP server after generating")
	siteCmd.Flags().Int("port", 8080, "port for the local dev server")
	siteCmd.Flags().Bool("open", false, "open browser automatically when serving")
	siteCmd.Flags().String("output", "", "override output directory (defaults to output_dir from config)")
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
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

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	generator := site.NewSiteGenerator(
		pages.NewRenderer(cfg, library),
		outputDir,
		filepath.Join(cfg.ContentDir, "images"),
		progress.NewReporter(),
		log,
	)
	pageCount, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d pages)\n", outputDir, pageCount)

	serve, _ := cmd.Flags().GetBool("serve")
	if serve {
		port, _ := cmd.Flags().GetInt("port")
		openBrowser, _ := cmd.Flags().GetBool("open")
		return site.Serve(outputDir, port, openBrowser, log)
	}

	return nil
}
