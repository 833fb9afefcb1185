package site

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yosssi/gohtml"
	"go.uber.org/zap"

	"github.com/bookhaven/storefront/internal/pages"
	"github.com/bookhaven/storefront/internal/progress"
)

// SiteGenerator writes the storefront pages as static HTML. Pages are
// rendered for a fresh visitor: empty cart, pending forms, closed menu.
type SiteGenerator struct {
	OutputDir string
	// AssetsDir is copied to OutputDir/images when it exists.
	AssetsDir string
	// Format pretty-prints each page.
	Format bool

	renderer *pages.Renderer
	reporter progress.Reporter
	log      *zap.Logger
}

// NewSiteGenerator creates a SiteGenerator writing to outputDir.
func NewSiteGenerator(renderer *pages.Renderer, outputDir, assetsDir string, reporter progress.Reporter, log *zap.Logger) *SiteGenerator {
	if reporter == nil {
		reporter = progress.Nop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SiteGenerator{
		OutputDir: outputDir,
		AssetsDir: assetsDir,
		Format:    true,
		renderer:  renderer,
		reporter:  reporter,
		log:       log,
	}
}

// Generate builds the static site. Returns the number of pages generated.
func (g *SiteGenerator) Generate() (int, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(pages.Stylesheet), 0o644); err != nil {
		return 0, err
	}

	files := pages.Files()
	g.reporter.Start(len(files))
	for i, file := range files {
		if err := g.renderPage(file); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", file, err)
		}
		g.reporter.Update(i+1, file)
	}
	g.reporter.Finish()

	copied, err := copyTree(g.AssetsDir, filepath.Join(g.OutputDir, "images"))
	if err != nil {
		return 0, fmt.Errorf("copying assets: %w", err)
	}
	g.log.Info("site generated",
		zap.String("output", g.OutputDir),
		zap.Int("pages", len(files)),
		zap.Int("assets", copied),
	)

	return len(files), nil
}

// renderPage renders one page file into the output directory.
func (g *SiteGenerator) renderPage(file string) error {
	var buf bytes.Buffer
	if err := g.renderer.Render(&buf, pages.State{File: file}); err != nil {
		return err
	}

	out := buf.Bytes()
	if g.Format {
		out = gohtml.FormatBytes(out)
	}
	return os.WriteFile(filepath.Join(g.OutputDir, file), out, 0o644)
}

// copyTree copies every regular file under src into dst. A missing src
// copies nothing.
func copyTree(src, dst string) (int, error) {
	if src == "" {
		return 0, nil
	}
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return 0, nil
	}

	count := 0
	err := filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if err := copyFile(path, filepath.Join(dst, rel)); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
