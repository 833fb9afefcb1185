package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bookhaven/storefront/internal/config"
	"github.com/bookhaven/storefront/internal/content"
	"github.com/bookhaven/storefront/internal/pages"
)

type recordingReporter struct {
	total    int
	messages []string
	finished bool
}

func (r *recordingReporter) Start(total int)              { r.total = total }
func (r *recordingReporter) Update(_ int, message string) { r.messages = append(r.messages, message) }
func (r *recordingReporter) Finish()                      { r.finished = true }

func newGenerator(t *testing.T, assets string) (*SiteGenerator, *recordingReporter, string) {
	t.Helper()
	out := filepath.Join(t.TempDir(), "public")
	rep := &recordingReporter{}
	renderer := pages.NewRenderer(config.DefaultConfig(), content.Defaults())
	return NewSiteGenerator(renderer, out, assets, rep, nil), rep, out
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestGenerate(t *testing.T) {
	g, rep, out := newGenerator(t, "")

	n, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if n != len(pages.Files()) {
		t.Errorf("generated %d pages, want %d", n, len(pages.Files()))
	}

	for _, file := range pages.Files() {
		if _, err := os.Stat(filepath.Join(out, file)); err != nil {
			t.Errorf("missing %s: %v", file, err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "style.css")); err != nil {
		t.Errorf("missing style.css: %v", err)
	}

	if rep.total != n || len(rep.messages) != n || !rep.finished {
		t.Errorf("reporter = %+v", rep)
	}
}

func TestGeneratedPagesHaveChrome(t *testing.T) {
	g, _, out := newGenerator(t, "")
	g.Format = false
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	about := readFile(t, filepath.Join(out, "about.html"))
	if !strings.Contains(about, `<a class="menu-link is-active" href="./about.html">About Us</a>`) {
		t.Error("about.html should mark its own link active")
	}
	if strings.Count(about, "is-active") != 1 {
		t.Error("exactly one link should be active")
	}
	if !strings.Contains(about, `id="subscribeForm"`) {
		t.Error("footer subscribe form missing")
	}

	cart := readFile(t, filepath.Join(out, "cart.html"))
	if !strings.Contains(cart, `<span id="cartTotal">$0.00</span>`) {
		t.Error("static cart should render the empty total")
	}
	if strings.Contains(cart, "/ws/cart-status") {
		t.Error("static cart should not open the status stream")
	}

	index := readFile(t, filepath.Join(out, "index.html"))
	if strings.Contains(index, "is-active") {
		t.Error("index.html should not mark any link active")
	}
}

func TestGenerateFormatted(t *testing.T) {
	g, _, out := newGenerator(t, "")
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	index := readFile(t, filepath.Join(out, "index.html"))
	if !strings.Contains(index, "\n  <") {
		t.Error("expected indented output")
	}
}

func TestGenerateCopiesAssets(t *testing.T) {
	assets := t.TempDir()
	if err := os.WriteFile(filepath.Join(assets, "book_logo.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	g, _, out := newGenerator(t, assets)
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if got := readFile(t, filepath.Join(out, "images", "book_logo.png")); got != "png" {
		t.Errorf("copied asset = %q", got)
	}
}
