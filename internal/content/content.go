// Package content loads the markdown bodies of the informational pages.
package content

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/bookhaven/storefront/internal/walker"
)

// Library maps page file names ("about.html") to rendered bodies.
type Library struct {
	md     goldmark.Markdown
	bodies map[string]template.HTML
}

// NewMarkdown returns the goldmark instance used for page bodies. Raw HTML in
// the source is not passed through.
func NewMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
}

// Defaults returns a library holding only the built-in page bodies.
func Defaults() *Library {
	l := &Library{md: NewMarkdown(), bodies: make(map[string]template.HTML)}
	for file, src := range defaultPages {
		// Built-in sources are known to convert.
		body, _ := l.convert([]byte(src))
		l.bodies[file] = body
	}
	return l
}

// Load renders every markdown file under dir that matches one of the include
// patterns, on top of the built-in bodies. Files are applied in path order, so
// when two share a base name the later path wins. "about.md" becomes "about.html".
// A missing dir yields the defaults.
func Load(dir string, include []string) (*Library, error) {
	l := Defaults()
	if dir == "" {
		return l, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return l, nil
	}

	files, err := walker.Walk(walker.WalkerConfig{
		RootDir:    dir,
		Include:    include,
		Extensions: []string{".md"},
	})
	if err != nil {
		return nil, fmt.Errorf("loading content from %s: %w", dir, err)
	}

	for _, f := range files {
		src, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.RelPath, err)
		}
		body, err := l.convert(src)
		if err != nil {
			return nil, fmt.Errorf("converting %s: %w", f.RelPath, err)
		}
		l.bodies[PageFile(f.RelPath)] = body
	}
	return l, nil
}

// Body returns the rendered body of a page file.
func (l *Library) Body(file string) (template.HTML, bool) {
	b, ok := l.bodies[strings.ToLower(file)]
	return b, ok
}

// Len returns the number of page bodies.
func (l *Library) Len() int { return len(l.bodies) }

// PageFile maps a markdown path to the page file name it provides.
func PageFile(rel string) string {
	base := strings.ToLower(filepath.Base(filepath.FromSlash(rel)))
	return strings.TrimSuffix(base, ".md") + ".html"
}

func (l *Library) convert(src []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := l.md.Convert(src, &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
