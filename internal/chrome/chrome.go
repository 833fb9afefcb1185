// Package chrome builds the header and footer shared by every storefront page.
package chrome

import (
	"bytes"
	"fmt"
	"html/template"
	"path"
	"strings"

	"github.com/bookhaven/storefront/internal/menu"
)

// NavLink is one entry of the site navigation.
type NavLink struct {
	Href  string
	Label string
}

// Pages is the navigation list, in display order.
var Pages = []NavLink{
	{Href: "./products.html", Label: "Products"},
	{Href: "./cart.html", Label: "Cart"},
	{Href: "./contact.html", Label: "Contact Us"},
	{Href: "./community.html", Label: "Community"},
	{Href: "./about.html", Label: "About Us"},
}

// Builder renders the page chrome for one store.
type Builder struct {
	StoreName string
	LogoPath  string
	Pages     []NavLink
}

// NewBuilder returns a Builder using the default navigation list.
func NewBuilder(storeName, logoPath string) *Builder {
	return &Builder{StoreName: storeName, LogoPath: logoPath, Pages: Pages}
}

// CurrentFileName returns the lowercased last segment of urlPath, or
// "index.html" when the path names a directory.
func CurrentFileName(urlPath string) string {
	file := path.Base("/" + urlPath)
	if file == "/" || file == "." || strings.HasSuffix(urlPath, "/") {
		file = "index.html"
	}
	return strings.ToLower(file)
}

// IsActive reports whether link points at the page currentFile.
func IsActive(link NavLink, currentFile string) bool {
	return strings.ToLower(strings.Replace(link.Href, "./", "", 1)) == currentFile
}

type headerData struct {
	StoreName  string
	LogoPath   string
	Links      template.HTML
	MenuOpen   bool
	ToggleHref string
}

// Header returns the header markup for the page at urlPath. The link whose
// page matches urlPath carries the is-active class.
func (b *Builder) Header(urlPath string, m *menu.Controller) template.HTML {
	current := CurrentFileName(urlPath)

	var links strings.Builder
	for _, p := range b.Pages {
		cls := "menu-link"
		if IsActive(p, current) {
			cls = "menu-link is-active"
		}
		fmt.Fprintf(&links, `<a class="%s" href="%s">%s</a>`, cls, EscapeHTML(p.Href), EscapeHTML(p.Label))
	}

	toggle := "./" + current
	if m.Toggled() == menu.Open {
		toggle += "?menu=" + menu.Open.String()
	}

	return render(headerTemplate, headerData{
		StoreName:  b.StoreName,
		LogoPath:   b.LogoPath,
		Links:      template.HTML(links.String()),
		MenuOpen:   m.IsOpen(),
		ToggleHref: toggle,
	})
}

// FooterState drives the subscribe area of the footer.
type FooterState struct {
	// Subscribed hides the form and shows the thank-you line.
	Subscribed bool
	// Refocus puts the cursor back in the email field after a rejected submit.
	Refocus bool
	// Page is the file the form returns to after submitting.
	Page string
}

// Footer returns the footer markup.
func (b *Builder) Footer(st FooterState) template.HTML {
	if st.Page == "" {
		st.Page = "index.html"
	}
	return render(footerTemplate, st)
}

// EscapeHTML escapes s for use in element content and quoted attributes.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

func render(t *template.Template, data any) template.HTML {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("chrome: executing %s: %v", t.Name(), err))
	}
	return template.HTML(buf.String())
}
