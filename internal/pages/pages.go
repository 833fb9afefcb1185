// Package pages renders complete storefront documents: the shared chrome
// around a page body.
package pages

import (
	"fmt"
	"html/template"
	"io"

	"github.com/bookhaven/storefront/internal/cartpage"
	"github.com/bookhaven/storefront/internal/chrome"
	"github.com/bookhaven/storefront/internal/config"
	"github.com/bookhaven/storefront/internal/content"
	"github.com/bookhaven/storefront/internal/menu"
)

// Page file names with built-in bodies.
const (
	Index     = "index.html"
	Products  = "products.html"
	Cart      = "cart.html"
	Contact   = "contact.html"
	Community = "community.html"
	About     = "about.html"
)

// Files lists every page the storefront serves, index first.
func Files() []string {
	files := []string{Index}
	for _, p := range chrome.Pages {
		files = append(files, chrome.CurrentFileName(p.Href))
	}
	return files
}

// Known reports whether file is one of the storefront pages.
func Known(file string) bool {
	for _, f := range Files() {
		if f == file {
			return true
		}
	}
	return false
}

// Title returns the navigation label of file, "Home" for the index.
func Title(file string) string {
	for _, p := range chrome.Pages {
		if chrome.IsActive(p, file) {
			return p.Label
		}
	}
	return "Home"
}

// State is everything that varies per request.
type State struct {
	// File is the page being rendered, e.g. "cart.html".
	File string
	Menu *menu.Controller
	// Subscribed and Refocus drive the footer form.
	Subscribed bool
	Refocus    bool
	// Cart is the cart page view. Nil renders the empty state.
	Cart *cartpage.View
	// Added is the sku whose add-to-cart button was just used.
	Added string
	// ContactSent swaps the contact form for the thank-you panel.
	ContactSent bool
	// LiveStatus adds the script that follows /ws/cart-status.
	LiveStatus bool
}

// Renderer composes pages for one store.
type Renderer struct {
	chrome   *chrome.Builder
	library  *content.Library
	products []config.Product
}

// NewRenderer returns a Renderer for cfg. A nil library uses the built-in bodies.
func NewRenderer(cfg *config.Config, library *content.Library) *Renderer {
	if library == nil {
		library = content.Defaults()
	}
	return &Renderer{
		chrome:   chrome.NewBuilder(cfg.StoreName, cfg.Logo),
		library:  library,
		products: cfg.Products,
	}
}

type documentData struct {
	Title      string
	StoreName  string
	Header     template.HTML
	Body       template.HTML
	Footer     template.HTML
	LiveStatus bool
}

type productsData struct {
	Intro template.HTML
	Cards []cartpage.Card
}

type cartData struct {
	View cartpage.View
}

type contactData struct {
	Intro template.HTML
	Sent  bool
}

// Render writes the full document for st to w.
func (r *Renderer) Render(w io.Writer, st State) error {
	if !Known(st.File) {
		return fmt.Errorf("unknown page %q", st.File)
	}
	if st.Menu == nil {
		st.Menu = menu.New()
	}

	body, err := r.body(st)
	if err != nil {
		return err
	}

	doc := documentData{
		Title:     Title(st.File),
		StoreName: r.chrome.StoreName,
		Header:    r.chrome.Header("/"+st.File, st.Menu),
		Body:      body,
		Footer: r.chrome.Footer(chrome.FooterState{
			Subscribed: st.Subscribed,
			Refocus:    st.Refocus,
			Page:       st.File,
		}),
		LiveStatus: st.LiveStatus && st.File == Cart,
	}
	if err := documentTemplate.Execute(w, doc); err != nil {
		return fmt.Errorf("rendering %s: %w", st.File, err)
	}
	return nil
}

func (r *Renderer) body(st State) (template.HTML, error) {
	intro, _ := r.library.Body(st.File)

	switch st.File {
	case Products:
		return execute(productsTemplate, productsData{
			Intro: intro,
			Cards: cartpage.Cards(r.products, st.Added),
		})
	case Cart:
		view := cartpage.View{Empty: true, Total: "$0.00"}
		if st.Cart != nil {
			view = *st.Cart
		}
		return execute(cartTemplate, cartData{View: view})
	case Contact:
		return execute(contactTemplate, contactData{Intro: intro, Sent: st.ContactSent})
	default:
		return execute(markdownTemplate, intro)
	}
}
