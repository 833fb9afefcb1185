// Package storefront serves the Book Haven pages and cart actions over HTTP.
package storefront

import (
	"bytes"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/bookhaven/storefront/internal/cart"
	"github.com/bookhaven/storefront/internal/cartpage"
	"github.com/bookhaven/storefront/internal/config"
	"github.com/bookhaven/storefront/internal/content"
	"github.com/bookhaven/storefront/internal/db"
	"github.com/bookhaven/storefront/internal/message"
	"github.com/bookhaven/storefront/internal/pages"
	"github.com/bookhaven/storefront/internal/storage"
)

// Storefront holds the dependencies shared by the handlers.
type Storefront struct {
	cfg      *config.Config
	db       *db.DB
	renderer *pages.Renderer
	displays *message.Registry
	log      *zap.Logger
}

// New creates a Storefront. A nil library uses the built-in page bodies and a
// nil registry schedules status messages on the system clock.
func New(cfg *config.Config, database *db.DB, library *content.Library, displays *message.Registry, log *zap.Logger) *Storefront {
	if displays == nil {
		displays = message.NewRegistry(nil)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Storefront{
		cfg:      cfg,
		db:       database,
		renderer: pages.NewRenderer(cfg, library),
		displays: displays,
		log:      log,
	}
}

// RegisterRoutes mounts the storefront on the given router.
func (s *Storefront) RegisterRoutes(r chi.Router) {
	r.Get("/style.css", handleStylesheet)
	r.Handle("/images/*", http.StripPrefix("/images/",
		http.FileServer(http.Dir(filepath.Join(s.cfg.ContentDir, "images")))))

	r.Group(func(r chi.Router) {
		r.Use(s.profile)

		// Streams stay open past the request timeout.
		r.Get("/ws/cart-status", s.handleCartStatus)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			r.Get("/", s.handlePage)
			r.Get("/{file}", s.handlePage)

			r.Post("/cart/add", s.handleAdd)
			r.Post("/cart/remove", s.handleRemove)
			r.Post("/cart/clear", s.handleClear)
			r.Post("/cart/checkout", s.handleCheckout)

			r.Post("/subscribe", s.handleSubscribe)
			r.Post("/contact", s.handleContact)

			r.Get("/api/cart", s.handleCartJSON)
		})
	})
}

// slots returns the storage of the requesting profile.
func (s *Storefront) slots(r *http.Request) storage.Storage {
	return storage.NewProfile(s.db, ProfileID(r.Context()))
}

// cartPage binds the requesting profile's cart to its status line. release
// hands the status line back to the registry.
func (s *Storefront) cartPage(r *http.Request) (*cartpage.Page, func()) {
	display, release := s.displays.Acquire(ProfileID(r.Context()))
	return cartpage.New(cart.NewStore(s.slots(r)), display, s.cfg.MessageDelay), release
}

// render writes a full page, or a 500 if rendering fails.
func (s *Storefront) render(w http.ResponseWriter, st pages.State) {
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, st); err != nil {
		s.serverError(w, "rendering page", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (s *Storefront) serverError(w http.ResponseWriter, msg string, err error) {
	s.log.Error(msg, zap.Error(err))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func handleStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(pages.Stylesheet))
}
