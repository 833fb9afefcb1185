package storefront

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/bookhaven/storefront/internal/cart"
	"github.com/bookhaven/storefront/internal/cartpage"
	"github.com/bookhaven/storefront/internal/chrome"
	"github.com/bookhaven/storefront/internal/gate"
	"github.com/bookhaven/storefront/internal/menu"
	"github.com/bookhaven/storefront/internal/pages"
)

func (s *Storefront) handlePage(w http.ResponseWriter, r *http.Request) {
	file := chrome.CurrentFileName(r.URL.Path)
	if !pages.Known(file) {
		http.NotFound(w, r)
		return
	}

	ctx := r.Context()
	q := r.URL.Query()
	st := pages.State{
		File:    file,
		Menu:    menu.FromQuery(q.Get("menu")),
		Refocus: q.Get("focus") == "subscribe",
	}
	if err := s.footerState(r, &st); err != nil {
		s.serverError(w, "mounting subscribe form", err)
		return
	}

	switch file {
	case pages.Cart:
		page, release := s.cartPage(r)
		defer release()
		page.Enter()
		view, err := page.Render(ctx)
		if err != nil {
			s.serverError(w, "rendering cart", err)
			return
		}
		st.Cart = &view
		st.LiveStatus = true
	case pages.Products:
		st.Added = q.Get("added")
	case pages.Contact:
		c, err := gate.MountContact(ctx, s.slots(r))
		if err != nil {
			s.serverError(w, "mounting contact form", err)
			return
		}
		st.ContactSent = c.ShowThanks()
	}

	s.render(w, st)
}

func (s *Storefront) footerState(r *http.Request, st *pages.State) error {
	sub, err := gate.MountSubscribe(r.Context(), s.slots(r), s.log)
	if err != nil {
		return err
	}
	st.Subscribed = sub.ShowThanks()
	return nil
}

// renderCart writes the cart page for a view produced by a cart action. The
// page is not re-entered, so the status line keeps the action's message.
func (s *Storefront) renderCart(w http.ResponseWriter, r *http.Request, view cartpage.View) {
	st := pages.State{File: pages.Cart, Cart: &view, LiveStatus: true}
	if err := s.footerState(r, &st); err != nil {
		s.serverError(w, "mounting subscribe form", err)
		return
	}
	s.render(w, st)
}

func (s *Storefront) handleAdd(w http.ResponseWriter, r *http.Request) {
	sku := r.PostFormValue("sku")
	it, err := cartpage.AddToCart(r.Context(), cart.NewStore(s.slots(r)), s.cfg, sku)
	if errors.Is(err, cartpage.ErrUnknownProduct) {
		http.Error(w, "unknown product", http.StatusBadRequest)
		return
	}
	if err != nil {
		s.serverError(w, "adding to cart", err)
		return
	}
	s.log.Debug("item added", zap.String("sku", it.SKU))
	http.Redirect(w, r, "/"+pages.Products+"?added="+url.QueryEscape(it.SKU), http.StatusSeeOther)
}

func (s *Storefront) handleRemove(w http.ResponseWriter, r *http.Request) {
	page, release := s.cartPage(r)
	defer release()

	var (
		view cartpage.View
		err  error
	)
	// A missing or non-numeric index leaves the cart and status line alone.
	if index, convErr := strconv.Atoi(r.PostFormValue("index")); convErr != nil {
		view, err = page.Render(r.Context())
	} else {
		view, err = page.Remove(r.Context(), index)
	}
	if err != nil {
		s.serverError(w, "removing cart item", err)
		return
	}
	s.renderCart(w, r, view)
}

func (s *Storefront) handleClear(w http.ResponseWriter, r *http.Request) {
	page, release := s.cartPage(r)
	defer release()

	view, err := page.ClearCart(r.Context())
	if err != nil {
		s.serverError(w, "clearing cart", err)
		return
	}
	s.renderCart(w, r, view)
}

func (s *Storefront) handleCheckout(w http.ResponseWriter, r *http.Request) {
	page, release := s.cartPage(r)
	defer release()

	view, err := page.Checkout(r.Context())
	if err != nil {
		s.serverError(w, "checking out", err)
		return
	}
	s.renderCart(w, r, view)
}

func (s *Storefront) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	file := chrome.CurrentFileName(r.PostFormValue("page"))
	if !pages.Known(file) {
		file = pages.Index
	}

	sub, err := gate.MountSubscribe(r.Context(), s.slots(r), s.log)
	if err != nil {
		s.serverError(w, "mounting subscribe form", err)
		return
	}

	target := "/" + file
	outcome, err := sub.Submit(r.Context(), r.PostFormValue("email"))
	switch {
	case errors.Is(err, gate.ErrAlreadySubmitted):
	case err != nil:
		s.serverError(w, "subscribing", err)
		return
	case outcome == gate.Refocus:
		target += "?focus=subscribe"
	}
	s.log.Debug("subscribe form", zap.Stringer("state", sub.State()), zap.String("page", file))
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Storefront) handleContact(w http.ResponseWriter, r *http.Request) {
	c, err := gate.MountContact(r.Context(), s.slots(r))
	if err != nil {
		s.serverError(w, "mounting contact form", err)
		return
	}
	if _, err := c.Submit(r.Context()); err != nil && !errors.Is(err, gate.ErrAlreadySubmitted) {
		s.serverError(w, "submitting contact form", err)
		return
	}
	s.log.Debug("contact form", zap.Stringer("state", c.State()))
	http.Redirect(w, r, "/"+pages.Contact, http.StatusSeeOther)
}

// cartResponse is the JSON shape of GET /api/cart.
type cartResponse struct {
	Items []cart.Item `json:"items"`
	Total string      `json:"total"`
}

func (s *Storefront) handleCartJSON(w http.ResponseWriter, r *http.Request) {
	items, err := cart.NewStore(s.slots(r)).Read(r.Context())
	if err != nil {
		s.serverError(w, "reading cart", err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{Items: items, Total: cart.Money(cart.Total(items))})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
