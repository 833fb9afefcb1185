// Package cartpage drives the cart page: it projects the stored cart into
// rows and a total, and performs the remove, clear and checkout actions.
package cartpage

import (
	"context"
	"time"

	"github.com/bookhaven/storefront/internal/cart"
	"github.com/bookhaven/storefront/internal/message"
)

// Status line texts.
const (
	MsgItemRemoved    = "Item removed"
	MsgCartCleared    = "Cart cleared"
	MsgOrderProcessed = "Order Processed"
	MsgThankYou       = "Thank you for your order"
	MsgItemAdded      = "Item added to the cart"
)

// Row is one rendered cart line.
type Row struct {
	Index int
	Name  string
	Desc  string
	Price string
}

// View is the rendered state of the cart page.
type View struct {
	Rows    []Row
	Total   string
	Empty   bool
	Message string
}

// Page binds one profile's cart to its status line.
type Page struct {
	store   *cart.Store
	display *message.Display
	delay   time.Duration
}

// New returns a Page. delay is how long transient messages stay visible.
func New(store *cart.Store, display *message.Display, delay time.Duration) *Page {
	return &Page{store: store, display: display, delay: delay}
}

// Enter is called when the cart page is (re)opened. Old messages are dropped.
func (p *Page) Enter() {
	p.display.Reset()
}

// Render reads the cart and builds the view.
func (p *Page) Render(ctx context.Context) (View, error) {
	items, err := p.store.Read(ctx)
	if err != nil {
		return View{}, err
	}

	v := View{Message: p.display.Text()}
	if len(items) == 0 {
		v.Empty = true
		v.Total = cart.Money(0)
		return v, nil
	}

	v.Rows = make([]Row, len(items))
	for i, it := range items {
		v.Rows[i] = Row{
			Index: i,
			Name:  it.Name,
			Desc:  it.Desc,
			Price: cart.Money(it.Price),
		}
	}
	v.Total = cart.Money(cart.Total(items))
	return v, nil
}

// Remove deletes the row at index and shows a transient message.
func (p *Page) Remove(ctx context.Context, index int) (View, error) {
	if err := p.store.RemoveAt(ctx, index); err != nil {
		return View{}, err
	}
	p.display.Show(MsgItemRemoved, p.delay)
	return p.Render(ctx)
}

// ClearCart empties the cart and shows a transient message.
func (p *Page) ClearCart(ctx context.Context) (View, error) {
	if err := p.store.Clear(ctx); err != nil {
		return View{}, err
	}
	p.display.Show(MsgCartCleared, p.delay)
	return p.Render(ctx)
}

// Checkout empties the cart and leaves a standing thank-you message that the
// transient "Order Processed" timer does not erase.
func (p *Page) Checkout(ctx context.Context) (View, error) {
	p.display.Show(MsgOrderProcessed, p.delay)
	if err := p.store.Clear(ctx); err != nil {
		return View{}, err
	}
	p.display.Stand(MsgThankYou)
	return p.Render(ctx)
}
