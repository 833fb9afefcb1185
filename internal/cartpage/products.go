package cartpage

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookhaven/storefront/internal/cart"
	"github.com/bookhaven/storefront/internal/config"
)

// ErrUnknownProduct is returned when an add-to-cart names a sku that is not
// in the catalog.
var ErrUnknownProduct = errors.New("unknown product")

// Card is one product card on the products page.
type Card struct {
	SKU   string
	Name  string
	Desc  string
	Price string
	// Amount is the raw price carried in the card's data-price attribute.
	Amount float64
	// Added marks the card whose button was just used.
	Added bool
}

// Cards builds the product cards. addedSKU marks the card that was just added.
func Cards(products []config.Product, addedSKU string) []Card {
	cards := make([]Card, len(products))
	for i, p := range products {
		cards[i] = Card{
			SKU:    p.SKU,
			Name:   p.Name,
			Desc:   p.Desc,
			Price:  cart.Money(p.Price),
			Amount: p.Price,
			Added:  addedSKU != "" && p.SKU == addedSKU,
		}
	}
	return cards
}

// Catalog looks up products by sku.
type Catalog interface {
	Product(sku string) (config.Product, bool)
}

// AddToCart appends the catalog product sku to store.
func AddToCart(ctx context.Context, store *cart.Store, catalog Catalog, sku string) (cart.Item, error) {
	p, ok := catalog.Product(sku)
	if !ok {
		return cart.Item{}, fmt.Errorf("%w: %q", ErrUnknownProduct, sku)
	}
	it := cart.Item{
		SKU:   p.SKU,
		Name:  p.Name,
		Desc:  p.Desc,
		Price: cart.NewPrice(p.Price),
	}
	if err := store.Add(ctx, it); err != nil {
		return cart.Item{}, err
	}
	return it, nil
}
