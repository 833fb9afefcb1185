package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bookhaven/storefront/internal/cart"
	"github.com/bookhaven/storefront/internal/cartpage"
)

func (s *Server) handleCartList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, err := s.store.Read(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read cart: %v", err)), nil
	}
	if len(items) == 0 {
		return mcp.NewToolResultText("The cart is empty."), nil
	}
	return mcp.NewToolResultText(formatItems(items)), nil
}

func (s *Server) handleCartAdd(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sku, err := request.RequireString("sku")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: sku"), nil
	}

	it, err := cartpage.AddToCart(ctx, s.store, s.catalog, strings.TrimSpace(sku))
	if errors.Is(err, cartpage.ErrUnknownProduct) {
		return mcp.NewToolResultError(fmt.Sprintf("unknown sku %q. Known skus: %s", sku, s.knownSKUs())), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to add item: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%s: %s (%s)", cartpage.MsgItemAdded, it.Name, cart.Money(it.Price))), nil
}

func (s *Server) handleCartRemove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, err := request.RequireInt("index")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: index"), nil
	}

	items, err := s.store.Read(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read cart: %v", err)), nil
	}
	if index < 0 || index >= len(items) {
		return mcp.NewToolResultText(fmt.Sprintf("No item at index %d; the cart is unchanged.", index)), nil
	}

	if err := s.store.RemoveAt(ctx, index); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to remove item: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s: %s", cartpage.MsgItemRemoved, items[index].Name)), nil
}

func (s *Server) handleCartClear(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.store.Clear(ctx); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to clear cart: %v", err)), nil
	}
	return mcp.NewToolResultText(cartpage.MsgCartCleared), nil
}

func (s *Server) handleCartTotal(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, err := s.store.Read(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read cart: %v", err)), nil
	}
	return mcp.NewToolResultText(cart.Money(cart.Total(items))), nil
}

// formatItems renders one line per item for agent consumption.
func formatItems(items []cart.Item) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d item(s):\n", len(items)))
	for i, it := range items {
		sb.WriteString(fmt.Sprintf("%d. %s [%s] %s\n", i, it.Name, it.SKU, cart.Money(it.Price)))
		if it.Desc != "" {
			sb.WriteString(fmt.Sprintf("   %s\n", it.Desc))
		}
	}
	sb.WriteString(fmt.Sprintf("Total: %s\n", cart.Money(cart.Total(items))))
	return sb.String()
}

func (s *Server) knownSKUs() string {
	skus := make([]string, len(s.products))
	for i, p := range s.products {
		skus[i] = p.SKU
	}
	return strings.Join(skus, ", ")
}
