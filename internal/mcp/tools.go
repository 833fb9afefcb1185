package mcp

import "github.com/mark3labs/mcp-go/mcp"

var cartListTool = mcp.NewTool("cart_list",
	mcp.WithDescription("List the items in the cart in order. Each line starts with the item's index."),
)

var cartAddTool = mcp.NewTool("cart_add",
	mcp.WithDescription("Add one catalog product to the end of the cart."),
	mcp.WithString("sku",
		mcp.Required(),
		mcp.Description("Product sku, e.g. BH-001"),
	),
)

var cartRemoveTool = mcp.NewTool("cart_remove",
	mcp.WithDescription("Remove the item at the given index. Later items shift down by one."),
	mcp.WithNumber("index",
		mcp.Required(),
		mcp.Description("Zero-based position as shown by cart_list"),
	),
)

var cartClearTool = mcp.NewTool("cart_clear",
	mcp.WithDescription("Remove every item from the cart."),
)

var cartTotalTool = mcp.NewTool("cart_total",
	mcp.WithDescription("Get the cart total formatted as dollars."),
)
