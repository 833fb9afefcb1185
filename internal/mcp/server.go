package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/bookhaven/storefront/internal/cart"
	"github.com/bookhaven/storefront/internal/cartpage"
	"github.com/bookhaven/storefront/internal/config"
	"github.com/bookhaven/storefront/internal/storage"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the cart of one profile.
type Server struct {
	store    *cart.Store
	products []config.Product
	catalog  cartpage.Catalog
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server over the given slots and catalog.
func NewServer(slots storage.Storage, cfg *config.Config) *Server {
	s := &Server{
		store:    cart.NewStore(slots),
		products: cfg.Products,
		catalog:  cfg,
	}

	s.mcp = server.NewMCPServer(
		"bookhaven",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(cartListTool, s.handleCartList)
	s.mcp.AddTool(cartAddTool, s.handleCartAdd)
	s.mcp.AddTool(cartRemoveTool, s.handleCartRemove)
	s.mcp.AddTool(cartClearTool, s.handleCartClear)
	s.mcp.AddTool(cartTotalTool, s.handleCartTotal)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
