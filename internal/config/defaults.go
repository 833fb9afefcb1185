package config

import "time"

// DefaultMessageDelay is how long transient cart messages stay on screen.
const DefaultMessageDelay = 3000 * time.Millisecond

// DefaultProducts is the catalog used when the config file lists none.
var DefaultProducts = []Product{
	{SKU: "BH-001", Name: "The Quiet Harbor", Desc: "A slow-burning mystery set in a fishing village.", Price: 14.99},
	{SKU: "BH-002", Name: "Gardens of Ash", Desc: "Short stories about rebuilding after loss.", Price: 12.50},
	{SKU: "BH-003", Name: "Field Notes on Stars", Desc: "An illustrated beginner's guide to the night sky.", Price: 22.00},
	{SKU: "BH-004", Name: "Bread & Patience", Desc: "Recipes and essays from a neighborhood bakery.", Price: 18.75},
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		StoreName:    "Book Haven Bookstore",
		Port:         8080,
		DataDir:      ".bookhaven",
		ContentDir:   "content",
		OutputDir:    "public",
		Logo:         "images/book_logo.png",
		Include:      []string{"**/*.md"},
		MessageDelay: DefaultMessageDelay,
		LogLevel:     "info",
		Products:     append([]Product(nil), DefaultProducts...),
	}
}
