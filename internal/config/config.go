package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (BOOKHAVEN_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// BOOKHAVEN_PORT -> port, BOOKHAVEN_DATA_DIR -> data_dir, etc.
	if err := k.Load(env.Provider("BOOKHAVEN_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "BOOKHAVEN_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// Lists from the file replace the defaults instead of merging element-wise.
	if k.Exists("products") {
		cfg.Products = nil
	}
	if k.Exists("include") {
		cfg.Include = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.StoreName == "" {
		return fmt.Errorf("store_name is required")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 0 and 65535", c.Port)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.MessageDelay < 0 {
		return fmt.Errorf("message_delay must be non-negative")
	}

	seen := make(map[string]bool, len(c.Products))
	for i, p := range c.Products {
		if p.SKU == "" {
			return fmt.Errorf("products[%d]: sku is required", i)
		}
		if seen[p.SKU] {
			return fmt.Errorf("products[%d]: duplicate sku %q", i, p.SKU)
		}
		seen[p.SKU] = true
		if p.Price < 0 {
			return fmt.Errorf("products[%d]: price must be non-negative", i)
		}
	}

	return nil
}

// Product returns the catalog entry with the given sku.
func (c *Config) Product(sku string) (Product, bool) {
	for _, p := range c.Products {
		if p.SKU == sku {
			return p, true
		}
	}
	return Product{}, false
}
