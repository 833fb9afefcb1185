package config

import "time"

// Product is one catalog entry rendered as a product card.
type Product struct {
	SKU   string  `yaml:"sku" koanf:"sku"`
	Name  string  `yaml:"name" koanf:"name"`
	Desc  string  `yaml:"desc" koanf:"desc"`
	Price float64 `yaml:"price" koanf:"price"`
}

// Config is the top-level storefront configuration, corresponding to .bookhaven.yml.
type Config struct {
	StoreName       string        `yaml:"store_name" koanf:"store_name"`
	Port            int           `yaml:"port" koanf:"port"`
	DataDir         string        `yaml:"data_dir" koanf:"data_dir"`
	ContentDir      string        `yaml:"content_dir" koanf:"content_dir"`
	OutputDir       string        `yaml:"output_dir" koanf:"output_dir"`
	Logo            string        `yaml:"logo" koanf:"logo"`
	Include         []string      `yaml:"include" koanf:"include"`
	MessageDelay    time.Duration `yaml:"message_delay" koanf:"message_delay"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	LogLevel        string        `yaml:"log_level" koanf:"log_level"`
	Products        []Product     `yaml:"products" koanf:"products"`
}
