package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and saves the
// resulting Config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to bookhaven! Let's configure your storefront.")
	fmt.Println()

	cfg := DefaultConfig()

	namePrompt := promptui.Prompt{
		Label:   "Store name",
		Default: cfg.StoreName,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("store name: %w", err)
	}
	cfg.StoreName = name

	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 || n > 65535 {
				return fmt.Errorf("port must be a number between 0 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	dataPrompt := promptui.Prompt{
		Label:   "Data directory (profile storage)",
		Default: cfg.DataDir,
	}
	if cfg.DataDir, err = dataPrompt.Run(); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	contentPrompt := promptui.Prompt{
		Label:   "Content directory (markdown page bodies)",
		Default: cfg.ContentDir,
	}
	if cfg.ContentDir, err = contentPrompt.Run(); err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}

	outputPrompt := promptui.Prompt{
		Label:   "Output directory for generated pages",
		Default: cfg.OutputDir,
	}
	if cfg.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	catalogPrompt := promptui.Select{
		Label: "Product catalog",
		Items: []string{
			"sample: start with the bundled sample books",
			"empty: add products to the config file later",
		},
	}
	idx, _, err := catalogPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("catalog selection: %w", err)
	}
	if idx == 1 {
		cfg.Products = nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
