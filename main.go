package main

import (
	"os"

	"github.com/bookhaven/storefront/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
