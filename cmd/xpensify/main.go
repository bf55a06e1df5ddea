package main

import (
	"os"

	"github.com/SharmiliRS/money-manager-frontend/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
