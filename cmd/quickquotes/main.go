package main

import (
	"os"

	"github.com/Justice-Caban/QuickQuotes/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
