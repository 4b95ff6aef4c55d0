package main

import (
	"os"

	"github.com/t4sanity/t4sanity/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
