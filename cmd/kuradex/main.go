package main

import (
	"os"

	"github.com/kuradex-labs/kuradex/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
