package main

import (
	"os"

	"github.com/fluxo-lang/fluxo/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
