package main

import (
	"os"

	"github.com/adoptly/shelter/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
