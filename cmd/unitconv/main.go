// Package main is the entry point of the unitconv command.
package main

import (
	"os"

	"github.com/phrazzld/unitconv/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
