// Package main is the entry point for the shapediff CLI.
package main

import (
	"os"

	"github.com/typemark/shapediff/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
