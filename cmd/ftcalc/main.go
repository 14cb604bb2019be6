// Package main is the entry point for the ftcalc CLI.
package main

import (
	"fmt"
	"os"

	"github.com/runoshun/ft-calc/internal/app"
	"github.com/runoshun/ft-calc/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	container := app.New(app.Config{WorkDir: cwd})
	defer func() { _ = container.Close() }()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
