// Package main is the entry point for the taskflow CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/taskflow/internal/app"
	"github.com/runoshun/taskflow/internal/cli"
	"github.com/runoshun/taskflow/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, domain.ErrInvalidSeed) {
			fmt.Fprintln(os.Stderr, "Run `taskflow seed check FILE` to list every problem.")
		}
		os.Exit(1)
	}
}

func run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	container, err := app.New(cwd)
	if err != nil {
		return runWithoutContainer(fmt.Errorf("failed to initialize: %w", err))
	}
	defer func() { _ = container.Close() }()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// runWithoutContainer handles startup failures such as a broken config or
// seed file. Help, version and seed check still work so the file can be fixed.
func runWithoutContainer(initErr error) error {
	if !canRunWithoutContainer(os.Args[1:]) {
		return initErr
	}
	return cli.NewRootCommand(nil, version).Execute()
}

func canRunWithoutContainer(args []string) bool {
	if len(args) > 0 && (args[0] == "help" || args[0] == "seed") {
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "-v" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
