package main

import (
	"fmt"
	"os"

	"github.com/de-tools/learn-atlas/pkg/runtime/terminal"
	"github.com/de-tools/learn-atlas/pkg/services/templates"
)

func main() {
	registry, err := templates.NewRegistry(templates.Builtin()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Registry: registry,
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
