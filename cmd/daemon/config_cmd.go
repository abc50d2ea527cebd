// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/ManuGH/lookupbot/internal/config"
)

func runConfigCLI(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printConfigUsage(stderr)
		return 0
	}

	switch args[0] {
	case "show":
		return runConfigShow(args[1:], stdout, stderr)
	case "init":
		return runConfigInit(args[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "Unknown subcommand: %s\n\n", args[0])
		printConfigUsage(stderr)
		return 2
	}
}

func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  lookupbot config show [--file|-f config.yaml]")
	fmt.Fprintln(w, "  lookupbot config init [--force] <path>")
}

// runConfigShow prints the effective configuration with secrets masked.
func runConfigShow(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lookupbot config show", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var file string
	fs.StringVar(&file, "file", "", "path to YAML configuration file")
	fs.StringVar(&file, "f", "", "path to YAML configuration file (shorthand)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.NewLoader(strings.TrimSpace(file), version).Load()
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 1
	}
	out, err := config.Dump(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to render configuration: %v\n", err)
		return 1
	}
	_, _ = stdout.Write(out)

	if err := config.Validate(cfg, config.ModeWebhook); err != nil {
		fmt.Fprintf(stderr, "\nWarning: not valid for the webhook daemon:\n  %v\n", err)
	}
	return 0
}

func runConfigInit(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lookupbot config init", flag.ContinueOnError)
	fs.SetOutput(stderr)
	force := fs.Bool("force", false, "overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		printConfigUsage(stderr)
		return 2
	}

	path := fs.Arg(0)
	if err := config.WriteSample(path, *force); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "Wrote sample configuration to %s\n", path)
	return 0
}
