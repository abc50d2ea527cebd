// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/ManuGH/lookupbot/internal/daemon"
	"github.com/ManuGH/lookupbot/internal/identifier"
	xglog "github.com/ManuGH/lookupbot/internal/log"
	"github.com/ManuGH/lookupbot/internal/lookup"
	"github.com/ManuGH/lookupbot/internal/report"
)

func runLookupCLI(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lookupbot lookup", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to config file (YAML)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: lookupbot lookup [-config file] <10-digit mobile | 12-digit Aadhaar>")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	id := identifier.Classify(strings.TrimSpace(fs.Arg(0)))
	if id.Kind == identifier.KindUnknown {
		fmt.Fprintf(stderr, "Not a mobile or Aadhaar number: %q\n", id.Value)
		return 2
	}

	cfg, err := loadLocal(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 1
	}
	xglog.Configure(xglog.Config{Level: "error", Output: stderr, Version: cfg.Version})

	payload, err := lookup.New(daemon.LookupConfig(cfg)).Lookup(context.Background(), id)
	if err != nil {
		fmt.Fprintf(stderr, "Lookup failed: %v\n", err)
		return 1
	}

	render := report.Phone
	if id.Kind == identifier.KindNationalID {
		render = report.NationalID
	}
	fmt.Fprintln(stdout, render(payload, id.Value))
	return 0
}
