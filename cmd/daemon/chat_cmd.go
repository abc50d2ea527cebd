// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/ManuGH/lookupbot/internal/channel/local"
	"github.com/ManuGH/lookupbot/internal/daemon"
	xglog "github.com/ManuGH/lookupbot/internal/log"
	"github.com/ManuGH/lookupbot/internal/lookup"
	"github.com/ManuGH/lookupbot/internal/session"
)

func runChatCLI(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lookupbot chat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to config file (YAML)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadLocal(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 1
	}
	// Logs would interleave with the dialog.
	xglog.Configure(xglog.Config{Level: "error", Output: stderr, Version: cfg.Version})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli := local.NewCLI(stdin, stdout)
	store := session.NewStore(session.StoreOptions{
		IdleTTL:       cfg.Session.IdleTTL,
		SweepInterval: cfg.Session.SweepInterval,
	})
	machine := session.NewMachine(store, lookup.New(daemon.LookupConfig(cfg)), cli,
		session.WithChannel(local.Name))

	if err := cli.Run(ctx, machine); err != nil {
		fmt.Fprintf(stderr, "chat: %v\n", err)
		return 1
	}
	return 0
}
