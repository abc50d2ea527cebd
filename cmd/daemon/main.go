// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ManuGH/lookupbot/internal/config"
	"github.com/ManuGH/lookupbot/internal/daemon"
	xglog "github.com/ManuGH/lookupbot/internal/log"
)

var (
	version   = "v0.1.0"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "config":
			os.Exit(runConfigCLI(os.Args[2:], os.Stdout, os.Stderr))
		case "chat":
			os.Exit(runChatCLI(os.Args[2:], os.Stdin, os.Stdout, os.Stderr))
		case "lookup":
			os.Exit(runLookupCLI(os.Args[2:], os.Stdout, os.Stderr))
		case "healthcheck":
			os.Exit(runHealthcheckCLI(os.Args[2:], os.Stdout, os.Stderr))
		}
	}

	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "path to config file (YAML)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	// Safe defaults until config is loaded.
	xglog.Configure(xglog.Config{Level: "info", Version: version})
	logger := xglog.WithComponent("daemon")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	path := strings.TrimSpace(*configPath)
	loader := config.NewLoader(path, version)
	cfg, err := loader.Load()
	if err != nil {
		logger.Fatal().
			Err(err).
			Str("event", "config.load_failed").
			Str("config_path", path).
			Msg("failed to load configuration")
	}
	if err := config.Validate(cfg, config.ModeWebhook); err != nil {
		event := "config.invalid"
		switch {
		case errors.Is(err, config.ErrMissingBotToken):
			event = "config.missing_bot_token"
		case errors.Is(err, config.ErrMissingExternalURL):
			event = "config.missing_external_url"
		}
		logger.Fatal().Err(err).Str("event", event).Msg("invalid configuration")
	}

	xglog.Configure(xglog.Config{Level: cfg.LogLevel, Version: cfg.Version})
	logger = xglog.WithComponent("daemon")

	source := "env+defaults"
	if path != "" {
		source = "file"
	}
	logger.Info().
		Str("event", "config.loaded").
		Str("source", source).
		Str("listen", cfg.ListenAddr).
		Str("webhook_host", config.WebhookHost(cfg.Telegram.ExternalURL)).
		Msg("configuration loaded")

	holder := config.NewHolder(cfg, loader, config.ModeWebhook)
	app, err := daemon.New(ctx, holder, daemon.Options{})
	if err != nil {
		logger.Fatal().Err(err).Str("event", "startup.failed").Msg("failed to initialise daemon")
	}

	logger.Info().Str("event", "startup").Str("version", version).Msg("lookupbot starting")
	if err := app.Run(ctx); err != nil {
		logger.Fatal().Err(err).Str("event", "daemon.failed").Msg("daemon stopped with error")
	}
	logger.Info().Str("event", "shutdown.complete").Msg("lookupbot stopped")
}

// loadLocal loads and validates config for the subcommands that never talk
// to Telegram.
func loadLocal(path string) (config.AppConfig, error) {
	cfg, err := config.NewLoader(strings.TrimSpace(path), version).Load()
	if err != nil {
		return cfg, err
	}
	if err := config.Validate(cfg, config.ModeLocal); err != nil {
		return cfg, err
	}
	return cfg, nil
}
