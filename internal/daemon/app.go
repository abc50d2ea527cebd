// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package daemon owns the webhook daemon's lifecycle.
package daemon

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ManuGH/lookupbot/internal/config"
	"github.com/ManuGH/lookupbot/internal/health"
	xglog "github.com/ManuGH/lookupbot/internal/log"
	"github.com/ManuGH/lookupbot/internal/session"
	"github.com/ManuGH/lookupbot/internal/telemetry"
)

const telemetryShutdownTimeout = 5 * time.Second

// App owns the long-lived runtime: webhook registration, the HTTP server,
// the session janitor and config reloads.
type App struct {
	logger       zerolog.Logger
	manager      *Manager
	handler      http.Handler
	holder       *config.Holder
	store        *session.Store
	provider     *telemetry.Provider
	register     func(ctx context.Context) error
	ready        *health.FlagChecker
	reloadSignal os.Signal
}

// Manager exposes the server manager, mainly for its bound address.
func (a *App) Manager() *Manager { return a.manager }

// Handler is the root HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Run registers the webhook and blocks until ctx is cancelled or a component
// fails. Registration failure is fatal.
func (a *App) Run(ctx context.Context) error {
	defer a.shutdownTelemetry()

	if a.register != nil {
		if err := a.register(ctx); err != nil {
			return fmt.Errorf("register webhook: %w", err)
		}
		a.ready.Set()
	}

	g, ctx := errgroup.WithContext(ctx)

	if a.holder != nil {
		// Best-effort: a broken watcher must not take the bot down.
		g.Go(func() error {
			if err := a.holder.Watch(ctx); err != nil {
				a.logger.Warn().Err(err).Str("event", "config.watcher_start_failed").Msg("failed to start config watcher")
			}
			return nil
		})

		g.Go(func() error {
			hup := make(chan os.Signal, 1)
			signal.Notify(hup, a.reloadSignal)
			defer signal.Stop(hup)

			for {
				select {
				case <-ctx.Done():
					return nil
				case <-hup:
					a.logger.Info().
						Str("event", "config.reload_signal").
						Str("signal", a.reloadSignal.String()).
						Msg("received reload signal, reloading config")
					if err := a.holder.Reload(); err != nil {
						a.logger.Warn().Err(err).Str("event", "config.reload_failed").Msg("config reload failed")
					}
				}
			}
		})
	}

	g.Go(func() error { return a.store.Run(ctx) })
	g.Go(func() error { return a.manager.Start(ctx) })

	return g.Wait()
}

func (a *App) shutdownTelemetry() {
	ctx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
	defer cancel()
	if err := a.provider.Shutdown(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("tracer provider shutdown failed")
	}
}

// applyRuntimeConfig is the reload listener for settings that change
// without a restart. Everything else waits for the next start.
func applyRuntimeConfig(logger zerolog.Logger) func(prev, next config.AppConfig) {
	return func(prev, next config.AppConfig) {
		if prev.LogLevel == next.LogLevel {
			return
		}
		if !xglog.SetLevel(next.LogLevel) {
			logger.Warn().
				Str(xglog.FieldEvent, "config.log_level_rejected").
				Str("level", next.LogLevel).
				Msg("ignoring unknown log level")
			return
		}
		logger.Info().
			Str(xglog.FieldEvent, "config.log_level_changed").
			Str("old", prev.LogLevel).
			Str("new", next.LogLevel).
			Msg("log level changed")
	}
}

func defaultReloadSignal() os.Signal { return syscall.SIGHUP }
