// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package daemon

import (
	"context"
	"fmt"
	"time"

	"github.com/ManuGH/lookupbot/internal/api"
	"github.com/ManuGH/lookupbot/internal/channel/telegram"
	"github.com/ManuGH/lookupbot/internal/config"
	"github.com/ManuGH/lookupbot/internal/health"
	xglog "github.com/ManuGH/lookupbot/internal/log"
	"github.com/ManuGH/lookupbot/internal/lookup"
	"github.com/ManuGH/lookupbot/internal/platform/httpx"
	"github.com/ManuGH/lookupbot/internal/session"
	"github.com/ManuGH/lookupbot/internal/telemetry"
)

const telegramTimeout = 30 * time.Second

// Options tune wiring; the zero value talks to the real Telegram API.
type Options struct {
	// TelegramEndpoint overrides the Bot API endpoint format.
	TelegramEndpoint string
}

// TelemetryConfig maps the tracing section of cfg.
func TelemetryConfig(cfg config.AppConfig) telemetry.Config {
	return telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: cfg.Version,
		Environment:    cfg.Telemetry.Environment,
		ExporterType:   cfg.Telemetry.Exporter,
		Endpoint:       cfg.Telemetry.Endpoint,
		SamplingRate:   cfg.Telemetry.SamplingRate,
	}
}

// LookupConfig maps the lookup section of cfg.
func LookupConfig(cfg config.AppConfig) lookup.Config {
	return lookup.Config{
		PhoneBaseURL:      cfg.Lookup.PhoneURL,
		NationalIDBaseURL: cfg.Lookup.NationalIDURL,
		NationalIDKey:     cfg.Lookup.NationalIDKey,
		Timeout:           cfg.Lookup.Timeout,
	}
}

// New wires the webhook daemon from the holder's current, validated config.
// Nothing is registered with Telegram until Run.
func New(ctx context.Context, holder *config.Holder, opts Options) (*App, error) {
	cfg := holder.Get()
	logger := xglog.WithComponent("daemon")

	provider, err := telemetry.NewProvider(ctx, TelemetryConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}

	bot, err := telegram.New(telegram.Config{
		Token:       cfg.Telegram.Token,
		WebhookURL:  cfg.Telegram.WebhookURL(),
		SendRate:    cfg.Telegram.SendRate,
		APIEndpoint: opts.TelegramEndpoint,
	}, httpx.NewClient(telegramTimeout, httpx.WithTracing()))
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, err
	}

	store := session.NewStore(session.StoreOptions{
		IdleTTL:       cfg.Session.IdleTTL,
		SweepInterval: cfg.Session.SweepInterval,
	})
	machine := session.NewMachine(store, lookup.New(LookupConfig(cfg)), bot,
		session.WithChannel(telegram.Name))

	hm := health.NewManager(cfg.Version)
	ready := health.NewFlagChecker("telegram_webhook", "webhook not registered")
	hm.RegisterChecker(ready)
	hm.RegisterChecker(health.NewFuncChecker("sessions", func(context.Context) health.CheckResult {
		return health.CheckResult{
			Status:  health.StatusHealthy,
			Message: fmt.Sprintf("%d active", store.Len()),
		}
	}))

	tracingService := ""
	if cfg.Telemetry.Enabled {
		tracingService = cfg.Telemetry.ServiceName
	}
	// Updates outlive the request that delivered them; shutdown waits for
	// them instead of cancelling.
	handlerCtx := context.WithoutCancel(ctx)
	router := api.NewRouter(api.Deps{
		WebhookToken:   cfg.Telegram.Token,
		Webhook:        bot.WebhookHandler(handlerCtx, machine),
		Health:         hm,
		TracingService: tracingService,
	})

	mgr, err := NewManager(DefaultServerConfig(cfg.ListenAddr), router, logger)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, err
	}
	mgr.RegisterShutdownHook("telegram_inflight", func(ctx context.Context) error {
		done := make(chan struct{})
		go func() {
			bot.Wait()
			close(done)
		}()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return fmt.Errorf("in-flight updates: %w", ctx.Err())
		}
	})

	holder.OnReload(applyRuntimeConfig(logger))

	return &App{
		logger:       logger,
		manager:      mgr,
		handler:      router,
		holder:       holder,
		store:        store,
		provider:     provider,
		register:     bot.RegisterWebhook,
		ready:        ready,
		reloadSignal: defaultReloadSignal(),
	}, nil
}
