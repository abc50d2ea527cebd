// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package api assembles the daemon's HTTP surface: the Telegram webhook,
// probes and the metrics endpoint.
package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ManuGH/lookupbot/internal/api/middleware"
	"github.com/ManuGH/lookupbot/internal/health"
)

// Deps are the handlers mounted by NewRouter.
type Deps struct {
	// WebhookToken is the secret path segment Telegram posts to.
	WebhookToken string
	Webhook      http.Handler
	Health       *health.Manager
	// TracingService names server spans; empty disables tracing.
	TracingService string
}

// NewRouter builds the HTTP handler. The webhook is only mounted when both
// token and handler are set.
func NewRouter(d Deps) http.Handler {
	r := middleware.NewRouter(middleware.StackConfig{
		EnableMetrics:  true,
		TracingService: d.TracingService,
		EnableLogging:  true,
	})

	if d.Health != nil {
		r.Get("/healthz", d.Health.ServeHealth)
		r.Get("/readyz", d.Health.ServeReady)
	}
	r.Handle("/metrics", promhttp.Handler())

	if d.WebhookToken != "" && d.Webhook != nil {
		r.Post("/{token}", webhook(d.WebhookToken, d.Webhook))
	}
	return r
}

// webhook serves next only when the path segment matches token.
func webhook(token string, next http.Handler) http.HandlerFunc {
	want := []byte(token)
	return func(w http.ResponseWriter, r *http.Request) {
		got := []byte(chi.URLParam(r, "token"))
		if subtle.ConstantTimeCompare(got, want) != 1 {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	}
}
