// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	platformnet "github.com/ManuGH/lookupbot/internal/platform/net"
	"github.com/ManuGH/lookupbot/internal/validate"
)

// Mode selects which startup rules apply.
type Mode int

const (
	// ModeWebhook is the Telegram daemon: bot token and external URL are required.
	ModeWebhook Mode = iota
	// ModeLocal covers the chat REPL and one-shot lookups.
	ModeLocal
)

const maxLookupTimeout = 5 * time.Minute

var (
	validLogLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}
	validExporters = []string{"grpc", "http"}
	lookupSchemes  = []string{"http", "https"}
)

// Validate enforces the startup rules for mode. Missing credentials and a
// non-positive timeout surface as the package sentinels; everything else is
// reported as one validate.ValidationError.
func Validate(cfg AppConfig, mode Mode) error {
	var fatal []error
	if mode == ModeWebhook {
		if cfg.Telegram.Token == "" {
			fatal = append(fatal, ErrMissingBotToken)
		}
		if cfg.Telegram.ExternalURL == "" {
			fatal = append(fatal, ErrMissingExternalURL)
		} else if WebhookHost(cfg.Telegram.ExternalURL) == "" {
			fatal = append(fatal, fmt.Errorf("%w: %q has no valid host", ErrMissingExternalURL, cfg.Telegram.ExternalURL))
		}
	}
	if cfg.Lookup.Timeout <= 0 {
		fatal = append(fatal, fmt.Errorf("%w: got %s", ErrInvalidTimeout, cfg.Lookup.Timeout))
	}

	v := validate.New()
	v.OneOf("logLevel", cfg.LogLevel, validLogLevels)
	v.ListenAddr("listenAddr", cfg.ListenAddr)
	v.URL("lookup.phoneURL", cfg.Lookup.PhoneURL, lookupSchemes)
	v.URL("lookup.nationalIDURL", cfg.Lookup.NationalIDURL, lookupSchemes)
	v.NotEmpty("lookup.nationalIDKey", cfg.Lookup.NationalIDKey)
	if cfg.Lookup.Timeout > 0 {
		v.DurationRange("lookup.timeout", cfg.Lookup.Timeout, time.Second, maxLookupTimeout)
	}
	v.DurationRange("session.idleTTL", cfg.Session.IdleTTL, time.Minute, 24*time.Hour)
	v.DurationRange("session.sweepInterval", cfg.Session.SweepInterval, time.Second, time.Hour)
	if cfg.Telegram.SendRate <= 0 {
		v.AddError("telegram.sendRate", "must be positive", cfg.Telegram.SendRate)
	}
	if cfg.Telemetry.Enabled {
		v.OneOf("telemetry.exporter", cfg.Telemetry.Exporter, validExporters)
		v.NotEmpty("telemetry.endpoint", cfg.Telemetry.Endpoint)
		v.FloatRange("telemetry.samplingRate", cfg.Telemetry.SamplingRate, 0, 1)
	}
	if err := v.Err(); err != nil {
		fatal = append(fatal, err)
	}
	return errors.Join(fatal...)
}

// WebhookHost strips the scheme and any trailing slash from an external URL
// and normalizes what is left: "https://Bot.Example.com/" becomes
// "bot.example.com". It returns "" when no valid host remains.
func WebhookHost(externalURL string) string {
	host := strings.TrimSpace(externalURL)
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimRight(host, "/")
	norm, err := platformnet.NormalizeAuthority(host)
	if err != nil {
		return ""
	}
	return norm
}

// WebhookURL is the URL registered with Telegram: https://<host>/<token>.
func (c TelegramConfig) WebhookURL() string {
	return "https://" + WebhookHost(c.ExternalURL) + "/" + c.Token
}
