// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	xglog "github.com/ManuGH/lookupbot/internal/log"
)

// Environment variables.
const (
	EnvLogLevel        = "LOOKUPBOT_LOG_LEVEL"
	EnvListen          = "LOOKUPBOT_LISTEN"
	EnvPort            = "PORT"
	EnvBotToken        = "BOT_TOKEN"
	EnvExternalURL     = "LOOKUPBOT_EXTERNAL_URL"
	EnvRenderURL       = "RENDER_EXTERNAL_URL"
	EnvSendRate        = "LOOKUPBOT_SEND_RATE"
	EnvPhoneURL        = "LOOKUPBOT_PHONE_URL"
	EnvNationalIDURL   = "LOOKUPBOT_NATIONAL_ID_URL"
	EnvNationalIDKey   = "LOOKUPBOT_NATIONAL_ID_KEY"
	EnvLookupTimeout   = "LOOKUPBOT_LOOKUP_TIMEOUT"
	EnvSessionIdleTTL  = "LOOKUPBOT_SESSION_IDLE_TTL"
	EnvSessionSweep    = "LOOKUPBOT_SESSION_SWEEP"
	EnvTracingEnabled  = "LOOKUPBOT_TRACING_ENABLED"
	EnvTracingExporter = "LOOKUPBOT_TRACING_EXPORTER"
	EnvTracingEndpoint = "LOOKUPBOT_TRACING_ENDPOINT"
	EnvTracingSampling = "LOOKUPBOT_TRACING_SAMPLING_RATE"
	EnvTracingService  = "LOOKUPBOT_TRACING_SERVICE_NAME"
	EnvTracingEnv      = "LOOKUPBOT_TRACING_ENVIRONMENT"
)

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, kw := range []string{"token", "password", "secret", "key"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ParseString reads a string from environment variable or returns default value.
// It logs the source (environment or default) for observability.
func ParseString(key, defaultValue string) string {
	return parseStringWithLogger(xglog.WithComponent("config"), key, defaultValue)
}

func parseStringWithLogger(logger zerolog.Logger, key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	switch {
	case !exists:
		logger.Debug().Str("key", key).Str("source", "default").Msg("using default value")
		return defaultValue
	case value == "":
		logger.Debug().
			Str("key", key).
			Str("source", "default").
			Msg("using default value (environment variable is empty)")
		return defaultValue
	case isSensitiveKey(key):
		logger.Debug().
			Str("key", key).
			Str("source", "environment").
			Bool("sensitive", true).
			Msg("using environment variable")
	default:
		logger.Debug().
			Str("key", key).
			Str("value", value).
			Str("source", "environment").
			Msg("using environment variable")
	}
	return value
}

// ParseDuration reads a duration in Go syntax (e.g. "5s"). It falls back to
// the default on parse errors or empty variables and logs the choice.
func ParseDuration(key string, defaultValue time.Duration) time.Duration {
	logger := xglog.WithComponent("config")
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logger.Warn().
			Str("key", key).
			Str("value", v).
			Dur("default", defaultValue).
			Msg("invalid duration in environment variable, using default")
		return defaultValue
	}
	logger.Debug().Str("key", key).Dur("value", d).Str("source", "environment").Msg("using environment variable")
	return d
}

// ParseBool accepts "true", "false", "1", "0", "yes", "no" (case-insensitive).
func ParseBool(key string, defaultValue bool) bool {
	logger := xglog.WithComponent("config")
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue
	}
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		logger.Debug().Str("key", key).Bool("value", true).Str("source", "environment").Msg("using environment variable")
		return true
	case "false", "0", "no":
		logger.Debug().Str("key", key).Bool("value", false).Str("source", "environment").Msg("using environment variable")
		return false
	}
	logger.Warn().
		Str("key", key).
		Str("value", v).
		Bool("default", defaultValue).
		Msg("invalid boolean in environment variable, using default")
	return defaultValue
}

// ParseFloat reads a float64 from environment variable or returns default value.
func ParseFloat(key string, defaultValue float64) float64 {
	logger := xglog.WithComponent("config")
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		logger.Warn().
			Str("key", key).
			Str("value", v).
			Float64("default", defaultValue).
			Msg("invalid float in environment variable, using default")
		return defaultValue
	}
	logger.Debug().Str("key", key).Float64("value", f).Str("source", "environment").Msg("using environment variable")
	return f
}

// mergeEnv overrides cfg with every variable that is set.
func mergeEnv(cfg *AppConfig) {
	cfg.LogLevel = ParseString(EnvLogLevel, cfg.LogLevel)

	if port := strings.TrimSpace(os.Getenv(EnvPort)); port != "" {
		cfg.ListenAddr = ":" + port
	}
	cfg.ListenAddr = ParseString(EnvListen, cfg.ListenAddr)

	cfg.Telegram.Token = ParseString(EnvBotToken, cfg.Telegram.Token)
	cfg.Telegram.ExternalURL = ParseString(EnvRenderURL, cfg.Telegram.ExternalURL)
	cfg.Telegram.ExternalURL = ParseString(EnvExternalURL, cfg.Telegram.ExternalURL)
	cfg.Telegram.SendRate = ParseFloat(EnvSendRate, cfg.Telegram.SendRate)

	cfg.Lookup.PhoneURL = ParseString(EnvPhoneURL, cfg.Lookup.PhoneURL)
	cfg.Lookup.NationalIDURL = ParseString(EnvNationalIDURL, cfg.Lookup.NationalIDURL)
	cfg.Lookup.NationalIDKey = ParseString(EnvNationalIDKey, cfg.Lookup.NationalIDKey)
	cfg.Lookup.Timeout = ParseDuration(EnvLookupTimeout, cfg.Lookup.Timeout)

	cfg.Session.IdleTTL = ParseDuration(EnvSessionIdleTTL, cfg.Session.IdleTTL)
	cfg.Session.SweepInterval = ParseDuration(EnvSessionSweep, cfg.Session.SweepInterval)

	cfg.Telemetry.Enabled = ParseBool(EnvTracingEnabled, cfg.Telemetry.Enabled)
	cfg.Telemetry.Exporter = ParseString(EnvTracingExporter, cfg.Telemetry.Exporter)
	cfg.Telemetry.Endpoint = ParseString(EnvTracingEndpoint, cfg.Telemetry.Endpoint)
	cfg.Telemetry.SamplingRate = ParseFloat(EnvTracingSampling, cfg.Telemetry.SamplingRate)
	cfg.Telemetry.ServiceName = ParseString(EnvTracingService, cfg.Telemetry.ServiceName)
	cfg.Telemetry.Environment = ParseString(EnvTracingEnv, cfg.Telemetry.Environment)
}
