// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package config loads lookupbot configuration with precedence
// ENV > YAML file > defaults.
package config

import "time"

// Defaults.
const (
	DefaultLogLevel        = "info"
	DefaultListenAddr      = ":8443"
	DefaultSendRate        = 25.0
	DefaultPhoneURL        = "https://demon.taitanx.workers.dev/?mobile="
	DefaultNationalIDURL   = "https://family-members-n5um.vercel.app/fetch"
	DefaultNationalIDKey   = "paidchx"
	DefaultLookupTimeout   = 30 * time.Second
	DefaultSessionIdleTTL  = 30 * time.Minute
	DefaultSessionSweep    = time.Minute
	DefaultTracingExporter = "grpc"
	DefaultTracingEndpoint = "localhost:4317"
	DefaultTracingSampling = 1.0
	DefaultTracingService  = "lookupbot"
	DefaultTracingEnv      = "production"
)

// AppConfig is the effective configuration of the daemon.
type AppConfig struct {
	Version string `yaml:"-"`

	LogLevel   string `yaml:"logLevel"`
	ListenAddr string `yaml:"listenAddr"`

	Telegram  TelegramConfig  `yaml:"telegram"`
	Lookup    LookupConfig    `yaml:"lookup"`
	Session   SessionConfig   `yaml:"session"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// TelegramConfig configures the Bot API driver.
type TelegramConfig struct {
	Token string `yaml:"token"`
	// ExternalURL is the public base URL of this service; the webhook URL is
	// derived from it.
	ExternalURL string  `yaml:"externalURL"`
	SendRate    float64 `yaml:"sendRate"`
}

// LookupConfig configures the two upstream lookup services.
type LookupConfig struct {
	PhoneURL      string        `yaml:"phoneURL"`
	NationalIDURL string        `yaml:"nationalIDURL"`
	NationalIDKey string        `yaml:"nationalIDKey"`
	Timeout       time.Duration `yaml:"timeout"`
}

// SessionConfig configures the in-memory session store.
type SessionConfig struct {
	IdleTTL       time.Duration `yaml:"idleTTL"`
	SweepInterval time.Duration `yaml:"sweepInterval"`
}

// TelemetryConfig configures OpenTelemetry tracing.
type TelemetryConfig struct {
	Enabled      bool    `yaml:"enabled"`
	ServiceName  string  `yaml:"serviceName"`
	Environment  string  `yaml:"environment"`
	Exporter     string  `yaml:"exporter"`
	Endpoint     string  `yaml:"endpoint"`
	SamplingRate float64 `yaml:"samplingRate"`
}

// Defaults returns the configuration used when neither file nor
// environment set a value.
func Defaults() AppConfig {
	return AppConfig{
		LogLevel:   DefaultLogLevel,
		ListenAddr: DefaultListenAddr,
		Telegram: TelegramConfig{
			SendRate: DefaultSendRate,
		},
		Lookup: LookupConfig{
			PhoneURL:      DefaultPhoneURL,
			NationalIDURL: DefaultNationalIDURL,
			NationalIDKey: DefaultNationalIDKey,
			Timeout:       DefaultLookupTimeout,
		},
		Session: SessionConfig{
			IdleTTL:       DefaultSessionIdleTTL,
			SweepInterval: DefaultSessionSweep,
		},
		Telemetry: TelemetryConfig{
			ServiceName:  DefaultTracingService,
			Environment:  DefaultTracingEnv,
			Exporter:     DefaultTracingExporter,
			Endpoint:     DefaultTracingEndpoint,
			SamplingRate: DefaultTracingSampling,
		},
	}
}
