// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allEnvKeys = []string{
	EnvLogLevel, EnvListen, EnvPort, EnvBotToken, EnvExternalURL, EnvRenderURL,
	EnvSendRate, EnvPhoneURL, EnvNationalIDURL, EnvNationalIDKey, EnvLookupTimeout,
	EnvSessionIdleTTL, EnvSessionSweep, EnvTracingEnabled, EnvTracingExporter,
	EnvTracingEndpoint, EnvTracingSampling, EnvTracingService, EnvTracingEnv,
}

// clearEnv neutralizes the host environment; empty values fall back.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allEnvKeys {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	got, err := NewLoader("", "v1.2.3").Load()
	require.NoError(t, err)

	want := Defaults()
	want.Version = "v1.2.3"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", `
logLevel: DEBUG
telegram:
  token: file-token
  externalURL: https://bot.example.com
lookup:
  timeout: 10s
session:
  idleTTL: 1h
`)

	got, err := NewLoader(path, "").Load()
	require.NoError(t, err)

	want := Defaults()
	want.LogLevel = "debug"
	want.Telegram.Token = "file-token"
	want.Telegram.ExternalURL = "https://bot.example.com"
	want.Lookup.Timeout = 10 * time.Second
	want.Session.IdleTTL = time.Hour
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("file config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yml", "telegram:\n  token: file-token\nlookup:\n  timeout: 10s\n")
	t.Setenv(EnvBotToken, "env-token")
	t.Setenv(EnvLookupTimeout, "5s")
	t.Setenv(EnvTracingEnabled, "yes")
	t.Setenv(EnvTracingSampling, "0.25")

	got, err := NewLoader(path, "").Load()
	require.NoError(t, err)
	assert.Equal(t, "env-token", got.Telegram.Token)
	assert.Equal(t, 5*time.Second, got.Lookup.Timeout)
	assert.True(t, got.Telemetry.Enabled)
	assert.InDelta(t, 0.25, got.Telemetry.SamplingRate, 1e-9)
}

func TestLoad_InvalidEnvFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLookupTimeout, "soon")
	t.Setenv(EnvSendRate, "fast")

	got, err := NewLoader("", "").Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultLookupTimeout, got.Lookup.Timeout)
	assert.InDelta(t, DefaultSendRate, got.Telegram.SendRate, 1e-9)
}

func TestLoad_ListenAddr(t *testing.T) {
	t.Run("PORT", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvPort, "10000")
		got, err := NewLoader("", "").Load()
		require.NoError(t, err)
		assert.Equal(t, ":10000", got.ListenAddr)
	})
	t.Run("explicit listen wins over PORT", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvPort, "10000")
		t.Setenv(EnvListen, "127.0.0.1:9000")
		got, err := NewLoader("", "").Load()
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:9000", got.ListenAddr)
	})
}

func TestLoad_ExternalURLSources(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvRenderURL, "https://render.example.com")
	got, err := NewLoader("", "").Load()
	require.NoError(t, err)
	assert.Equal(t, "https://render.example.com", got.Telegram.ExternalURL)

	t.Setenv(EnvExternalURL, "https://own.example.com")
	got, err = NewLoader("", "").Load()
	require.NoError(t, err)
	assert.Equal(t, "https://own.example.com", got.Telegram.ExternalURL)
}

func TestLoad_StrictFile(t *testing.T) {
	clearEnv(t)

	t.Run("unknown field", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "telegram:\n  tokn: typo\n")
		_, err := NewLoader(path, "").Load()
		require.ErrorIs(t, err, ErrUnknownConfigField)
	})
	t.Run("multiple documents", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "logLevel: info\n---\nlogLevel: debug\n")
		_, err := NewLoader(path, "").Load()
		require.Error(t, err)
	})
	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "config.json", "{}")
		_, err := NewLoader(path, "").Load()
		require.ErrorContains(t, err, "only YAML supported")
	})
	t.Run("empty file keeps defaults", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "")
		got, err := NewLoader(path, "").Load()
		require.NoError(t, err)
		assert.Equal(t, DefaultListenAddr, got.ListenAddr)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml"), "").Load()
		require.Error(t, err)
	})
}
